// Package registry implements a service-registry driver: it registers a
// running service instance with a registry backend, discovers healthy
// instances of a named service, and deduplicates registration attempts so a
// process does not re-register itself.
//
// The driver talks to the backend through the Client interface. Backends live
// in subpackages (registry/consul for HashiCorp Consul, registry/memory for
// an in-memory backend used in development and tests) and register themselves
// through RegisterProviderFactory.
//
// Discovery is pull-based: callers invoke DiscoverNodes whenever they want a
// fresh, health-filtered endpoint list. Registration is idempotent per
// (service, protocol, host, port) tuple: Register marks a process-wide cache
// on success, and IsRegistered consults that cache before verifying against
// the live registry.
package registry

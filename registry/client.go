package registry

import "context"

// Registration is the payload submitted to the registry backend.
type Registration struct {
	Name    string
	ID      string
	Address string
	Port    int
	Meta    map[string]string
	Check   *CheckDefinition
}

// CheckDefinition describes the health check attached to a registration.
// Exactly one of HTTP or TCP is set; a nil *CheckDefinition registers the
// instance without a check.
type CheckDefinition struct {
	HTTP                           string
	TCP                            string
	Interval                       string
	DeregisterCriticalServiceAfter string
}

// Client is the transport to a registry backend. Implementations live in
// subpackages and must be safe for concurrent use.
type Client interface {
	// HealthRecords returns the current health records for serviceName from
	// the registry reachable at baseURI.
	HealthRecords(ctx context.Context, baseURI, serviceName string) ([]HealthRecord, error)

	// Services returns the full service catalog keyed by instance ID.
	// An empty baseURI addresses the default registry.
	Services(ctx context.Context, baseURI string) (map[string]ServiceEntry, error)

	// Register submits a register-or-update for the given instance.
	Register(ctx context.Context, baseURI string, reg *Registration) error
}

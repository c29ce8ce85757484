package registry

import (
	"context"
	"sync"
	"time"

	"github.com/kynelab/regkit/errors"
	"github.com/kynelab/regkit/logger"
	"github.com/kynelab/regkit/observability"
)

// Driver orchestrates registration, discovery, and registration dedup against
// a registry backend. Safe for concurrent use: the read-allocate-register
// window is serialized per service name, and the registration cache is
// internally synchronized.
type Driver struct {
	client  Client
	cache   *Cache
	cfg     Config
	log     *logger.Logger
	metrics *observability.Metrics

	namesMu sync.Mutex
	names   map[string]*sync.Mutex
}

// DriverOption customizes a Driver.
type DriverOption func(*Driver)

// WithCache injects a registration cache. Tests use fresh instances per test;
// hosts sharing one cache across drivers pass the same instance to each.
func WithCache(cache *Cache) DriverOption {
	return func(d *Driver) { d.cache = cache }
}

// WithMetrics enables operation metrics on the driver.
func WithMetrics(m *observability.Metrics) DriverOption {
	return func(d *Driver) { d.metrics = m }
}

// NewDriver creates a Driver over the given backend client.
func NewDriver(client Client, cfg Config, log *logger.Logger, opts ...DriverOption) *Driver {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	d := &Driver{
		client: client,
		cfg:    cfg,
		log:    log.WithComponent("registry"),
		names:  make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cache == nil {
		d.cache = NewCache()
	}
	return d
}

// Cache exposes the driver's registration cache.
func (d *Driver) Cache() *Cache { return d.cache }

// DiscoverNodes fetches the current health records for serviceName from the
// registry reachable at baseURI and returns the ready endpoints matching
// meta.Protocol. Empty results are not an error; transport failures are
// propagated rather than masked as an empty list.
func (d *Driver) DiscoverNodes(ctx context.Context, baseURI, serviceName string, meta ServiceMetadata) ([]DiscoveredNode, error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, observability.SpanDiscoverNodes)
	defer span.End()

	if d.client == nil {
		err := errors.ComponentUnavailable("registry-client")
		observability.SetSpanError(ctx, err)
		return nil, err
	}

	records, err := d.client.HealthRecords(ctx, baseURI, serviceName)
	if err != nil {
		observability.SetSpanError(ctx, err)
		d.recordOperation(ctx, serviceName, "discover_nodes", "error", start)
		return nil, errors.TransportFailure("discover_nodes", err).WithDetail("service", serviceName)
	}

	nodes := FilterHealthyNodes(records, meta.Protocol)
	if d.metrics != nil {
		d.metrics.RecordDiscoveredNodes(ctx, serviceName, len(nodes))
	}
	d.recordOperation(ctx, serviceName, "discover_nodes", "ok", start)
	return nodes, nil
}

// Register advertises one instance of serviceName at host:port. When
// meta.ID is empty, an instance ID is allocated from the live registry
// listing; an explicit ID is used unchanged.
//
// The outcome is reported through the logger, not the return path: on success
// the registration cache is marked, on failure it is left untouched and no
// retry is attempted. Retry policy belongs to the caller.
func (d *Driver) Register(ctx context.Context, serviceName, host string, port int, meta ServiceMetadata) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, observability.SpanRegister)
	defer span.End()

	unlock := d.lockName(serviceName)
	defer unlock()

	fields := logger.Fields(
		logger.FieldService, serviceName,
		logger.FieldAddress, host,
		logger.FieldPort, port,
		logger.FieldProtocol, meta.Protocol,
	)

	if d.client == nil {
		d.log.Error("service registration failed", logger.MergeWithError(fields, errors.ComponentUnavailable("registry-client")))
		return
	}

	instanceID, err := d.resolveInstanceID(ctx, serviceName, meta)
	if err != nil {
		d.recordFailure(ctx, serviceName, "register", err, start)
		d.log.Error("service registration failed", logger.MergeWithError(fields, err))
		return
	}
	fields[logger.FieldInstanceID] = instanceID

	reg := &Registration{
		Name:    serviceName,
		ID:      instanceID,
		Address: host,
		Port:    port,
		Meta:    map[string]string{MetaProtocol: meta.Protocol},
		Check:   buildCheck(meta.Protocol, host, port, d.cfg.Check),
	}

	if err := d.client.Register(ctx, d.cfg.BaseURI, reg); err != nil {
		d.recordFailure(ctx, serviceName, "register", err, start)
		d.log.Error("service registration failed", logger.MergeWithError(fields, err))
		return
	}

	d.cache.Mark(Key{Name: serviceName, Protocol: meta.Protocol, Host: host, Port: port})
	d.recordOperation(ctx, serviceName, "register", "ok", start)
	d.log.Info("service registered", fields)
}

// IsRegistered reports whether the (serviceName, protocol, address, port)
// tuple is already registered. A cache hit answers without a remote call;
// otherwise the live catalog is scanned and a match marks the cache. If the
// listing fetch fails the answer is false (fail-closed): registration will be
// attempted again rather than silently skipped.
func (d *Driver) IsRegistered(ctx context.Context, serviceName, address string, port int, meta ServiceMetadata) bool {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, observability.SpanIsRegistered)
	defer span.End()

	key := Key{Name: serviceName, Protocol: meta.Protocol, Host: address, Port: port}
	if d.cache.Has(key) {
		return true
	}

	unlock := d.lockName(serviceName)
	defer unlock()

	if d.client == nil {
		d.log.Warn("registration lookup failed, assuming unregistered",
			logger.ErrorFields("is_registered", errors.ComponentUnavailable("registry-client")))
		return false
	}

	entries, err := d.client.Services(ctx, d.cfg.BaseURI)
	if err != nil {
		d.recordFailure(ctx, serviceName, "is_registered", err, start)
		d.log.Warn("registration lookup failed, assuming unregistered", logger.Fields(
			logger.FieldService, serviceName,
			logger.FieldError, err.Error(),
		))
		return false
	}

	want := compositeTag(serviceName, address, port, meta.Protocol)
	for _, entry := range entries {
		protocol, ok := entry.Protocol()
		if !ok || entry.Service == "" || entry.Address == "" || entry.Port == 0 {
			continue
		}
		if compositeTag(entry.Service, entry.Address, entry.Port, protocol) == want {
			d.cache.Mark(key)
			d.recordOperation(ctx, serviceName, "is_registered", "ok", start)
			return true
		}
	}

	d.recordOperation(ctx, serviceName, "is_registered", "ok", start)
	return false
}

// LastServiceID fetches the full service listing and returns the ID carrying
// the maximum numeric suffix among records registered under serviceName, or
// serviceName itself when no matching record exists. Always read from the
// live registry: IDs must not collide across restarts of cooperating
// instances.
func (d *Driver) LastServiceID(ctx context.Context, serviceName string) (string, error) {
	if d.client == nil {
		return "", errors.ComponentUnavailable("registry-client")
	}
	entries, err := d.client.Services(ctx, d.cfg.BaseURI)
	if err != nil {
		return "", errors.TransportFailure("last_service_id", err).WithDetail("service", serviceName)
	}
	return LastAllocatedID(serviceName, idsForName(entries, serviceName)), nil
}

// resolveInstanceID picks the caller's explicit ID or allocates the next one
// from the live listing.
func (d *Driver) resolveInstanceID(ctx context.Context, serviceName string, meta ServiceMetadata) (string, error) {
	if meta.ID != "" {
		return meta.ID, nil
	}
	entries, err := d.client.Services(ctx, d.cfg.BaseURI)
	if err != nil {
		return "", errors.TransportFailure("last_service_id", err).WithDetail("service", serviceName)
	}
	return NextID(serviceName, idsForName(entries, serviceName), ""), nil
}

func idsForName(entries map[string]ServiceEntry, serviceName string) []string {
	ids := make([]string, 0, len(entries))
	for id, entry := range entries {
		if entry.Service != serviceName {
			continue
		}
		if entry.ID != "" {
			ids = append(ids, entry.ID)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// lockName serializes operations per service name. The allocator's
// read-then-write (listing fetch, NextID, register submission) is the race
// window: two in-flight registrations for the same name would otherwise both
// be accepted by the registry under different IDs.
func (d *Driver) lockName(name string) func() {
	d.namesMu.Lock()
	mu, ok := d.names[name]
	if !ok {
		mu = &sync.Mutex{}
		d.names[name] = mu
	}
	d.namesMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func (d *Driver) recordOperation(ctx context.Context, service, operation, status string, start time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.RecordOperation(ctx, service, "registry."+operation, status, time.Since(start))
}

func (d *Driver) recordFailure(ctx context.Context, service, operation string, err error, start time.Time) {
	observability.SetSpanError(ctx, err)
	if d.metrics == nil {
		return
	}
	d.metrics.RecordError(ctx, string(errors.CodeOf(err)), "registry."+operation)
	d.metrics.RecordOperation(ctx, service, "registry."+operation, "error", time.Since(start))
}

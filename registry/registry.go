package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusPassing is the only check status that counts as healthy.
const StatusPassing = "passing"

// MetaProtocol is the service-metadata key carrying the protocol tag.
const MetaProtocol = "protocol"

// ServiceMetadata is supplied by the caller per registration or discovery
// request. Protocol drives health-check construction and node filtering;
// ID, when set, overrides instance-ID allocation.
type ServiceMetadata struct {
	Protocol string
	ID       string
}

// DiscoveredNode is a ready endpoint of a discovered service.
type DiscoveredNode struct {
	Host string
	Port int
}

// ServiceEntry is the registry's record of one registered instance.
// Read-only input to the driver.
type ServiceEntry struct {
	ID      string
	Service string
	Address string
	Port    int
	Meta    map[string]string
}

// Protocol returns the entry's protocol tag and whether one is present.
func (e ServiceEntry) Protocol() (string, bool) {
	p, ok := e.Meta[MetaProtocol]
	return p, ok
}

// CheckResult is the status of one health check attached to an instance.
type CheckResult struct {
	Status string
}

// HealthRecord pairs an instance with its current health-check results.
type HealthRecord struct {
	Service ServiceEntry
	Checks  []CheckResult
}

// Key identifies one registration attempt's cache slot. Two different
// protocols at the same host:port are distinct registrations.
type Key struct {
	Name     string
	Protocol string
	Host     string
	Port     int
}

// String renders the key for logging.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s@%s:%d", k.Name, k.Protocol, k.Host, k.Port)
}

// compositeTag builds the comma-joined identity used to match a query against
// registry records in IsRegistered.
func compositeTag(name, address string, port int, protocol string) string {
	return strings.Join([]string{name, address, strconv.Itoa(port), protocol}, ",")
}

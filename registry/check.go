package registry

import "fmt"

// CheckKind selects the health-check shape attached at registration time.
type CheckKind string

const (
	CheckNone CheckKind = "none"
	CheckHTTP CheckKind = "http"
	CheckTCP  CheckKind = "tcp"
)

// protocolChecks maps a protocol tag to its health-check shape. Adding a
// protocol is a table edit. Protocols not listed register without a check.
var protocolChecks = map[string]CheckKind{
	"jsonrpc-http":             CheckHTTP,
	"jsonrpc":                  CheckTCP,
	"jsonrpc-tcp-length-check": CheckTCP,
	"multiplex.default":        CheckTCP,
}

// CheckKindFor returns the health-check shape for a protocol tag.
func CheckKindFor(protocol string) CheckKind {
	if kind, ok := protocolChecks[protocol]; ok {
		return kind
	}
	return CheckNone
}

// buildCheck constructs the check definition for a registration, or nil when
// the protocol registers without one.
func buildCheck(protocol, host string, port int, cfg CheckConfig) *CheckDefinition {
	switch CheckKindFor(protocol) {
	case CheckHTTP:
		return &CheckDefinition{
			HTTP:                           fmt.Sprintf("http://%s:%d/", host, port),
			Interval:                       cfg.Interval,
			DeregisterCriticalServiceAfter: cfg.DeregisterCriticalServiceAfter,
		}
	case CheckTCP:
		return &CheckDefinition{
			TCP:                            fmt.Sprintf("%s:%d", host, port),
			Interval:                       cfg.Interval,
			DeregisterCriticalServiceAfter: cfg.DeregisterCriticalServiceAfter,
		}
	default:
		return nil
	}
}

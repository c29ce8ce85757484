package registry

// FilterHealthyNodes turns raw health records into the list of ready
// endpoints for the required protocol.
//
// A record whose protocol tag is present and differs from requiredProtocol is
// discarded regardless of health. A record with no checks counts as healthy;
// any check status other than "passing" excludes the record. Records with an
// empty address or zero port are dropped silently. Input order is preserved
// and duplicate endpoints pass through unchanged.
func FilterHealthyNodes(records []HealthRecord, requiredProtocol string) []DiscoveredNode {
	nodes := make([]DiscoveredNode, 0, len(records))
	for _, rec := range records {
		if p, ok := rec.Service.Protocol(); ok && p != requiredProtocol {
			continue
		}
		if !passing(rec.Checks) {
			continue
		}
		if rec.Service.Address == "" || rec.Service.Port == 0 {
			continue
		}
		nodes = append(nodes, DiscoveredNode{
			Host: rec.Service.Address,
			Port: rec.Service.Port,
		})
	}
	return nodes
}

func passing(checks []CheckResult) bool {
	for _, c := range checks {
		if c.Status != StatusPassing {
			return false
		}
	}
	return true
}

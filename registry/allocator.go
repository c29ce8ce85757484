package registry

import (
	"strconv"
	"strings"
)

// NextID computes the next unique instance ID for serviceName given the IDs
// currently allocated for that name. A non-empty explicit ID from the caller
// is returned unchanged, never renumbered.
//
// First allocation for a fresh name yields "<name>-0"; repeated allocation
// strictly increases the numeric suffix.
func NextID(serviceName string, existing []string, explicit string) string {
	if explicit != "" {
		return explicit
	}
	base, end := splitSuffix(LastAllocatedID(serviceName, existing))
	return base + "-" + strconv.Itoa(end+1)
}

// LastAllocatedID scans existing IDs for the one carrying the maximum numeric
// suffix. Only suffixes that are syntactically integers participate; a
// non-numeric tail is skipped, never coerced to zero. Ties keep the first
// encountered. If no entry carries a numeric suffix, the bare service name is
// the last ID.
func LastAllocatedID(serviceName string, existing []string) string {
	last := serviceName
	max := -1
	for _, id := range existing {
		i := strings.LastIndex(id, "-")
		if i < 0 {
			continue
		}
		n, err := strconv.Atoi(id[i+1:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
			last = id
		}
	}
	return last
}

// splitSuffix splits an ID on its final hyphen. When the tail is numeric it
// is dropped from the base and returned as the current end value; otherwise
// the whole ID is the base and the end value is -1 (no suffix yet).
func splitSuffix(id string) (string, int) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return id, -1
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return id, -1
	}
	return id[:i], n
}

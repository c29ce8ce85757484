package registry

import (
	"sync"
	"testing"
)

func TestCache_HasAndMark(t *testing.T) {
	c := NewCache()
	key := Key{Name: "svc", Protocol: "jsonrpc", Host: "10.0.0.1", Port: 9000}

	if c.Has(key) {
		t.Error("fresh cache should not contain the key")
	}

	c.Mark(key)
	if !c.Has(key) {
		t.Error("key should be present after Mark")
	}

	// Idempotent.
	c.Mark(key)
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_ProtocolsAreDistinctSlots(t *testing.T) {
	c := NewCache()
	http := Key{Name: "svc", Protocol: "jsonrpc-http", Host: "10.0.0.1", Port: 9000}
	tcp := Key{Name: "svc", Protocol: "jsonrpc", Host: "10.0.0.1", Port: 9000}

	c.Mark(http)
	if c.Has(tcp) {
		t.Error("registrations with different protocols must occupy distinct slots")
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(port int) {
			defer wg.Done()
			key := Key{Name: "svc", Protocol: "jsonrpc", Host: "10.0.0.1", Port: port}
			c.Mark(key)
			if !c.Has(key) {
				t.Errorf("key %v missing after Mark", key)
			}
		}(i + 1)
	}
	wg.Wait()

	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
}

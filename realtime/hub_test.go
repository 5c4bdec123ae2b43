package realtime

import (
	"testing"

	"go.uber.org/zap"
)

func TestEmitWithoutClients(t *testing.T) {
	hub := NewHub(zap.NewNop())

	// broadcasting into an empty hub is a safe no-op
	hub.Emit("productCountUpdate", 12)
	hub.Emit("customerCountUpdate", map[string]int64{"totalCustomers": 3})

	if hub.ClientCount() != 0 {
		t.Errorf("expected no clients, got %d", hub.ClientCount())
	}
}

func TestEmitUnmarshalableData(t *testing.T) {
	hub := NewHub(zap.NewNop())
	// channels cannot be marshaled; Emit must swallow the error
	hub.Emit("order:updated", make(chan int))
}

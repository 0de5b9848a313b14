package serde

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]*structPlan)
	registryMu sync.RWMutex
)

// planFor returns a cached struct plan or builds a new one.
// Plans are immutable once built and cached by struct type.
func planFor(rt reflect.Type) *structPlan {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[rt]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[rt]; ok {
		return cached
	}

	plan := buildStructPlan(rt)
	registry[rt] = plan
	return plan
}

// Reset clears the struct plan registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]*structPlan)
}

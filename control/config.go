// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with typed lookups and reload
// propagation. Values arrive from code or from a YAML file (config_file.go)
// and are read by components at their own cadence.

package control

import (
	"sync"
	"time"
)

// ConfigStore is a dynamic key/value map with snapshot reads and reload
// listeners.
type ConfigStore struct {
	mu        sync.RWMutex
	values    map[string]any
	listeners []func()
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Snapshot returns a copy of all config values.
func (cs *ConfigStore) Snapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.values))
	for k, v := range cs.values {
		out[k] = v
	}
	return out
}

// Merge folds new values into the store, then notifies listeners.
// Notification is synchronous so tests and reload-sensitive components
// observe a settled store when their hook runs.
func (cs *ConfigStore) Merge(values map[string]any) {
	cs.mu.Lock()
	for k, v := range values {
		cs.values[k] = v
	}
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Set stores a single value and notifies listeners.
func (cs *ConfigStore) Set(key string, value any) {
	cs.Merge(map[string]any{key: value})
}

// OnReload registers a hook called after every Merge or Set.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	cs.listeners = append(cs.listeners, fn)
	cs.mu.Unlock()
}

// Int returns the value at key as an int, or def when absent or of an
// unusable type. YAML numbers may arrive as int or float64; both are
// accepted.
func (cs *ConfigStore) Int(key string, def int) int {
	cs.mu.RLock()
	v, ok := cs.values[key]
	cs.mu.RUnlock()
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// Bool returns the value at key as a bool, or def.
func (cs *ConfigStore) Bool(key string, def bool) bool {
	cs.mu.RLock()
	v, ok := cs.values[key]
	cs.mu.RUnlock()
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// String returns the value at key as a string, or def.
func (cs *ConfigStore) String(key string, def string) string {
	cs.mu.RLock()
	v, ok := cs.values[key]
	cs.mu.RUnlock()
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// Duration returns the value at key as a time.Duration, or def. Accepts
// a duration string ("5ms") or a number of milliseconds.
func (cs *ConfigStore) Duration(key string, def time.Duration) time.Duration {
	cs.mu.RLock()
	v, ok := cs.values[key]
	cs.mu.RUnlock()
	if !ok {
		return def
	}
	switch d := v.(type) {
	case time.Duration:
		return d
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed
		}
		return def
	case int:
		return time.Duration(d) * time.Millisecond
	case int64:
		return time.Duration(d) * time.Millisecond
	case float64:
		return time.Duration(d) * time.Millisecond
	default:
		return def
	}
}

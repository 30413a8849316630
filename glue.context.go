package glue

import (
	"strings"
	"sync"
)

// Env is the shared mutable evaluation environment threaded through every
// evaluator call of one render. It supports dot-notation path resolution
// (e.g. "user.profile.name") and hierarchical scoping through parent-child
// relationships.
//
// Within one render the engine mutates an Env strictly sequentially, in
// segment order; an expression that binds a name is observable by every
// later expression of the same render.
type Env struct {
	data   map[string]any
	parent *Env
	mu     sync.RWMutex
}

// NewEnv creates an evaluation environment with the given data.
// If data is nil, an empty map is used.
func NewEnv(data map[string]any) *Env {
	if data == nil {
		data = make(map[string]any)
	}
	return &Env{data: data}
}

// Get retrieves a value by dot-notation path (e.g. "user.profile.name").
// Returns the value and true if found, or nil and false if not found.
func (e *Env) Get(path string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.getPath(path)
}

// getPath resolves a dot-notation path without locking (internal use).
func (e *Env) getPath(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	parts := strings.Split(path, PathSeparator)
	var current any = e.data

	for _, part := range parts {
		if part == "" {
			continue
		}

		switch v := current.(type) {
		case map[string]any:
			val, ok := v[part]
			if !ok {
				if e.parent != nil {
					return e.parent.getPath(path)
				}
				return nil, false
			}
			current = val
		case map[string]string:
			val, ok := v[part]
			if !ok {
				if e.parent != nil {
					return e.parent.getPath(path)
				}
				return nil, false
			}
			current = val
		default:
			// Can't traverse further
			if e.parent != nil {
				return e.parent.getPath(path)
			}
			return nil, false
		}
	}

	return current, true
}

// GetString retrieves a string value by path.
// Returns empty string if not found or not a string.
func (e *Env) GetString(path string) string {
	val, ok := e.Get(path)
	if !ok {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

// Set binds a value under the given key.
// Only simple keys are supported, not nested paths.
func (e *Env) Set(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.data[key] = value
}

// Has checks if a value exists at the given path.
func (e *Env) Has(path string) bool {
	_, ok := e.Get(path)
	return ok
}

// Child creates a child environment with additional data.
// The child inherits from the parent and can override values.
func (e *Env) Child(data map[string]any) *Env {
	if data == nil {
		data = make(map[string]any)
	}
	return &Env{
		data:   data,
		parent: e,
	}
}

// Parent returns the parent environment, or nil for a root environment.
func (e *Env) Parent() *Env {
	return e.parent
}

// Data returns a copy of the environment's direct data (not including parent).
func (e *Env) Data() map[string]any {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make(map[string]any, len(e.data))
	for k, v := range e.data {
		result[k] = v
	}
	return result
}

// Snapshot flattens the environment chain into one map, child bindings
// overriding parent bindings. Used to build evaluator run environments.
func (e *Env) Snapshot() map[string]any {
	var chain []*Env
	for env := e; env != nil; env = env.parent {
		chain = append(chain, env)
	}

	result := make(map[string]any)
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].Data() {
			result[k] = v
		}
	}
	return result
}

package icons

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	apperrors "github.com/sunit1986/JioBharatIQ-Server/internal/platform/errors"
)

// Registry is an immutable mapping from canonical keys to constructors. It
// is safe for concurrent use.
type Registry struct {
	entries map[Key]Constructor
	keys    []Key
}

// NewRegistry builds a registry from defs in order. When a key is registered
// more than once the last registration wins.
//
// A definition with a missing or non-canonical key, or without a
// constructor, is a catalog defect and fails the whole build.
func NewRegistry(defs []Definition) (*Registry, error) {
	entries := make(map[Key]Constructor, len(defs))
	for i, def := range defs {
		meta := map[string]string{"index": strconv.Itoa(i), "key": string(def.Key)}
		if def.Key == "" {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogMalformed, fmt.Sprintf("catalog entry %d has no key", i), meta)
		}
		if !def.Key.Canonical() {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogMalformed, fmt.Sprintf("catalog key %q is not canonical", def.Key), meta)
		}
		if def.Build == nil {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogMalformed, fmt.Sprintf("catalog key %q has no constructor", def.Key), meta)
		}
		entries[def.Key] = def.Build
	}

	keys := make([]Key, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return &Registry{entries: entries, keys: keys}, nil
}

// MustRegistry is like NewRegistry but panics on a catalog defect.
func MustRegistry(defs []Definition) *Registry {
	reg, err := NewRegistry(defs)
	if err != nil {
		panic("icons: " + err.Error())
	}
	return reg
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustRegistry(catalog)
})

// Default returns the registry built from the built-in catalog.
func Default() *Registry {
	return defaultRegistry()
}

// Lookup returns the constructor registered for key.
func (r *Registry) Lookup(key Key) (Constructor, bool) {
	if r == nil {
		return nil, false
	}
	build, ok := r.entries[key]
	return build, ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []Key {
	if r == nil {
		return nil
	}
	result := make([]Key, len(r.keys))
	copy(result, r.keys)
	return result
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

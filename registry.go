package vimfault

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownKind is matched by lookups of wire or type names the registry
	// does not contain.
	ErrUnknownKind = errors.New("unknown fault kind")

	// ErrInvalidKind is matched by registry construction errors.
	ErrInvalidKind = errors.New("invalid fault kind")
)

// UnknownKindError reports a registry miss.
type UnknownKindError struct {
	// Name is the wire or type name as it was received.
	Name string
}

// Error returns the string representation of the error.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown fault kind %q", e.Name)
}

// Is reports whether target is ErrUnknownKind.
func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// Registry maps wire names and type names to fault kinds.
//
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	byWire map[string]*Kind
	byType map[string]*Kind
	kinds  []*Kind
}

// NewRegistry validates kinds and builds a registry from them.
//
// Every kind must have a unique type name and wire name, its base must be
// part of the same registry, and no field name may repeat along a base chain.
func NewRegistry(kinds ...*Kind) (*Registry, error) {
	r := &Registry{
		byWire: make(map[string]*Kind, len(kinds)),
		byType: make(map[string]*Kind, len(kinds)),
		kinds:  make([]*Kind, 0, len(kinds)),
	}
	for _, k := range kinds {
		if err := r.add(k); err != nil {
			return nil, err
		}
	}
	for _, k := range r.kinds {
		if err := r.validate(k); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(k *Kind) error {
	if k == nil {
		return fmt.Errorf("%w: nil kind", ErrInvalidKind)
	}
	if k.name == "" {
		return fmt.Errorf("%w: empty type name", ErrInvalidKind)
	}
	local, ok := localWireName(k.wireName)
	if !ok || local != k.wireName {
		return fmt.Errorf("%w: %s has invalid wire name %q", ErrInvalidKind, k.name, k.wireName)
	}
	if _, dup := r.byType[k.name]; dup {
		return fmt.Errorf("%w: duplicate type name %q", ErrInvalidKind, k.name)
	}
	if _, dup := r.byWire[k.wireName]; dup {
		return fmt.Errorf("%w: duplicate wire name %q", ErrInvalidKind, k.wireName)
	}
	r.byType[k.name] = k
	r.byWire[k.wireName] = k
	r.kinds = append(r.kinds, k)
	return nil
}

func (r *Registry) validate(k *Kind) error {
	if k.base != nil && r.byType[k.base.name] != k.base {
		return fmt.Errorf("%w: %s has unregistered base %s", ErrInvalidKind, k.name, k.base.name)
	}
	seen := make(map[string]bool)
	for _, f := range k.Fields() {
		if f.Name == "" {
			return fmt.Errorf("%w: %s declares an unnamed field", ErrInvalidKind, k.name)
		}
		if !f.Type.Valid() {
			return fmt.Errorf("%w: %s.%s has invalid type %v", ErrInvalidKind, k.name, f.Name, f.Type)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s repeats field %q", ErrInvalidKind, k.name, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// Extend returns a new registry holding the receiver's kinds plus kinds.
// The receiver is not modified.
func (r *Registry) Extend(kinds ...*Kind) (*Registry, error) {
	all := make([]*Kind, 0, len(r.kinds)+len(kinds))
	all = append(all, r.kinds...)
	all = append(all, kinds...)
	return NewRegistry(all...)
}

// Lookup returns the kind bound to wireName.
// A miss returns an *UnknownKindError.
func (r *Registry) Lookup(wireName string) (*Kind, error) {
	if local, ok := localWireName(wireName); ok {
		if k, found := r.byWire[local]; found {
			return k, nil
		}
	}
	return nil, &UnknownKindError{Name: wireName}
}

// LookupType returns the kind with the given vim25 type name, e.g. "FileFault".
func (r *Registry) LookupType(typeName string) (*Kind, error) {
	if local, ok := localWireName(typeName); ok {
		if k, found := r.byType[local]; found {
			return k, nil
		}
	}
	return nil, &UnknownKindError{Name: typeName}
}

// Resolve is Lookup with the fallback applied: a miss returns UnknownFault.
func (r *Registry) Resolve(wireName string) *Kind {
	k, err := r.Lookup(wireName)
	if err != nil {
		return UnknownFault
	}
	return k
}

// Contains reports whether k is registered.
func (r *Registry) Contains(k *Kind) bool {
	return k != nil && r.byType[k.name] == k
}

// Kinds returns the registered kinds sorted by name.
func (r *Registry) Kinds() []*Kind {
	kinds := make([]*Kind, len(r.kinds))
	copy(kinds, r.kinds)
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].name < kinds[j].name })
	return kinds
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.kinds)
}

var defaultRegistry = mustRegistry(builtinKinds...)

func mustRegistry(kinds ...*Kind) *Registry {
	r, err := NewRegistry(kinds...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry holding the built-in vim25 catalog.
func Default() *Registry {
	return defaultRegistry
}

// Lookup looks wireName up in the default registry.
func Lookup(wireName string) (*Kind, error) {
	return defaultRegistry.Lookup(wireName)
}

// Resolve resolves wireName against the default registry.
func Resolve(wireName string) *Kind {
	return defaultRegistry.Resolve(wireName)
}

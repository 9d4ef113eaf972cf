package typeinfo

import "golang.org/x/tools/go/types/typeutil"

// Lookup indexes values by types. Keys are compared by [types.Identical], not
// by their names, so two distinct types sharing a name never collide.
type Lookup[V any] struct {
	m *typeutil.Map
}

// NewLookup creates a new [Lookup].
func NewLookup[V any]() *Lookup[V] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Lookup[V]{m}
}

// Put adds a value for the type. If the type is already registered, it returns
// the previous value and false without overwriting.
func (l *Lookup[V]) Put(t Type, v V) (V, bool) {
	if old, ok := l.m.At(t.Type()).(V); ok {
		return old, false
	}
	l.m.Set(t.Type(), v)
	return *new(V), true
}

// Get finds the value registered for the type.
func (l *Lookup[V]) Get(t Type) (V, bool) {
	if l == nil {
		return *new(V), false
	}
	v, ok := l.m.At(t.Type()).(V)
	return v, ok
}

// Len returns the number of registered types.
func (l *Lookup[V]) Len() int {
	if l == nil {
		return 0
	}
	return l.m.Len()
}

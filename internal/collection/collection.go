// Package collection builds the list, lookup-map and grouping-map forms of a
// dataset. Map forms keep the insertion order of first-seen keys so that JSON
// output is deterministic.
package collection

import (
	"github.com/iancoleman/orderedmap"

	"github.com/sells-group/airdata-cli/internal/jsonenc"
)

// List returns an order-preserving copy of items. The result is never nil so
// that an empty dataset encodes as [] rather than null.
func List[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Map is an insertion-ordered string-keyed map. Setting an existing key
// replaces its value but keeps the key's original position.
type Map[V any] struct {
	om *orderedmap.OrderedMap
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	om := orderedmap.New()
	om.SetEscapeHTML(false)
	return &Map[V]{om: om}
}

// Set stores v under key. Last write wins.
func (m *Map[V]) Set(key string, v V) {
	m.om.Set(key, v)
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	raw, ok := m.om.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return raw.(V), true
}

// Keys returns the keys in first-insertion order.
func (m *Map[V]) Keys() []string {
	return m.om.Keys()
}

// Len returns the number of keys.
func (m *Map[V]) Len() int {
	return len(m.om.Keys())
}

// MarshalJSON encodes the map as a JSON object in key insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	raw, err := m.om.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return jsonenc.Compact(raw)
}

// Group is an insertion-ordered map from key to the list of values sharing
// that key.
type Group[V any] struct {
	m *Map[[]V]
}

// NewGroup creates an empty Group.
func NewGroup[V any]() *Group[V] {
	return &Group[V]{m: NewMap[[]V]()}
}

// Append adds v to the end of the list stored under key.
func (g *Group[V]) Append(key string, v V) {
	list, _ := g.m.Get(key)
	g.m.Set(key, append(list, v))
}

// Get returns the list stored under key.
func (g *Group[V]) Get(key string) ([]V, bool) {
	return g.m.Get(key)
}

// Keys returns the keys in first-encounter order.
func (g *Group[V]) Keys() []string {
	return g.m.Keys()
}

// Len returns the number of distinct keys.
func (g *Group[V]) Len() int {
	return g.m.Len()
}

// MarshalJSON encodes the group as a JSON object of arrays.
func (g *Group[V]) MarshalJSON() ([]byte, error) {
	return g.m.MarshalJSON()
}

// Index builds a lookup map keyed by key(item). On duplicate keys the last
// item wins; no error is raised.
func Index[T any](items []T, key func(T) string) *Map[T] {
	m := NewMap[T]()
	for _, item := range items {
		m.Set(key(item), item)
	}
	return m
}

// GroupBy builds a grouping map keyed by key(item), appending items in
// encounter order.
func GroupBy[T any](items []T, key func(T) string) *Group[T] {
	g := NewGroup[T]()
	for _, item := range items {
		g.Append(key(item), item)
	}
	return g
}

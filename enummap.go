package enummap

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Map is a total mapping from the values of an enumerable key type K to
// values of type V, backed by a contiguous array with exactly one slot per
// key. Get and Set are array indexing, not hashing; keys are never stored,
// they are recomputed from the index on demand.
//
// Like a Go slice, a Map value is a small header over shared backing
// storage: copies made by assignment or parameter passing observe each
// other's mutations. Use Clone for an independent copy.
//
// The zero Map has no backing storage and must not be accessed by key;
// construct with New, NewWith, FromMap or FromMapWithDefault.
type Map[K comparable, V any] struct {
	et     *enumType
	values []V
}

// New returns a map holding the zero value of V for every key.
func New[K comparable, V any]() Map[K, V] {
	et := enumTypeFor[K]()
	return Map[K, V]{et, make([]V, et.n)}
}

// NewWith returns a map holding f(k) for every key k. f is called once per
// key, in ascending index order.
func NewWith[K comparable, V any](f func(K) V) Map[K, V] {
	m := New[K, V]()
	for i := range m.values {
		m.values[i] = f(m.keyAt(i))
	}
	return m
}

// FromMap builds a map from explicit per-key entries. Every key must be
// present; a missing key is reported as a *DecodeError wrapping
// ErrKeyNotSpecified, and no map is returned.
func FromMap[K comparable, V any](entries map[K]V) (Map[K, V], error) {
	m := New[K, V]()
	seen := make([]bool, m.Len())
	for k, v := range entries {
		i := m.index(k)
		m.values[i] = v
		seen[i] = true
	}
	for i, ok := range seen {
		if !ok {
			return Map[K, V]{}, decodeErrf(m.et.typ, m.et.text(i), ErrKeyNotSpecified, "")
		}
	}
	return m, nil
}

// FromMapWithDefault builds a map from explicit per-key entries plus a
// fallback value for every key not listed.
func FromMapWithDefault[K comparable, V any](entries map[K]V, rest V) Map[K, V] {
	m := New[K, V]()
	for i := range m.values {
		m.values[i] = rest
	}
	for k, v := range entries {
		m.values[m.index(k)] = v
	}
	return m
}

func (m Map[K, V]) index(key K) int {
	if m.et == nil {
		panic(fmt.Errorf("enummap: use of zero Map[%v, %v]", reflect.TypeOf((*K)(nil)).Elem(), reflect.TypeOf((*V)(nil)).Elem()))
	}
	return m.et.enc(reflect.ValueOf(&key).Elem())
}

func (m Map[K, V]) keyAt(i int) K {
	var key K
	m.et.decode(i, reflect.ValueOf(&key).Elem())
	return key
}

// Len returns the number of keys, which never changes after construction.
func (m Map[K, V]) Len() int {
	return len(m.values)
}

// Get returns the value stored for the given key.
func (m Map[K, V]) Get(key K) V {
	return m.values[m.index(key)]
}

// Ptr returns a pointer to the slot holding the given key's value.
func (m Map[K, V]) Ptr(key K) *V {
	return &m.values[m.index(key)]
}

// Set replaces the value stored for the given key.
func (m Map[K, V]) Set(key K, value V) {
	m.values[m.index(key)] = value
}

// Swap exchanges the values stored for the two keys.
func (m Map[K, V]) Swap(a, b K) {
	i, j := m.index(a), m.index(b)
	m.values[i], m.values[j] = m.values[j], m.values[i]
}

// Values returns the backing storage itself as a slice in index order.
// Mutating the slice mutates the map. The slice must not be resized.
func (m Map[K, V]) Values() []V {
	return m.values
}

// Keys returns all keys in index order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, len(m.values))
	for i := range keys {
		keys[i] = m.keyAt(i)
	}
	return keys
}

// Clone returns a map with its own copy of the backing storage.
func (m Map[K, V]) Clone() Map[K, V] {
	return Map[K, V]{m.et, slices.Clone(m.values)}
}

func (m Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range m.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.et.text(i))
		b.WriteString(": ")
		fmt.Fprint(&b, v)
	}
	b.WriteByte('}')
	return b.String()
}

// MapValues returns a new map over the same key type, holding f(k, v) for
// every entry (k, v) of m, computed in ascending index order.
func MapValues[K comparable, V, W any](m Map[K, V], f func(K, V) W) Map[K, W] {
	out := New[K, W]()
	for i, v := range m.values {
		out.values[i] = f(m.keyAt(i), v)
	}
	return out
}

// Equal reports whether two maps hold equal values for every key.
func Equal[K, V comparable](a, b Map[K, V]) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for i, v := range a.values {
		if b.values[i] != v {
			return false
		}
	}
	return true
}

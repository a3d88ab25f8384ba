package enummap

import "iter"

// ScanOptions adjusts the order of a Scan. The zero value scans in
// ascending index order.
type ScanOptions struct {
	Reverse bool
}

// Cursor steps through the entries of a map one at a time:
//
//	for c := m.Scan(enummap.ScanOptions{}); c.Next(); {
//		use(c.Key(), c.Value())
//	}
//
// Key, Value and Ptr are only valid after Next returned true.
type Cursor[K comparable, V any] struct {
	m    Map[K, V]
	cur  int
	next int
	step int
	left int
}

// Scan returns a cursor over all entries, in ascending index order, or
// descending when opt.Reverse is set.
func (m Map[K, V]) Scan(opt ScanOptions) *Cursor[K, V] {
	c := &Cursor[K, V]{m: m, left: m.Len()}
	if opt.Reverse {
		c.next, c.step = m.Len()-1, -1
	} else {
		c.next, c.step = 0, 1
	}
	return c
}

func (c *Cursor[K, V]) Next() bool {
	if c.left == 0 {
		return false
	}
	c.cur = c.next
	c.next += c.step
	c.left--
	return true
}

func (c *Cursor[K, V]) Key() K {
	return c.m.keyAt(c.cur)
}

func (c *Cursor[K, V]) Value() V {
	return c.m.values[c.cur]
}

func (c *Cursor[K, V]) Ptr() *V {
	return &c.m.values[c.cur]
}

// Remaining returns the exact number of entries the cursor has not yielded
// yet.
func (c *Cursor[K, V]) Remaining() int {
	return c.left
}

// All yields every (key, value) pair in ascending index order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, v := range m.values {
			if !yield(m.keyAt(i), v) {
				return
			}
		}
	}
}

// Backward yields every (key, value) pair in descending index order.
func (m Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.values) - 1; i >= 0; i-- {
			if !yield(m.keyAt(i), m.values[i]) {
				return
			}
		}
	}
}

// Ptrs yields every key together with a pointer to its slot, in ascending
// index order, for mutation during iteration.
func (m Map[K, V]) Ptrs() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range m.values {
			if !yield(m.keyAt(i), &m.values[i]) {
				return
			}
		}
	}
}

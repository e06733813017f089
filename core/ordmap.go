// Package core: insertion-ordered map primitive.
//
// Go's built-in map randomizes iteration order, but the graph contract
// promises that nodes and adjacency rows iterate in insertion order
// (algorithms rely on it for reproducible traversal). ordMap pairs a
// hash index with an intrusive doubly-linked list of entries, giving
// O(1) set/get/delete and ordered iteration. The layout follows the
// classic linked-hash-map design (cf. gods/maps/linkedhashmap), typed
// with generics so keys stay unboxed.

package core

import "iter"

// ordEntry is one key/value cell threaded through the insertion-order list.
type ordEntry[K comparable, V any] struct {
	key        K
	val        V
	prev, next *ordEntry[K, V]
}

// ordMap is an insertion-ordered map.
// Setting an existing key updates the value in place and keeps its position.
type ordMap[K comparable, V any] struct {
	index      map[K]*ordEntry[K, V]
	head, tail *ordEntry[K, V]
}

// newOrdMap returns an empty ordered map. Complexity: O(1).
func newOrdMap[K comparable, V any]() *ordMap[K, V] {
	return &ordMap[K, V]{index: make(map[K]*ordEntry[K, V])}
}

// Len returns the number of stored entries. Complexity: O(1).
func (m *ordMap[K, V]) Len() int { return len(m.index) }

// Has reports whether key is present. Complexity: O(1).
func (m *ordMap[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the value stored under key. Complexity: O(1).
func (m *ordMap[K, V]) Get(key K) (V, bool) {
	if e, ok := m.index[key]; ok {
		return e.val, true
	}
	var zero V
	return zero, false
}

// Set stores val under key. New keys append to the iteration order;
// existing keys keep their position. Complexity: O(1).
func (m *ordMap[K, V]) Set(key K, val V) {
	if e, ok := m.index[key]; ok {
		e.val = val
		return
	}
	e := &ordEntry[K, V]{key: key, val: val, prev: m.tail}
	if m.tail != nil {
		m.tail.next = e
	} else {
		m.head = e
	}
	m.tail = e
	m.index[key] = e
}

// Delete removes key, reporting whether it was present. Complexity: O(1).
func (m *ordMap[K, V]) Delete(key K) bool {
	e, ok := m.index[key]
	if !ok {
		return false
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
	delete(m.index, key)
	return true
}

// First returns the oldest entry. Complexity: O(1).
func (m *ordMap[K, V]) First() (K, V, bool) {
	if m.head == nil {
		var k K
		var v V
		return k, v, false
	}
	return m.head.key, m.head.val, true
}

// Last returns the most recently inserted entry. Complexity: O(1).
func (m *ordMap[K, V]) Last() (K, V, bool) {
	if m.tail == nil {
		var k K
		var v V
		return k, v, false
	}
	return m.tail.key, m.tail.val, true
}

// Keys returns all keys in insertion order. Complexity: O(n).
func (m *ordMap[K, V]) Keys() []K {
	out := make([]K, 0, len(m.index))
	for e := m.head; e != nil; e = e.next {
		out = append(out, e.key)
	}
	return out
}

// All iterates entries in insertion order.
// The map must not be mutated while the sequence is being consumed.
func (m *ordMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := m.head; e != nil; e = e.next {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Package trie implements a generic prefix tree associating sequences of
// key elements with values.
//
// Keys are consumed one element at a time; each node holds exactly one key
// element, so there is no Patricia-style path compression. Lookup is a
// longest-prefix match: searching falls back to the value stored at the node
// where the walk stops, which makes the trie suitable for prefix routing
// tables and similar dispatch structures.
//
// A Trie is not safe for concurrent use with a writer; concurrent readers
// are fine as long as nothing is inserting.
package trie

import (
	"errors"
	"iter"
)

// ErrKeyPresent is returned by Insert when the exact key sequence already
// has a value. The stored value is left unchanged.
var ErrKeyPresent = errors.New("trie: key already present")

// Trie - a node of the prefix tree. Every node is itself a valid trie rooted
// at that node; there is no separate tree wrapper. The zero value is an
// empty trie ready for use.
//
// K is the key-element type and only needs equality, V is the stored value
// type and is never compared.
type Trie[K comparable, V any] struct {
	children []*Trie[K, V]
	key      K // element on the edge from the parent; zero and unused at a root
	value    V
	hasValue bool
}

// New creates a new empty trie.
func New[K comparable, V any]() *Trie[K, V] {
	return &Trie[K, V]{}
}

// Insert associates value with the given key sequence. Intermediate nodes
// are created lazily as the key is walked. Inserting a key that already has
// a value fails with ErrKeyPresent; intermediate nodes created on the way
// are kept, only the final assignment is rejected. The empty key assigns the
// value to t itself.
func (t *Trie[K, V]) Insert(key []K, value V) error {
	return t.insert(sliceNext(key), value)
}

// InsertSeq is Insert for a key produced by a single-use iterator.
func (t *Trie[K, V]) InsertSeq(key iter.Seq[K], value V) error {
	next, stop := iter.Pull(key)
	defer stop()
	return t.insert(next, value)
}

// Search returns a pointer to the value stored at the deepest node reached
// along the key, or nil if no value lies on that path. The walk follows a
// matching child edge whenever one exists and never backs up: once a deeper
// edge is taken, a shallower node's value is no longer a candidate. The
// returned pointer aliases the trie's own storage.
func (t *Trie[K, V]) Search(key []K) *V {
	return t.search(sliceNext(key))
}

// SearchSeq is Search for a key produced by a single-use iterator.
func (t *Trie[K, V]) SearchSeq(key iter.Seq[K]) *V {
	next, stop := iter.Pull(key)
	defer stop()
	return t.search(next)
}

// Size returns the number of values stored in the subtree rooted at t.
func (t *Trie[K, V]) Size() int {
	n := 0
	if t.hasValue {
		n++
	}
	for _, child := range t.children {
		n += child.Size()
	}
	return n
}

// sliceNext adapts a slice to the pull function the recursion consumes.
func sliceNext[K any](key []K) func() (K, bool) {
	i := 0
	return func() (K, bool) {
		if i >= len(key) {
			var zero K
			return zero, false
		}
		elem := key[i]
		i++
		return elem, true
	}
}

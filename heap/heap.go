// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap implements an indexed binary min-heap over node labels,
// keyed by an externally supplied value callback. It maintains a reverse
// map from label to heap position so that a label already in the heap can
// have its priority improved in place ("swim") instead of requiring a
// lazy-decrease-key / stale-entry scheme.
package heap

import "github.com/cpmech/gosl/chk"

// Valuer supplies the value used to order labels, and is notified whenever
// a label's position in the heap changes. The Marcher implements this with
// Value(l) returning jet[l].F.
type Valuer[L comparable] interface {
	Value(l L) float64
	SetPos(l L, pos int)
}

// noPos marks a label that is not currently present in the heap.
const noPos = -1

// Indexed is a fixed-capacity indexed min-heap. Capacity is set once at
// construction and never grows: the Marcher sizes it to the total node
// count, per the resource policy that jet/state/heap storage is dense and
// allocated exactly once.
type Indexed[L comparable] struct {
	v        Valuer[L]
	labels   []L
	reverse  map[L]int
	capacity int
}

// New creates an indexed heap with the given capacity, keyed by v.
func New[L comparable](capacity int, v Valuer[L]) *Indexed[L] {
	return &Indexed[L]{
		v:        v,
		labels:   make([]L, 0, capacity),
		reverse:  make(map[L]int, capacity),
		capacity: capacity,
	}
}

// Size returns the number of labels currently in the heap.
func (h *Indexed[L]) Size() int { return len(h.labels) }

// Front returns the label at the root of the heap (minimum value) and true,
// or the zero value and false if the heap is empty.
func (h *Indexed[L]) Front() (l L, ok bool) {
	if len(h.labels) == 0 {
		return l, false
	}
	return h.labels[0], true
}

// Insert appends l at the end of the heap and restores the heap invariant
// by swimming it toward the root. Inserting past capacity is a
// precondition violation and aborts immediately, per the error-handling
// taxonomy (fatal, not recoverable).
func (h *Indexed[L]) Insert(l L) {
	if len(h.labels) >= h.capacity {
		chk.Panic("heap: insert exceeds capacity %d\n", h.capacity)
	}
	pos := len(h.labels)
	h.labels = append(h.labels, l)
	h.reverse[l] = pos
	h.v.SetPos(l, pos)
	h.swim(pos)
}

// Swim restores the heap invariant for label l after its value has
// decreased, by exchanging it with its parent while it orders before its
// parent.
func (h *Indexed[L]) Swim(l L) {
	pos, ok := h.reverse[l]
	if !ok {
		chk.Panic("heap: swim called on label not in heap\n")
	}
	h.swim(pos)
}

func (h *Indexed[L]) swim(pos int) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if !h.less(pos, parent) {
			break
		}
		h.swap(pos, parent)
		pos = parent
	}
}

// Pop removes and returns the front label, restoring the heap invariant.
// Popping an empty heap is a benign no-op that returns (zero, false); the
// Marcher's solve loop uses this to terminate.
func (h *Indexed[L]) Pop() (l L, ok bool) {
	n := len(h.labels)
	if n == 0 {
		return l, false
	}
	l = h.labels[0]
	last := n - 1
	h.swap(0, last)
	delete(h.reverse, l)
	h.labels = h.labels[:last]
	if last > 0 {
		h.sink(0)
	}
	return l, true
}

func (h *Indexed[L]) sink(pos int) {
	n := len(h.labels)
	for {
		left := 2*pos + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.less(right, left) {
			smallest = right
		}
		if !h.less(smallest, pos) {
			break
		}
		h.swap(pos, smallest)
		pos = smallest
	}
}

func (h *Indexed[L]) less(i, j int) bool {
	return h.v.Value(h.labels[i]) < h.v.Value(h.labels[j])
}

func (h *Indexed[L]) swap(i, j int) {
	h.labels[i], h.labels[j] = h.labels[j], h.labels[i]
	h.reverse[h.labels[i]] = i
	h.reverse[h.labels[j]] = j
	h.v.SetPos(h.labels[i], i)
	h.v.SetPos(h.labels[j], j)
}

// Contains reports whether l currently resides in the heap.
func (h *Indexed[L]) Contains(l L) bool {
	_, ok := h.reverse[l]
	return ok
}

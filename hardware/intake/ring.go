// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package intake

import "sync/atomic"

// Ring is a lock-free single producer, single consumer queue. One goroutine
// may call Push() while another goroutine calls Pop(). The capacity of the
// queue is fixed.
type Ring[T any] struct {
	data []T
	mask uint32

	// padding prevents false sharing between the producer and consumer
	_     [8]uint64
	write atomic.Uint32
	_     [8]uint64
	read  atomic.Uint32
	_     [8]uint64
}

// NewRing creates a new Ring. The size is rounded up to the next power of two.
// One slot is always kept empty so the number of items the ring can hold is
// one less than the size.
func NewRing[T any](size int) *Ring[T] {
	if size <= 1 {
		panic("intake: ring size must be greater than one")
	}
	n := 1
	for n < size {
		n <<= 1
		if n <= 0 {
			panic("intake: ring size too large")
		}
	}
	return &Ring[T]{
		data: make([]T, n),
		mask: uint32(n - 1),
	}
}

// Push adds an item to the queue. Returns false if the queue is full, in which
// case the item has not been added. Producer side only.
func (r *Ring[T]) Push(v T) bool {
	w := r.write.Load()
	next := (w + 1) & r.mask
	if next == r.read.Load() {
		return false
	}
	r.data[w] = v
	r.write.Store(next)
	return true
}

// Pop removes the oldest item from the queue. Returns false if the queue is
// empty. Consumer side only.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	rd := r.read.Load()
	if rd == r.write.Load() {
		return zero, false
	}
	v := r.data[rd]
	r.data[rd] = zero
	r.read.Store((rd + 1) & r.mask)
	return v, true
}

// Len returns the number of items in the queue. The value may be out of date
// by the time it is used if the other side is active.
func (r *Ring[T]) Len() int {
	return int((r.write.Load() - r.read.Load()) & r.mask)
}

// Cap returns the number of items the queue can hold.
func (r *Ring[T]) Cap() int {
	return len(r.data) - 1
}

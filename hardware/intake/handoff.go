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

// Handoff passes batches of events from a producer goroutine to the audio
// goroutine. The producer adds events with Write() and publishes them with
// Flush(). The consumer collects published batches with Collect().
//
// Events are never dropped. If the queue is full when Flush() is called the
// pending batch is kept and more events are added to it.
//
// A reset can be requested with RequestReset(). Every published batch is
// stamped with the number of reset requests made before it was published.
// Batches published before the most recent request are skipped by Collect()
// once the consumer has noticed the request with Reset().
type Handoff struct {
	queue   *Ring[batch]
	pending []Event

	// number of resets requested. written by any goroutine
	requested atomic.Uint64

	// number of resets noticed by the consumer. consumer side only
	generation uint64
}

type batch struct {
	events     []Event
	generation uint64
}

// DefaultHandoffSize is the number of batches that can be waiting to be
// collected.
const DefaultHandoffSize = 64

// NewHandoff creates a new Handoff with space for size batches.
func NewHandoff(size int) *Handoff {
	return &Handoff{
		queue: NewRing[batch](size + 1),
	}
}

// Write adds an event to the pending batch. Producer side only.
func (h *Handoff) Write(e Event) {
	h.pending = append(h.pending, e)
}

// Pending returns the number of events in the pending batch. Producer side
// only.
func (h *Handoff) Pending() int {
	return len(h.pending)
}

// Flush publishes the pending batch. Returns false if the batch could not be
// published because the queue is full. An empty batch is never published.
// Producer side only.
func (h *Handoff) Flush() bool {
	if len(h.pending) == 0 {
		return true
	}
	b := batch{
		events:     h.pending,
		generation: h.requested.Load(),
	}
	if !h.queue.Push(b) {
		return false
	}
	h.pending = nil
	return true
}

// RequestReset marks every batch published so far as out of date. Safe to
// call from any goroutine.
func (h *Handoff) RequestReset() {
	h.requested.Add(1)
}

// Reset returns true if a reset has been requested since the previous call.
// Consumer side only.
func (h *Handoff) Reset() bool {
	g := h.requested.Load()
	if g == h.generation {
		return false
	}
	h.generation = g
	return true
}

// Collect calls the function for every published batch, oldest first.
// Batches published before the most recent reset noticed by Reset() are
// skipped. Consumer side only.
func (h *Handoff) Collect(f func(batch []Event)) {
	for {
		b, ok := h.queue.Pop()
		if !ok {
			return
		}
		if b.generation < h.generation {
			continue
		}
		f(b.events)
	}
}

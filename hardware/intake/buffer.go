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

// Buffer holds events that have been received but not yet applied. Events
// are appended in batches and are removed from the front with Drain() as the
// audio clock reaches their timestamps.
//
// The backing array only ever grows and it grows by doubling its capacity.
// Consumed events are removed by Compact(), which should be called once per
// block of audio.
type Buffer struct {
	events []Event
	cursor int
}

// DefaultBufferSize is the initial capacity of a Buffer.
const DefaultBufferSize = 4096

// NewBuffer creates a new Buffer with the initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		events: make([]Event, 0, capacity),
	}
}

// Append adds a batch of events to the end of the buffer.
func (b *Buffer) Append(batch []Event) {
	n := len(b.events) + len(batch)
	if n > cap(b.events) {
		c := max(cap(b.events)*2, 16)
		for c < n {
			c *= 2
		}
		e := make([]Event, len(b.events), c)
		copy(e, b.events)
		b.events = e
	}
	b.events = append(b.events, batch...)
}

// Drain calls the apply function, in order, for every event in the buffer
// with a timestamp no later than now. Drain stops at the first event that is
// in the future. Returns the number of events applied.
func (b *Buffer) Drain(now float64, apply func(Event)) int {
	start := b.cursor
	for b.cursor < len(b.events) && b.events[b.cursor].Time <= now {
		apply(b.events[b.cursor])
		b.cursor++
	}
	return b.cursor - start
}

// Compact removes consumed events from the buffer.
func (b *Buffer) Compact() {
	if b.cursor == 0 {
		return
	}
	n := copy(b.events, b.events[b.cursor:])
	b.events = b.events[:n]
	b.cursor = 0
}

// Clear removes all events from the buffer. The capacity of the buffer is
// unchanged.
func (b *Buffer) Clear() {
	b.events = b.events[:0]
	b.cursor = 0
}

// Len returns the number of events waiting to be applied.
func (b *Buffer) Len() int {
	return len(b.events) - b.cursor
}

// Cap returns the capacity of the buffer.
func (b *Buffer) Cap() int {
	return cap(b.events)
}

// Span returns the time between the first and last waiting event. Returns
// zero if there are fewer than two events waiting.
func (b *Buffer) Span() float64 {
	if b.Len() < 2 {
		return 0
	}
	return b.events[len(b.events)-1].Time - b.events[b.cursor].Time
}

// Last returns the timestamp of the last event in the buffer and true. If the
// buffer is empty the function returns false.
func (b *Buffer) Last() (float64, bool) {
	if b.Len() == 0 {
		return 0, false
	}
	return b.events[len(b.events)-1].Time, true
}

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

package playmode

import (
	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/hardware/pokey"
)

// Writer is the producer side of the engine. The hardware.Engine type
// satisfies this interface.
type Writer interface {
	Write(register uint8, value uint8, time float64)
	Flush() bool
}

// the number of register indexes over both chips
const numShadow = 0x20

// Feeder writes events from a list to a Writer as time passes. The time base
// of the Feeder starts at zero with the first event in the list.
type Feeder struct {
	w      Writer
	events []intake.Event
	idx    int

	// added to the time of an event to get the time in the Feeder's time
	// base
	offset float64

	// writes have been made that have not been flushed successfully
	pending bool

	// the most recent value written to each register. a value of -1 means
	// the register has not been written to
	shadow [numShadow]int
}

// NewFeeder is the preferred method of initialisation for the Feeder type.
// The events must be in time order.
func NewFeeder(w Writer, events []intake.Event) *Feeder {
	f := &Feeder{
		w:      w,
		events: events,
	}
	if len(events) > 0 {
		f.offset = -events[0].Time
	}
	for i := range f.shadow {
		f.shadow[i] = -1
	}
	return f
}

// Feed writes all events up to and including the time specified and then
// flushes the writes. Returns the number of events written.
func (f *Feeder) Feed(now float64) int {
	var n int
	for f.idx < len(f.events) {
		e := f.events[f.idx]
		t := e.Time + f.offset
		if t > now {
			break
		}
		f.write(e.Register, e.Value, t)
		f.idx++
		n++
	}

	if f.pending {
		f.pending = !f.w.Flush()
	}

	return n
}

func (f *Feeder) write(register uint8, value uint8, t float64) {
	f.w.Write(register, value, t)
	f.shadow[register&(numShadow-1)] = int(value)
	f.pending = true
}

// Done returns true when all events have been written and flushed.
func (f *Feeder) Done() bool {
	return f.idx >= len(f.events) && !f.pending
}

// Rewind the list of events so that the first event happens at the time
// specified.
func (f *Feeder) Rewind(now float64) {
	f.idx = 0
	if len(f.events) > 0 {
		f.offset = now - f.events[0].Time
	}
}

// Skip moves the time base of the Feeder forward by the specified amount.
// Events that have not been written yet will be written later than they
// would otherwise have been.
func (f *Feeder) Skip(d float64) {
	f.offset += d
}

// Restore writes the most recent value of every register that has been
// written to. Used to return the engine to the correct state after a reset.
func (f *Feeder) Restore(now float64) {
	for r, v := range f.shadow {
		if v >= 0 && r&0x0f < int(pokey.NumRegisters) {
			f.write(uint8(r), uint8(v), now)
		}
	}
	f.pending = !f.w.Flush()
}

// Silence writes zero to the control register of every channel on both
// chips. The shadow registers are not changed so a later call to Restore()
// will return the channels to their previous state.
func (f *Feeder) Silence(now float64) {
	for side := range 2 {
		for _, r := range []uint8{pokey.AUDC1, pokey.AUDC2, pokey.AUDC3, pokey.AUDC4, pokey.CONSOLE} {
			f.w.Write(uint8(side<<4)|r, 0, now)
		}
	}
	f.pending = !f.w.Flush()
}

// Position returns the index of the next event to be written and the total
// number of events.
func (f *Feeder) Position() (int, int) {
	return f.idx, len(f.events)
}

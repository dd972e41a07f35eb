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

package tracker

import (
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/hardware/pokey"
)

// Entry is a single row in the tracker history.
type Entry struct {
	// time of the register write that caused the entry
	Time float64

	// the chip (zero or one) and channel (zero to three) that the entry
	// describes. a channel of -1 indicates a change of the AUDCTL register
	Side    int
	Channel int

	// copy of the chip's registers after the write
	Registers pokey.Registers

	Distortion  string
	Frequency   float64
	MusicalNote MusicalNote
}

// the maximum number of entries kept by the tracker
const maxEntries = 1024

// the number of register writes that can be waiting to be added to the
// history
const queueSize = 4096

// Tracker implements the hardware.Tap interface and keeps a history of the
// audio registers over time.
//
// RegisterWrite() only queues the event. The queue is folded into the history
// by the other Tracker functions. If the queue fills up events are lost and
// the number of lost events is reported by Lost().
type Tracker struct {
	clock float64

	queue    *intake.Ring[intake.Event]
	overflow atomic.Uint64

	crit struct {
		section sync.Mutex

		// shadow copy of the registers for each chip
		registers [2]pokey.Registers

		entries []Entry
	}
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The clock rate is the rate of the machine clock in Hz and is used to
// convert divider values into frequencies.
func NewTracker(clockRate int) *Tracker {
	tr := &Tracker{
		clock: float64(clockRate),
		queue: intake.NewRing[intake.Event](queueSize),
	}
	tr.crit.entries = make([]Entry, 0, maxEntries)
	return tr
}

// RegisterWrite implements the hardware.Tap interface.
func (tr *Tracker) RegisterWrite(e intake.Event) {
	if !tr.queue.Push(e) {
		tr.overflow.Add(1)
	}
}

// Lost returns the number of events that have been lost because the queue
// was full.
func (tr *Tracker) Lost() uint64 {
	return tr.overflow.Load()
}

// fold queued events into the history. must be called with the critical
// section held
func (tr *Tracker) fold() {
	for {
		e, ok := tr.queue.Pop()
		if !ok {
			return
		}
		tr.update(e)
	}
}

// update shadow registers with event and add an entry to the history if
// the event changes anything. must be called with the critical section held
func (tr *Tracker) update(e intake.Event) {
	idx := e.Index()
	if idx >= pokey.NumRegisters {
		return
	}

	side := e.Side()
	reg := &tr.crit.registers[side]

	switch {
	case idx == pokey.AUDCTL:
		if reg.AUDCTL == e.Value {
			return
		}
		reg.AUDCTL = e.Value
		tr.add(Entry{
			Time:       e.Time,
			Side:       side,
			Channel:    -1,
			Registers:  *reg,
			Distortion: describeAUDCTL(e.Value),
			Frequency:  tr.clock / float64(reg.BaseClock()),
		})
		return

	case idx == pokey.CONSOLE:
		reg.Console = e.Value
		return
	}

	channel := int(idx >> 1)
	if idx&0x01 == 0 {
		if reg.AUDF[channel] == e.Value {
			return
		}
		reg.AUDF[channel] = e.Value
	} else {
		if reg.AUDC[channel] == e.Value {
			return
		}
		reg.AUDC[channel] = e.Value
	}

	// the low channel of a linked pair is not heard. report the change
	// against the high channel instead
	if reg.Linked(channel) && channel&0x01 == 0 {
		channel++
	}

	f := Frequency(*reg, channel, tr.clock)
	tr.add(Entry{
		Time:        e.Time,
		Side:        side,
		Channel:     channel,
		Registers:   *reg,
		Distortion:  LookupDistortion(*reg, channel),
		Frequency:   f,
		MusicalNote: LookupMusicalNote(*reg, channel, f),
	})
}

// add entry to history. must be called with the critical section held
func (tr *Tracker) add(e Entry) {
	tr.crit.entries = append(tr.crit.entries, e)
	if len(tr.crit.entries) > maxEntries {
		tr.crit.entries = tr.crit.entries[1:]
	}
}

// Copy makes a copy of the Tracker entries.
func (tr *Tracker) Copy() []Entry {
	tr.crit.section.Lock()
	defer tr.crit.section.Unlock()
	tr.fold()
	c := make([]Entry, len(tr.crit.entries))
	copy(c, tr.crit.entries)
	return c
}

// Since returns a copy of the entries with a time later than the value
// given.
func (tr *Tracker) Since(t float64) []Entry {
	tr.crit.section.Lock()
	defer tr.crit.section.Unlock()
	tr.fold()

	var c []Entry
	for _, e := range tr.crit.entries {
		if e.Time > t {
			c = append(c, e)
		}
	}
	return c
}

// Registers returns the tracker's copy of the registers for the chip.
func (tr *Tracker) Registers(side int) pokey.Registers {
	tr.crit.section.Lock()
	defer tr.crit.section.Unlock()
	tr.fold()
	return tr.crit.registers[side&0x01]
}

// Reset clears the history and the shadow registers. Queued events are
// discarded.
func (tr *Tracker) Reset() {
	tr.crit.section.Lock()
	defer tr.crit.section.Unlock()
	for {
		if _, ok := tr.queue.Pop(); !ok {
			break
		}
	}
	tr.crit.entries = tr.crit.entries[:0]
	tr.crit.registers = [2]pokey.Registers{}
}

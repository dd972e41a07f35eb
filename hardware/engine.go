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

package hardware

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/hardware/pokey"
	"github.com/jetsetilly/gopokey/hardware/pokey/filter"
	"github.com/jetsetilly/gopokey/hardware/preferences"
	"github.com/jetsetilly/gopokey/logger"
)

// Tap implementations are notified of every register write as it is applied
// by the engine. The time of the event has been adjusted to the audio clock.
//
// RegisterWrite() is called by the audio goroutine and must not block.
type Tap interface {
	RegisterWrite(e intake.Event)
}

// wrapper for the Tap interface so that it can be stored atomically
type tapRef struct {
	tap Tap
}

// Stats is a snapshot of the engine's counters.
type Stats struct {
	// number of samples rendered
	Samples uint64

	// number of events applied to a chip
	Events uint64

	// number of events discarded because the register index was not valid or
	// because the time of the event was not a finite number
	Discarded uint64

	// number of resets performed
	Resets uint64

	// number of batches received from the producer
	Batches uint64

	// number of adjustments made to the synchronisation offset
	SyncAdjustments int

	// number of events waiting to be applied
	Buffered int

	// whether the output is currently in stereo
	Stereo bool

	// the chip used for mono output
	Active int
}

func (s Stats) mode() string {
	if s.Stereo {
		return "stereo"
	}
	if s.Active == 1 {
		return "mono (right chip)"
	}
	return "mono"
}

func (s Stats) String() string {
	return fmt.Sprintf("samples: %d  events: %d  discarded: %d  resets: %d  batches: %d  sync: %d  buffered: %d  %s",
		s.Samples, s.Events, s.Discarded, s.Resets, s.Batches, s.SyncAdjustments, s.Buffered, s.mode())
}

// Engine is the sound engine. It contains two pokey chips and converts their
// output to the output rate.
//
// Write() and Flush() must only be called by the producer goroutine. Render(),
// Registers() and String() must only be called by the audio goroutine. Report()
// must not be called by the audio goroutine. All other functions are safe to
// call from any goroutine.
type Engine struct {
	prefs  *preferences.Preferences
	design filter.Design
	rate   float64

	chips    [2]*pokey.Pokey
	filters  [2]filter.Decimator
	blockers [2]*filter.DCBlocker
	mixing   pokey.Mixing

	handoff *intake.Handoff
	sync    *intake.Sync
	buffer  *intake.Buffer
	arbiter *Arbiter

	// the number of samples rendered since the engine was created. the audio
	// clock is derived from this
	sampleCnt uint64

	// sides written to during the current drain of the event buffer
	sides uint8

	// preference values. updated at the start of every Render()
	consoleSpeaker bool
	dcBlocker      bool

	// the apply() function as a value. saves creating a new function value
	// every time the buffer is drained
	applyFn func(intake.Event)

	tap atomic.Pointer[tapRef]

	stats struct {
		samples         atomic.Uint64
		events          atomic.Uint64
		discarded       atomic.Uint64
		resets          atomic.Uint64
		batches         atomic.Uint64
		syncAdjustments atomic.Int64
		buffered        atomic.Int64
		stereo          atomic.Bool
		active          atomic.Int32
	}

	// the values most recently logged by Report()
	reported struct {
		crit   sync.Mutex
		resets uint64
		stereo bool
		active int32
	}
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The rate argument is the output rate in Hz. An error is returned if there is
// no filter design for the rate.
func NewEngine(rate int, prefs *preferences.Preferences) (*Engine, error) {
	design, err := filter.Lookup(rate)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		prefs:   prefs,
		design:  design,
		rate:    float64(rate),
		mixing:  prefs.MixingLaw(),
		handoff: intake.NewHandoff(intake.DefaultHandoffSize),
		buffer:  intake.NewBuffer(intake.DefaultBufferSize),
		sync: intake.NewSync(prefs.MinLatency.Get().(float64),
			prefs.MaxLatency.Get().(float64)),
		arbiter: NewArbiter(prefs.StereoThreshold.Get().(int)),
	}

	for i := range e.chips {
		e.chips[i] = pokey.NewPokey(e.mixing)
		e.filters[i] = design.NewDecimator()
		e.blockers[i] = filter.NewDCBlocker(rate)
	}

	e.applyFn = e.apply

	logger.Logf(logger.Allow, "engine", "output rate %s", design)

	return e, nil
}

// Rate returns the output rate in Hz.
func (e *Engine) Rate() int {
	return e.design.Rate
}

// Design returns the filter design used by the engine.
func (e *Engine) Design() filter.Design {
	return e.design
}

// Write queues a register write. The write is not seen by the audio
// goroutine until Flush() is called. The time of the write is in seconds and
// can be in any time base, so long as it is consistent.
func (e *Engine) Write(register uint8, value uint8, time float64) {
	e.handoff.Write(intake.Event{
		Register: register,
		Value:    value,
		Time:     time,
	})
}

// Flush publishes the writes queued since the last successful Flush(). If
// the audio goroutine has fallen behind the writes remain queued and false is
// returned. Nothing is lost in that case and the writes will be published by
// a later call to Flush().
func (e *Engine) Flush() bool {
	return e.handoff.Flush()
}

// Reset requests a reset of the engine. The reset happens at the start of the
// next call to Render(). Writes flushed before the request are discarded.
// Writes flushed after the request are applied after the reset.
func (e *Engine) Reset() {
	e.handoff.RequestReset()
}

// AttachTap adds a Tap to the engine, replacing any existing Tap. A nil value
// removes the Tap.
func (e *Engine) AttachTap(tap Tap) {
	if tap == nil {
		e.tap.Store(nil)
		return
	}
	e.tap.Store(&tapRef{tap: tap})
}

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Samples:         e.stats.samples.Load(),
		Events:          e.stats.events.Load(),
		Discarded:       e.stats.discarded.Load(),
		Resets:          e.stats.resets.Load(),
		Batches:         e.stats.batches.Load(),
		SyncAdjustments: int(e.stats.syncAdjustments.Load()),
		Buffered:        int(e.stats.buffered.Load()),
		Stereo:          e.stats.stereo.Load(),
		Active:          int(e.stats.active.Load()),
	}
}

// Report logs resets and changes to the output mode that have happened since
// the previous call to Report(). The audio goroutine never logs.
func (e *Engine) Report() {
	e.reported.crit.Lock()
	defer e.reported.crit.Unlock()

	if r := e.stats.resets.Load(); r != e.reported.resets {
		e.reported.resets = r
		logger.Log(logger.Allow, "engine", "reset")
	}

	stereo := e.stats.stereo.Load()
	active := e.stats.active.Load()
	if stereo != e.reported.stereo || active != e.reported.active {
		e.reported.stereo = stereo
		e.reported.active = active
		logger.Logf(logger.Allow, "engine", "output is %s", Stats{Stereo: stereo, Active: int(active)}.mode())
	}
}

// Registers returns the registers of the chip on the specified side. Zero for
// the left chip and one for the right chip.
func (e *Engine) Registers(side int) pokey.Registers {
	return e.chips[side&0x01].Registers()
}

func (e *Engine) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("L: %s\n", e.chips[0]))
	s.WriteString(fmt.Sprintf("R: %s\n", e.chips[1]))
	s.WriteString(e.arbiter.String())
	return s.String()
}

func (e *Engine) reset() {
	for i := range e.chips {
		e.chips[i].Reset()
		e.filters[i].Reset()
		e.blockers[i].Reset()
	}
	e.buffer.Clear()
	e.sync.Reset()
	e.arbiter.Reset()
	e.stats.stereo.Store(false)
	e.stats.active.Store(0)
	e.stats.resets.Add(1)
}

// apply an event to one of the chips. called by the event buffer as the audio
// clock reaches the event
func (e *Engine) apply(ev intake.Event) {
	idx := ev.Index()
	if idx > pokey.AUDCTL && !(idx == pokey.CONSOLE && e.consoleSpeaker) {
		e.stats.discarded.Add(1)
		return
	}

	side := ev.Side()
	e.chips[side].Write(idx, ev.Value)
	e.sides |= uint8(side + 1)
	e.stats.events.Add(1)

	if t := e.tap.Load(); t != nil {
		t.tap.RegisterWrite(ev)
	}
}

// tick one chip for the duration of an output sample and return the filtered
// output
func (e *Engine) tick(side int) float32 {
	chip := e.chips[side]
	dec := e.filters[side]
	for range e.design.Ratio {
		dec.Push(chip.Step())
	}
	v := dec.Output()
	if e.dcBlocker {
		v = e.blockers[side].Filter(v)
	}
	return v
}

// Render fills the output buffers with the next samples. The right buffer can
// be nil, in which case the left buffer receives the average of the two chips
// when output is in stereo. If it is not nil the right buffer must be at least
// as long as the left buffer.
func (e *Engine) Render(left []float32, right []float32) {
	if e.handoff.Reset() {
		e.reset()
	}

	// preferences that can change while the engine is running
	volume := float32(e.prefs.Volume.Get().(float64))
	e.consoleSpeaker = e.prefs.ConsoleSpeaker.Get().(bool)
	e.dcBlocker = e.prefs.DCBlocker.Get().(bool)
	if m := e.prefs.MixingLaw(); m != e.mixing {
		e.mixing = m
		for _, chip := range e.chips {
			chip.SetMixing(m)
		}
	}

	now := float64(e.sampleCnt) / e.rate
	e.handoff.Collect(func(batch []intake.Event) {
		batch, n := intake.DiscardMalformed(batch)
		e.stats.discarded.Add(uint64(n))
		e.sync.Adjust(batch, now)
		e.buffer.Append(batch)
		e.stats.batches.Add(1)
	})

	for i := range left {
		e.sides = 0
		e.buffer.Drain(float64(e.sampleCnt)/e.rate, e.applyFn)
		if e.arbiter.Update(e.sides) {
			e.stats.stereo.Store(e.arbiter.Stereo())
			e.stats.active.Store(int32(e.arbiter.Active()))
		}

		if e.arbiter.Stereo() {
			l := e.tick(0)
			r := e.tick(1)
			if right == nil {
				left[i] = (l + r) * 0.5 * volume
			} else {
				left[i] = l * volume
				right[i] = r * volume
			}
		} else {
			left[i] = e.tick(e.arbiter.Active()) * volume
			if right != nil {
				right[i] = left[i]
			}
		}

		e.sampleCnt++
	}

	e.buffer.Compact()

	e.stats.samples.Store(e.sampleCnt)
	e.stats.syncAdjustments.Store(int64(e.sync.Adjustments()))
	e.stats.buffered.Store(int64(e.buffer.Len()))
}

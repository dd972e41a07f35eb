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

package tracker_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/hardware/pokey"
	"github.com/jetsetilly/gopokey/test"
	"github.com/jetsetilly/gopokey/tracker"
)

const clock = 1789790

func TestDistortion(t *testing.T) {
	var reg pokey.Registers

	for _, c := range []struct {
		audc   uint8
		audctl uint8
		expect string
	}{
		{0xa8, 0x00, "Pure"},
		{0xe8, 0x00, "Pure"},
		{0x28, 0x00, "Pure"},
		{0x08, 0x00, "Noise 5/17"},
		{0x08, 0x80, "Noise 5/9"},
		{0x48, 0x00, "Buzz 5/4"},
		{0x88, 0x00, "Noise 17"},
		{0x88, 0x80, "Noise 9"},
		{0xc8, 0x00, "Buzz 4"},
		{0x18, 0x00, "Volume"},
		{0xb8, 0x00, "Volume"},
	} {
		reg.AUDC[0] = c.audc
		reg.AUDCTL = c.audctl
		test.ExpectEquality(t, tracker.LookupDistortion(reg, 0), c.expect, c.audc)
	}
}

func TestFrequency(t *testing.T) {
	var reg pokey.Registers

	// 64kHz base clock
	reg.AUDF[0] = 0x40
	reg.AUDC[0] = 0xa8
	test.ExpectApproximate(t, tracker.Frequency(reg, 0, clock), clock/28.0/130.0, 0.0001)

	// 15kHz base clock
	reg.AUDCTL = 0x01
	test.ExpectApproximate(t, tracker.Frequency(reg, 0, clock), clock/114.0/130.0, 0.0001)

	// machine clock
	reg.AUDCTL = 0x40
	reg.AUDF[0] = 0x00
	test.ExpectApproximate(t, tracker.Frequency(reg, 0, clock), clock/8.0, 0.0001)

	// linked channels at the base clock. the low channel has no frequency
	reg.AUDCTL = 0x10
	reg.AUDF[1] = 0x01
	test.ExpectEquality(t, tracker.Frequency(reg, 0, clock), 0.0)
	test.ExpectApproximate(t, tracker.Frequency(reg, 1, clock), clock/28.0/514.0, 0.0001)

	// linked channels with the low channel at the machine clock
	reg.AUDCTL = 0x28
	reg.AUDF[2] = 0x3a
	reg.AUDF[3] = 0x12
	test.ExpectApproximate(t, tracker.Frequency(reg, 3, clock), clock/(2.0*(0x123a+7)), 0.0001)

	// volume only
	reg.AUDC[3] = 0x1f
	test.ExpectEquality(t, tracker.Frequency(reg, 3, clock), 0.0)
}

func TestMusicalNote(t *testing.T) {
	test.ExpectEquality(t, tracker.NoteFromFrequency(440), "A4")
	test.ExpectEquality(t, tracker.NoteFromFrequency(261.63), "C4")
	test.ExpectEquality(t, tracker.NoteFromFrequency(466.16), "A#4")
	test.ExpectEquality(t, tracker.NoteFromFrequency(27.5), "A0")
	test.ExpectEquality(t, tracker.NoteFromFrequency(0), tracker.NoMusicalNote)
	test.ExpectEquality(t, tracker.NoteFromFrequency(1000000), tracker.NoMusicalNote)

	var reg pokey.Registers
	reg.AUDC[0] = 0x08
	test.ExpectEquality(t, tracker.LookupMusicalNote(reg, 0, 440), tracker.NoMusicalNote)
	reg.AUDC[0] = 0xa8
	test.ExpectEquality(t, tracker.LookupMusicalNote(reg, 0, 440), "A4")
}

func TestTracker(t *testing.T) {
	tr := tracker.NewTracker(clock)

	tr.RegisterWrite(intake.Event{Register: pokey.AUDF1, Value: 0x40, Time: 0.1})
	tr.RegisterWrite(intake.Event{Register: pokey.AUDC1, Value: 0xa8, Time: 0.2})

	// repeated write does not create an entry
	tr.RegisterWrite(intake.Event{Register: pokey.AUDC1, Value: 0xa8, Time: 0.3})

	// malformed register index is ignored
	tr.RegisterWrite(intake.Event{Register: 0x0c, Value: 0xff, Time: 0.3})

	e := tr.Copy()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Channel, 0)
	test.ExpectEquality(t, e[0].Side, 0)
	test.ExpectEquality(t, e[1].Time, 0.2)
	test.ExpectEquality(t, e[1].Distortion, "Pure")
	test.ExpectEquality(t, e[1].MusicalNote, "B4")
	test.ExpectEquality(t, e[1].Registers.AUDF[0], uint8(0x40))

	// right chip
	tr.RegisterWrite(intake.Event{Register: 0x10 | pokey.AUDC3, Value: 0x88, Time: 0.4})
	e = tr.Since(0.2)
	test.DemandEquality(t, len(e), 1)
	test.ExpectEquality(t, e[0].Side, 1)
	test.ExpectEquality(t, e[0].Channel, 2)
	test.ExpectEquality(t, e[0].Distortion, "Noise 17")
	test.ExpectEquality(t, tr.Registers(1).AUDC[2], uint8(0x88))
	test.ExpectEquality(t, tr.Registers(0).AUDC[2], uint8(0x00))

	// AUDCTL entry and linked channels
	tr.RegisterWrite(intake.Event{Register: pokey.AUDCTL, Value: 0x10, Time: 0.5})
	tr.RegisterWrite(intake.Event{Register: pokey.AUDF1, Value: 0x41, Time: 0.6})
	e = tr.Since(0.4)
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Channel, -1)
	test.ExpectEquality(t, e[0].Distortion, "64kHz link12")
	test.ExpectEquality(t, e[1].Channel, 1)

	tr.Reset()
	test.ExpectEquality(t, len(tr.Copy()), 0)
	test.ExpectEquality(t, tr.Registers(0).AUDF[0], uint8(0x00))
}

func TestTrackerHistoryLimit(t *testing.T) {
	tr := tracker.NewTracker(clock)
	for i := range 2000 {
		tr.RegisterWrite(intake.Event{Register: pokey.AUDF2, Value: uint8(i), Time: float64(i)})
	}
	e := tr.Copy()
	test.ExpectEquality(t, len(e), 1024)
	test.ExpectEquality(t, e[len(e)-1].Time, 1999.0)
	test.ExpectEquality(t, e[0].Time, 976.0)
}

func TestTrackerQueueFull(t *testing.T) {
	tr := tracker.NewTracker(clock)
	for i := range 5000 {
		tr.RegisterWrite(intake.Event{Register: pokey.AUDF2, Value: uint8(i), Time: float64(i)})
	}
	test.ExpectEquality(t, tr.Lost(), uint64(5000-4095))

	// events written after the queue filled are lost
	e := tr.Copy()
	test.DemandEquality(t, len(e), 1024)
	test.ExpectEquality(t, e[len(e)-1].Time, 4094.0)

	// queued events are discarded by a reset
	tr.RegisterWrite(intake.Event{Register: pokey.AUDF2, Value: 0x01, Time: 5000})
	tr.Reset()
	test.ExpectEquality(t, len(tr.Copy()), 0)
	test.ExpectEquality(t, tr.Registers(0).AUDF[1], uint8(0x00))
}

func TestTrackerConcurrent(t *testing.T) {
	const n = 20000
	tr := tracker.NewTracker(clock)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range n {
			tr.RegisterWrite(intake.Event{Register: pokey.AUDF2, Value: uint8(i), Time: float64(i)})
		}
	}()

	last := -1.0
	check := func() {
		for _, e := range tr.Since(last) {
			test.ExpectSuccess(t, e.Time > last)
			test.ExpectEquality(t, e.Registers.AUDF[1], uint8(int(e.Time)))
			last = e.Time
		}
	}

	done := make(chan bool)
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		select {
		case <-done:
			check()
			test.ExpectSuccess(t, last > 0)
			return
		default:
			check()
		}
	}
}

func TestTable(t *testing.T) {
	tr := tracker.NewTracker(clock)
	tr.RegisterWrite(intake.Event{Register: pokey.AUDF1, Value: 0x40, Time: 0.1})
	tr.RegisterWrite(intake.Event{Register: pokey.AUDC1, Value: 0xa8, Time: 0.2})
	tr.RegisterWrite(intake.Event{Register: pokey.AUDCTL, Value: 0x01, Time: 0.3})

	tb := tracker.NewTable()
	test.ExpectSuccess(t, strings.Contains(tb.Header(), "distortion"))

	var s strings.Builder
	test.ExpectSuccess(t, tb.Write(&s, tr.Copy()))

	rows := strings.Split(strings.TrimSpace(s.String()), "\n")
	test.DemandEquality(t, len(rows), 3)
	test.ExpectSuccess(t, strings.Contains(rows[0], "silent"))
	test.ExpectSuccess(t, strings.Contains(rows[1], "B4"))
	test.ExpectSuccess(t, strings.Contains(rows[1], "40 a8"))
	test.ExpectSuccess(t, strings.Contains(rows[2], "15kHz"))

	// entries already written are not written again
	s.Reset()
	test.ExpectSuccess(t, tb.Write(&s, tr.Since(0.2)))
	test.ExpectSuccess(t, tb.Write(&s, tr.Copy()[:1]))
	test.ExpectEquality(t, strings.Count(s.String(), "\n"), 1)
}

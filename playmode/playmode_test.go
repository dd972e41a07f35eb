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

package playmode_test

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopokey/hardware"
	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/hardware/preferences"
	"github.com/jetsetilly/gopokey/logger"
	"github.com/jetsetilly/gopokey/playmode"
	"github.com/jetsetilly/gopokey/prefs"
	"github.com/jetsetilly/gopokey/recorder"
	"github.com/jetsetilly/gopokey/test"
	"github.com/jetsetilly/gopokey/tracker"
)

// writer records calls to Write() and Flush()
type writer struct {
	events  []intake.Event
	flushed int
	refuse  bool
}

func (w *writer) Write(register uint8, value uint8, time float64) {
	w.events = append(w.events, intake.Event{Register: register, Value: value, Time: time})
}

func (w *writer) Flush() bool {
	if w.refuse {
		return false
	}
	w.flushed = len(w.events)
	return true
}

var score = []intake.Event{
	{Register: 0x00, Value: 0x40, Time: 10.0},
	{Register: 0x01, Value: 0xaf, Time: 10.0},
	{Register: 0x01, Value: 0xa0, Time: 10.2},
}

func TestFeeder(t *testing.T) {
	w := &writer{}
	f := playmode.NewFeeder(w, score)

	// time base of feeder starts with the first event
	test.ExpectEquality(t, f.Feed(0.0), 2)
	test.ExpectEquality(t, w.flushed, 2)
	test.ExpectEquality(t, w.events[0].Time, 0.0)
	test.ExpectFailure(t, f.Done())

	test.ExpectEquality(t, f.Feed(0.1), 0)
	test.ExpectEquality(t, f.Feed(0.25), 1)
	test.ExpectApproximate(t, w.events[2].Time, 0.2, 0.0001)
	test.ExpectSuccess(t, f.Done())

	// rewind and refuse the flush. feeder is not done until a flush succeeds
	f.Rewind(1.0)
	w.refuse = true
	test.ExpectEquality(t, f.Feed(2.0), 3)
	test.ExpectApproximate(t, w.events[3].Time, 1.0, 0.0001)
	test.ExpectFailure(t, f.Done())
	w.refuse = false
	test.ExpectEquality(t, f.Feed(2.0), 0)
	test.ExpectSuccess(t, f.Done())
	test.ExpectEquality(t, w.flushed, 6)
}

func TestFeederSilenceRestore(t *testing.T) {
	w := &writer{}
	f := playmode.NewFeeder(w, score)
	f.Feed(0.0)

	// silence writes to the control registers of all channels, including the
	// console speaker, on both chips
	f.Silence(0.1)
	test.ExpectEquality(t, len(w.events), 2+10)
	for _, e := range w.events[2:] {
		test.ExpectEquality(t, e.Value, uint8(0))
	}

	// events are delayed by the skip
	f.Skip(1.0)
	f.Restore(1.1)
	test.DemandEquality(t, len(w.events), 14)
	test.ExpectEquality(t, w.events[12].Register, uint8(0x00))
	test.ExpectEquality(t, w.events[12].Value, uint8(0x40))
	test.ExpectEquality(t, w.events[13].Register, uint8(0x01))
	test.ExpectEquality(t, w.events[13].Value, uint8(0xaf))

	test.ExpectEquality(t, f.Feed(1.1), 0)
	test.ExpectEquality(t, f.Feed(1.2), 1)
	i, n := f.Position()
	test.ExpectEquality(t, i, 3)
	test.ExpectEquality(t, n, 3)
}

// sink collects rendered samples
type sink struct {
	left  []float32
	right []float32
}

func (s *sink) Write(left []float32, right []float32) error {
	s.left = append(s.left, left...)
	s.right = append(s.right, right...)
	return nil
}

func rms(s []float32) float64 {
	var t float64
	for _, v := range s {
		t += float64(v) * float64(v)
	}
	return math.Sqrt(t / float64(len(s)))
}

func newEngine(t *testing.T) (*hardware.Engine, *preferences.Preferences) {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	e, err := hardware.NewEngine(48000, p)
	test.DemandSuccess(t, err)
	return e, p
}

func TestRender(t *testing.T) {
	eng, _ := newEngine(t)
	plb := recorder.NewPlaybackFromEvents("test", 48000, score)

	s := &sink{}
	test.DemandSuccess(t, playmode.Render(eng, plb, s, 0, false))

	// duration of playback plus the tail
	test.ExpectEquality(t, len(s.left), int(0.7*48000))
	test.ExpectEquality(t, len(s.right), 0)

	tone := rms(s.left[int(0.05*48000):int(0.2*48000)])
	quiet := rms(s.left[int(0.6*48000):])
	test.ExpectSuccess(t, tone > 0.01)
	test.ExpectSuccess(t, quiet < tone/10)

	test.ExpectEquality(t, eng.Stats().Events, uint64(3))
}

func TestRenderStereo(t *testing.T) {
	eng, _ := newEngine(t)
	plb := recorder.NewPlaybackFromEvents("test", 48000, score)

	s := &sink{}
	test.DemandSuccess(t, playmode.Render(eng, plb, s, 0.1, true))
	test.ExpectEquality(t, len(s.left), 4800)
	test.ExpectEquality(t, len(s.right), 4800)
}

// backend renders from the engine in real time until End() is called
type backend struct {
	eng     *hardware.Engine
	started bool
	ended   bool
	quit    chan bool
	done    chan bool
}

func newBackend(eng *hardware.Engine) *backend {
	return &backend{
		eng:  eng,
		quit: make(chan bool),
		done: make(chan bool),
	}
}

func (b *backend) Start() error {
	b.started = true
	go func() {
		defer close(b.done)
		buf := make([]float32, 480)
		tck := time.NewTicker(10 * time.Millisecond)
		defer tck.Stop()
		for {
			select {
			case <-b.quit:
				return
			case <-tck.C:
				b.eng.Render(buf, nil)
			}
		}
	}()
	return nil
}

func (b *backend) End() error {
	close(b.quit)
	<-b.done
	b.ended = true
	return nil
}

func (b *backend) String() string {
	return "test"
}

func TestPlay(t *testing.T) {
	eng, prefs := newEngine(t)
	plb := recorder.NewPlaybackFromEvents("test", 48000, score)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b := newBackend(eng)
	start := time.Now()
	test.ExpectSuccess(t, playmode.Play(ctx, eng, plb, b, prefs, playmode.Options{}))

	// play returns after the last event and the tail
	test.ExpectSuccess(t, time.Since(start) < 4*time.Second)
	test.ExpectSuccess(t, b.started)
	test.ExpectSuccess(t, b.ended)
}

func TestPlayKeys(t *testing.T) {
	eng, prefs := newEngine(t)
	plb := recorder.NewPlaybackFromEvents("test", 48000, score)

	keys := make(chan playmode.Key, 4)
	keys <- playmode.KeyVolumeUp
	keys <- playmode.KeyMixing
	keys <- playmode.KeyQuit

	var out strings.Builder
	b := newBackend(eng)
	err := playmode.Play(context.Background(), eng, plb, b, prefs, playmode.Options{
		Loop:    true,
		Keys:    keys,
		Output:  &out,
		Tracker: tracker.NewTracker(eng.Design().ClockRate()),
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, b.ended)

	test.ExpectApproximate(t, prefs.Volume.Get().(float64), 0.55, 0.0001)
	test.ExpectEquality(t, prefs.Mixing.String(), "linear")
	test.ExpectSuccess(t, strings.Contains(out.String(), "volume: 0.55"))
}

func TestPlayKeysRefused(t *testing.T) {
	eng, p := newEngine(t)
	plb := recorder.NewPlaybackFromEvents("test", 48000, score)

	p.ConsoleSpeaker.SetHookPre(func(_ prefs.Value) error {
		return errors.New("console speaker is locked")
	})
	logger.Clear()

	keys := make(chan playmode.Key, 2)
	keys <- playmode.KeyConsoleSpeaker
	keys <- playmode.KeyQuit

	var out strings.Builder
	b := newBackend(eng)
	err := playmode.Play(context.Background(), eng, plb, b, p, playmode.Options{
		Keys:   keys,
		Output: &out,
	})
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, p.ConsoleSpeaker.Get().(bool))
	test.ExpectFailure(t, strings.Contains(out.String(), "console speaker:"))

	var w strings.Builder
	logger.Write(&w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "playmode: console speaker is locked\n"))
}

func TestRawWriter(t *testing.T) {
	var s strings.Builder
	w := playmode.NewRawWriter(&s)
	n, err := w.Write([]byte("a\nb\r\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, s.String(), "a\r\nb\r\n")
}

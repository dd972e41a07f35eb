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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopokey/gui"
	"github.com/jetsetilly/gopokey/hardware"
	"github.com/jetsetilly/gopokey/hardware/pokey"
	"github.com/jetsetilly/gopokey/hardware/preferences"
	"github.com/jetsetilly/gopokey/logger"
	"github.com/jetsetilly/gopokey/recorder"
	"github.com/jetsetilly/gopokey/tracker"
)

// Options for the Play() function.
type Options struct {
	// restart the playback when the last event has been written
	Loop bool

	// key presses. can be nil
	Keys <-chan Key

	// if the tracker is not nil the tracker history is written to the output
	// as the playback progresses
	Tracker *tracker.Tracker

	// output for status messages and the tracker history. can be nil
	Output io.Writer
}

// how often the feeder is serviced
const feedPeriod = 5 * time.Millisecond

// amount by which the volume keys change the volume preference
const volumeStep = 0.05

type playmode struct {
	eng     *hardware.Engine
	prefs   *preferences.Preferences
	feeder  *Feeder
	opts    Options
	start   time.Time
	paused  bool
	pauseAt float64

	table     *tracker.Table
	lastEntry float64
}

// the current time in the time base of the feeder
func (pl *playmode) now() float64 {
	return time.Since(pl.start).Seconds()
}

func (pl *playmode) printf(format string, args ...any) {
	if pl.opts.Output != nil {
		fmt.Fprintf(pl.opts.Output, format, args...)
	}
}

// Play the playback through the audio backend in real time. Play() returns
// when the playback has finished, when the context is cancelled, when the
// quit key is pressed or when an interrupt signal is received.
//
// The backend must have been created with the engine as its gui.Source.
func Play(ctx context.Context, eng *hardware.Engine, plb *recorder.Playback, backend gui.Backend,
	prefs *preferences.Preferences, opts Options) error {

	pl := &playmode{
		eng:    eng,
		prefs:  prefs,
		feeder: NewFeeder(eng, plb.Events()),
		opts:   opts,

		lastEntry: -1,
	}

	if opts.Tracker != nil {
		eng.AttachTap(opts.Tracker)
		defer func() {
			eng.AttachTap(nil)
			if n := opts.Tracker.Lost(); n > 0 {
				logger.Logf(logger.Allow, "playmode", "%d tracker events lost", n)
			}
		}()
		pl.table = tracker.NewTable()
		pl.printf("%s\n", pl.table.Header())
	}

	// make sure the backend is ended even when ctrl-c is pressed. redirect
	// interrupt signal to an os.Signal channel
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	logger.Logf(logger.Allow, "playmode", "playing %s through %s", plb, backend)

	pl.start = time.Now()
	if err := backend.Start(); err != nil {
		return err
	}
	defer func() {
		if err := backend.End(); err != nil {
			logger.Log(logger.Allow, "playmode", err)
		}
	}()

	// events written to the engine are heard after a delay. the playback
	// continues for this long after the last event
	tail := prefs.MaxLatency.Get().(float64) + renderTail
	var finishedAt float64

	keys := opts.Keys

	tck := time.NewTicker(feedPeriod)
	defer tck.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-intChan:
			return nil
		case k, ok := <-keys:
			if !ok {
				// a closed channel never blocks so stop selecting on it
				keys = nil
				continue
			}
			if k == KeyQuit {
				return nil
			}
			pl.key(k)
		case <-tck.C:
			pl.eng.Report()
			if pl.paused {
				continue
			}

			now := pl.now()
			pl.feeder.Feed(now)
			pl.track()

			if pl.feeder.Done() {
				if opts.Loop {
					pl.feeder.Rewind(now)
					continue
				}
				if finishedAt == 0 {
					finishedAt = now
				} else if now-finishedAt > tail {
					pl.track()
					return nil
				}
			}
		}
	}
}

// write new tracker entries to the output
func (pl *playmode) track() {
	if pl.opts.Tracker == nil || pl.opts.Output == nil {
		return
	}
	entries := pl.opts.Tracker.Since(pl.lastEntry)
	if len(entries) == 0 {
		return
	}
	pl.lastEntry = entries[len(entries)-1].Time
	if err := pl.table.Write(pl.opts.Output, entries); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
}

func (pl *playmode) key(k Key) {
	now := pl.now()

	switch k {
	case KeyPause:
		pl.paused = !pl.paused
		if pl.paused {
			pl.pauseAt = now
			pl.feeder.Silence(now)
			pl.printf("paused\n")
		} else {
			pl.feeder.Skip(now - pl.pauseAt)
			pl.feeder.Restore(now)
			pl.printf("resumed\n")
		}

	case KeyRestart:
		pl.eng.Reset()
		pl.feeder.Rewind(now)
		pl.paused = false
		if pl.opts.Tracker != nil {
			pl.opts.Tracker.Reset()
			pl.table = tracker.NewTable()
			pl.lastEntry = -1
		}
		pl.printf("restart\n")

	case KeyVolumeUp, KeyVolumeDown:
		v := pl.prefs.Volume.Get().(float64)
		if k == KeyVolumeUp {
			v += volumeStep
		} else {
			v -= volumeStep
		}
		v = max(min(v, 1.0), 0.0)
		if err := pl.prefs.Volume.Set(v); err != nil {
			logger.Log(logger.Allow, "playmode", err)
			return
		}
		pl.printf("volume: %.2f\n", v)

	case KeyMixing:
		m := pokey.MixLinear
		if pl.prefs.MixingLaw() == pokey.MixLinear {
			m = pokey.MixExponential
		}
		if err := pl.prefs.Mixing.Set(m.String()); err != nil {
			logger.Log(logger.Allow, "playmode", err)
			return
		}
		pl.printf("mixing: %s\n", m)

	case KeyConsoleSpeaker:
		v := !pl.prefs.ConsoleSpeaker.Get().(bool)
		if err := pl.prefs.ConsoleSpeaker.Set(v); err != nil {
			logger.Log(logger.Allow, "playmode", err)
			return
		}
		pl.printf("console speaker: %v\n", v)

	case KeyStats:
		pl.printf("%s\n", pl.eng.Stats())
	}
}

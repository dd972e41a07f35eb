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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware"
	"github.com/jetsetilly/gopokey/playmode"
	"github.com/jetsetilly/gopokey/recorder"
)

// the number of frames rendered between checks of the timer. checking the
// timer every frame is relatively expensive
const performanceBrake = 1024

// the length of time the engine runs before measurement starts
const leadTime = time.Second

// Result of a performance check.
type Result struct {
	// seconds of audio rendered and the time it took to render
	Rendered float64
	Elapsed  float64
}

// Speed returns how many times faster than real time the engine rendered.
func (r Result) Speed() float64 {
	if r.Elapsed == 0 {
		return 0
	}
	return r.Rendered / r.Elapsed
}

func (r Result) String() string {
	return fmt.Sprintf("%.2fx real time (%.2f seconds of audio in %.2f seconds)", r.Speed(), r.Rendered, r.Elapsed)
}

// Check the performance of the engine by rendering the playback for the
// specified duration. The playback is repeated if it is shorter than the
// duration. Output is rendered in stereo if stereo is true.
//
// Measurement starts after a short lead time so that the output rate has
// settled.
func Check(output io.Writer, profile Profile, eng *hardware.Engine, plb *recorder.Playback, stereo bool, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	rate := float64(eng.Rate())
	left := make([]float32, performanceBrake)
	var right []float32
	if stereo {
		right = make([]float32, performanceBrake)
	}

	feeder := playmode.NewFeeder(eng, plb.Events())

	var res Result
	var samples int

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		var start time.Time
		var startSamples int

		for {
			t := float64(samples+performanceBrake) / rate
			feeder.Feed(t)
			if feeder.Done() {
				feeder.Rewind(t)
			}
			eng.Render(left, right)
			samples += performanceBrake

			select {
			case v := <-timerChan:
				if v {
					res.Elapsed = time.Since(start).Seconds()
					res.Rendered = float64(samples-startSamples) / rate
					return nil
				}
				start = time.Now()
				startSamples = samples
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintln(output, res)

	return res, nil
}

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
	"math"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware"
	"github.com/jetsetilly/gopokey/logger"
	"github.com/jetsetilly/gopokey/recorder"
)

// SampleWriter receives rendered samples. The wavwriter.WavWriter type
// satisfies this interface.
type SampleWriter interface {
	Write(left []float32, right []float32) error
}

// the number of frames rendered at a time by Render()
const renderBlock = 512

// the length of time rendered after the last event when no duration is
// specified
const renderTail = 0.5

// Render the playback to the SampleWriter as quickly as possible. The right
// channel is only rendered if stereo is true.
//
// If the duration is zero or less, the length of the rendering is the
// duration of the playback plus a short tail so that the last event can be
// heard.
func Render(eng *hardware.Engine, plb *recorder.Playback, out SampleWriter, duration float64, stereo bool) error {
	if duration <= 0 {
		duration = plb.Duration() + renderTail
	}

	rate := float64(eng.Rate())
	total := int(math.Round(duration * rate))

	left := make([]float32, renderBlock)
	var right []float32
	if stereo {
		right = make([]float32, renderBlock)
	}

	feeder := NewFeeder(eng, plb.Events())

	for n := 0; n < total; n += renderBlock {
		sz := min(renderBlock, total-n)

		// the engine and the feeder share a time base. writes are made for
		// the whole of the block about to be rendered
		feeder.Feed(float64(n+sz) / rate)

		var r []float32
		if right != nil {
			r = right[:sz]
		}
		eng.Render(left[:sz], r)
		eng.Report()

		if err := out.Write(left[:sz], r); err != nil {
			return curated.Errorf("render: %v", err)
		}
	}

	if !feeder.Done() {
		i, n := feeder.Position()
		logger.Logf(logger.Allow, "render", "%d of %d events not rendered", n-i, n)
	}

	logger.Logf(logger.Allow, "render", "%.2fs rendered from %s", float64(total)/rate, plb.Name)
	logger.Log(logger.Allow, "render", eng.Stats())

	return nil
}

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

package paudio

import (
	"testing"

	"github.com/jetsetilly/gopokey/gui"
	"github.com/jetsetilly/gopokey/test"
)

type constant struct {
	l, r float32
}

func (c constant) Render(left []float32, right []float32) {
	for i := range left {
		left[i] = c.l
		if right != nil {
			right[i] = c.r
		}
	}
}

func TestCallbackStereo(t *testing.T) {
	cb := &callback{
		src:    constant{l: 0.25, r: -0.25},
		frames: gui.NewFrames(4, true),
	}

	out := make([]float32, 16)
	cb.process(out)

	for i := 0; i < len(out); i += 2 {
		test.ExpectApproximate(t, out[i], 0.25, 0.001)
		test.ExpectApproximate(t, out[i+1], -0.25, 0.001)
	}
}

func TestCallbackMono(t *testing.T) {
	cb := &callback{
		src:    constant{l: 0.5},
		frames: gui.NewFrames(4, false),
	}

	out := make([]float32, 8)
	cb.process(out)

	for i := 0; i < len(out); i += 2 {
		test.ExpectEquality(t, out[i], out[i+1])
		test.ExpectApproximate(t, out[i], 0.5, 0.001)
	}
}

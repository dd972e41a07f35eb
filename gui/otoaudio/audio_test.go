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

package otoaudio

import (
	"encoding/binary"
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

func TestReader(t *testing.T) {
	r := &reader{
		src:    constant{l: 0.25, r: -0.25},
		frames: gui.NewFrames(2, true),
	}

	// the length of the buffer is not a whole number of frames
	buf := make([]byte, 42)
	n, err := r.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 40)

	for i := 0; i < n; i += 4 {
		test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(buf[i:])), 8192)
		test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(buf[i+2:])), -8192)
	}

	n, err = r.Read(buf[:3])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}

func TestReaderMono(t *testing.T) {
	r := &reader{
		src:    constant{l: 0.25},
		frames: gui.NewFrames(16, false),
	}

	buf := make([]byte, 16)
	n, err := r.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 16)
	test.ExpectEquality(t, binary.LittleEndian.Uint16(buf[0:]), binary.LittleEndian.Uint16(buf[2:]))
}

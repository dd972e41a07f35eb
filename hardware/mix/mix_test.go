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

package mix_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/jetsetilly/gopokey/hardware/mix"
	"github.com/jetsetilly/gopokey/test"
)

func TestClip(t *testing.T) {
	// unchanged below the knee
	test.ExpectEquality(t, mix.Clip(0), 0)
	test.ExpectEquality(t, mix.Clip(1000), 1000)
	test.ExpectEquality(t, mix.Clip(-20000), -20000)

	// never exceeds the 16bit range
	v := mix.Clip(math.MaxInt32)
	test.ExpectSuccess(t, v > 32700 && v <= 32767, v)
	v = mix.Clip(math.MinInt32)
	test.ExpectSuccess(t, v < -32700 && v >= -32768, v)

	// monotonic
	prev := mix.Clip(-100000)
	for x := int32(-100000); x <= 100000; x += 7 {
		v := mix.Clip(x)
		if !test.ExpectSuccess(t, v >= prev, x) {
			break
		}
		prev = v
	}
}

func TestSample(t *testing.T) {
	test.ExpectEquality(t, mix.Sample(0.0), 0)
	test.ExpectEquality(t, mix.Sample(0.5), 16384)
	test.ExpectEquality(t, mix.Sample(-0.5), -16384)
	test.ExpectSuccess(t, mix.Sample(1.5) <= 32767)
	test.ExpectSuccess(t, mix.Sample(1.0) > 30000)
	test.ExpectEquality(t, mix.Sample(float32(math.NaN())), 0)
}

func TestInterleave(t *testing.T) {
	left := []float32{0.5, 0.0, -0.5}
	right := []float32{0.0, 0.25, 0.0}

	dst := make([]int16, 6)
	test.ExpectEquality(t, mix.Interleave(dst, left, right), 6)
	test.ExpectEquality(t, dst[0], 16384)
	test.ExpectEquality(t, dst[1], 0)
	test.ExpectEquality(t, dst[3], mix.Sample(0.25))
	test.ExpectEquality(t, dst[4], -16384)

	// mono
	mix.Interleave(dst, left, nil)
	test.ExpectEquality(t, dst[0], dst[1])
	test.ExpectEquality(t, dst[4], dst[5])

	b := make([]byte, 12)
	test.ExpectEquality(t, mix.InterleaveBytes(b, left, right), 12)
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(b[0:])), 16384)
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(b[8:])), -16384)
}

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

// Package mix converts the floating point output of the sound engine into the
// signed 16-bit samples used by audio devices and WAV files.
package mix

import (
	"encoding/binary"
	"math"
)

// the range of input values covered by the clip table. values outside of this
// range are clamped before the table lookup
const (
	clipMin = -65536
	clipMax = 65535
)

// samples below the knee are not changed by the soft clip
const knee = 24576

var softClip [clipMax - clipMin + 1]int16

// generate the soft clip curve. linear below the knee and tending towards
// full scale above it
func init() {
	for i := clipMin; i <= clipMax; i++ {
		x := float64(i)
		a := math.Abs(x)
		if a > knee {
			a = knee + (32767-knee)*math.Tanh((a-knee)/(32767-knee))
		}
		y := math.Copysign(math.Round(a), x)
		y = max(min(y, 32767), -32768)
		softClip[i-clipMin] = int16(y)
	}
}

// Clip 32bit value so that it doesn't exceed 16bit range.
func Clip(x int32) int16 {
	x = max(min(x, clipMax), clipMin)
	return softClip[x-clipMin]
}

// Sample converts a single sample in the range -1.0 to 1.0 to a 16-bit value.
// Values outside of the range are soft clipped.
func Sample(v float32) int16 {
	// NaN must not reach the integer conversion
	if v != v {
		return 0
	}
	f := max(min(float64(v)*32767, clipMax), clipMin)
	return Clip(int32(math.Round(f)))
}

// Interleave converts left and right channels into interleaved 16-bit stereo
// samples. The destination slice must be at least twice the length of the
// left channel. If right is nil the left channel is used for both sides.
//
// Returns the number of values written to dst.
func Interleave(dst []int16, left []float32, right []float32) int {
	if right == nil {
		right = left
	}
	for i := range left {
		dst[i*2] = Sample(left[i])
		dst[i*2+1] = Sample(right[i])
	}
	return len(left) * 2
}

// InterleaveBytes is the same as Interleave() except that the samples are
// written to a byte slice in little-endian order. The destination must be at
// least four times the length of the left channel.
//
// Returns the number of bytes written to dst.
func InterleaveBytes(dst []byte, left []float32, right []float32) int {
	if right == nil {
		right = left
	}
	for i := range left {
		binary.LittleEndian.PutUint16(dst[i*4:], uint16(Sample(left[i])))
		binary.LittleEndian.PutUint16(dst[i*4+2:], uint16(Sample(right[i])))
	}
	return len(left) * 4
}

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

package filter

// HalfBand is a FIR filter with the special form of a half band low pass
// filter. The coefficients are symmetric, the centre coefficient is 0.5 and
// every other coefficient is zero. The coefficient table must have an odd
// length.
//
// Only the non-zero coefficients are used when calculating the filter output.
type HalfBand struct {
	FIR
	mid int
}

// NewHalfBand creates a new HalfBand filter for the coefficients.
func NewHalfBand(coeffs []float32) *HalfBand {
	return &HalfBand{
		FIR: *NewFIR(coeffs),
		mid: len(coeffs) / 2,
	}
}

// Get the filter output for the samples added so far.
func (f *HalfBand) Get() float32 {
	n := len(f.buf)

	c := f.pos + f.mid
	if c >= n {
		c -= n
	}
	acc := 0.5 * f.buf[c]

	j := f.pos
	k := f.pos - 1
	if k < 0 {
		k = n - 1
	}

	for i := 0; i < f.mid; i += 2 {
		acc += f.coeffs[i] * (f.buf[j] + f.buf[k])
		j += 2
		if j >= n {
			j -= n
		}
		k -= 2
		if k < 0 {
			k += n
		}
	}

	return acc
}

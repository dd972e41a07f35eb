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

// FIR is a finite impulse response filter with a circular sample buffer. The
// buffer is the same length as the coefficient table.
type FIR struct {
	coeffs []float32
	buf    []float32

	// index of the next write to buf. this is also the index of the oldest
	// sample in the buffer
	pos int
}

// NewFIR creates a new FIR filter for the coefficients. The coefficient slice
// is not copied and must not be changed.
func NewFIR(coeffs []float32) *FIR {
	return &FIR{
		coeffs: coeffs,
		buf:    make([]float32, len(coeffs)),
	}
}

// Add a sample to the filter.
func (f *FIR) Add(v float32) {
	f.buf[f.pos] = v
	f.pos++
	if f.pos >= len(f.buf) {
		f.pos = 0
	}
}

// Get the filter output for the samples added so far. The first coefficient
// is applied to the oldest sample.
func (f *FIR) Get() float32 {
	var acc float32
	j := f.pos
	for _, c := range f.coeffs {
		acc += c * f.buf[j]
		j++
		if j >= len(f.buf) {
			j = 0
		}
	}
	return acc
}

// Reset clears the sample buffer.
func (f *FIR) Reset() {
	clear(f.buf)
	f.pos = 0
}

// SymmetricFIR is a FIR filter where the coefficients are symmetric around
// the centre of the table. Pairs of samples that share a coefficient are summed
// before the multiplication, halving the number of multiplications.
type SymmetricFIR struct {
	FIR
}

// NewSymmetricFIR creates a new SymmetricFIR filter for the coefficients. The
// function does not check that the coefficients are symmetric.
func NewSymmetricFIR(coeffs []float32) *SymmetricFIR {
	return &SymmetricFIR{
		FIR: *NewFIR(coeffs),
	}
}

// Get the filter output for the samples added so far.
func (f *SymmetricFIR) Get() float32 {
	n := len(f.buf)
	var acc float32

	// oldest and newest samples
	j := f.pos
	k := f.pos - 1
	if k < 0 {
		k = n - 1
	}

	for i := range n / 2 {
		acc += f.coeffs[i] * (f.buf[j] + f.buf[k])
		j++
		if j >= n {
			j = 0
		}
		k--
		if k < 0 {
			k = n - 1
		}
	}

	// centre tap. j and k meet at the centre of an odd length filter
	if n&0x01 == 0x01 {
		acc += f.coeffs[n/2] * f.buf[j]
	}

	return acc
}

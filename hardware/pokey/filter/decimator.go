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

// Decimator implementations low pass filter a high rate signal so that every
// Mth sample can be taken as a sample of the lower rate signal.
type Decimator interface {
	// Push is called for every sample of the high rate signal
	Push(v float32)

	// Output is called after every Mth call to Push()
	Output() float32

	// Reset clears all filter state
	Reset()
}

// direct is a decimator consisting of a single symmetric FIR filter. the
// filter output is only calculated when it is required
type direct struct {
	fir *SymmetricFIR
}

func (d *direct) Push(v float32) {
	d.fir.Add(v)
}

func (d *direct) Output() float32 {
	return d.fir.Get()
}

func (d *direct) Reset() {
	d.fir.Reset()
}

// cascade is a decimator consisting of a series of half band filters, each
// running at half the rate of the previous filter, followed by a final FIR
// filter
type cascade struct {
	stages []*HalfBand
	final  *FIR

	// counts the calls to Push(). wraps at the point where the final filter
	// is fed
	i    int
	mask int
}

func newCascade(final []float32, stages ...[]float32) *cascade {
	c := &cascade{
		final: NewFIR(final),
		mask:  (1 << len(stages)) - 1,
	}
	for _, s := range stages {
		c.stages = append(c.stages, NewHalfBand(s))
	}
	return c
}

func (c *cascade) Push(v float32) {
	c.i = (c.i + 1) & c.mask

	c.stages[0].Add(v)
	for n := 1; n < len(c.stages); n++ {
		if c.i&((1<<n)-1) != 0 {
			return
		}
		c.stages[n].Add(c.stages[n-1].Get())
	}

	if c.i == 0 {
		c.final.Add(c.stages[len(c.stages)-1].Get())
	}
}

func (c *cascade) Output() float32 {
	return c.final.Get()
}

func (c *cascade) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
	c.final.Reset()
	c.i = 0
}

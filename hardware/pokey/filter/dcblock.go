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

import "math"

// the time constant of the DC blocker, in seconds
const dcTimeConstant = 0.0026

// DCBlocker is a single pole high pass filter that removes the DC offset from
// a signal.
type DCBlocker struct {
	alpha float32
	x     float32
	y     float32
}

// NewDCBlocker creates a DC blocker for a signal at the specified rate.
func NewDCBlocker(rate int) *DCBlocker {
	return &DCBlocker{
		alpha: float32(math.Exp(-1.0 / (dcTimeConstant * float64(rate)))),
	}
}

// Filter the next sample.
func (dc *DCBlocker) Filter(x float32) float32 {
	dc.y = dc.alpha * (dc.y + x - dc.x)
	dc.x = x
	return dc.y
}

// Reset the state of the filter.
func (dc *DCBlocker) Reset() {
	dc.x = 0
	dc.y = 0
}

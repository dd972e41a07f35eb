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

import (
	"fmt"

	"github.com/jetsetilly/gopokey/curated"
)

// UnsupportedRate is the curated error pattern returned by Lookup() when there
// is no design for the requested output rate.
const UnsupportedRate = "filter: unsupported output rate (%dHz)"

// Design describes how the signal from the pokey emulation is decimated to an
// output rate.
type Design struct {
	// the output rate in Hz
	Rate int

	// the decimation ratio. the emulation is clocked at Rate * Ratio
	Ratio int

	// short description of the filter
	Description string

	create func() Decimator
}

// ClockRate returns the rate at which the pokey emulation must be clocked to
// produce the output rate.
func (d Design) ClockRate() int {
	return d.Rate * d.Ratio
}

// NewDecimator returns a new instance of the filter described by the design.
func (d Design) NewDecimator() Decimator {
	return d.create()
}

func (d Design) String() string {
	return fmt.Sprintf("%dHz (%d:1) %s", d.Rate, d.Ratio, d.Description)
}

var designs = []Design{
	{
		Rate:        48000,
		Ratio:       37,
		Description: "direct FIR, 881 taps",
		create: func() Decimator {
			return &direct{fir: NewSymmetricFIR(fir48k)}
		},
	},
	{
		Rate:        44100,
		Ratio:       40,
		Description: "3 x half band, 129 tap FIR",
		create: func() Decimator {
			return newCascade(fir5to1, halfBand11, halfBand11, halfBand11)
		},
	},
	{
		Rate:        56000,
		Ratio:       32,
		Description: "4 x half band, 40 tap FIR",
		create: func() Decimator {
			return newCascade(fir2to1, halfBand7, halfBand7, halfBand11a, halfBand11b)
		},
	},
}

// Lookup returns the design for the output rate. Returns an error with the
// UnsupportedRate pattern if there is no design for the rate.
func Lookup(rate int) (Design, error) {
	for _, d := range designs {
		if d.Rate == rate {
			return d, nil
		}
	}
	return Design{}, curated.Errorf(UnsupportedRate, rate)
}

// SupportedRates returns the list of output rates for which a design exists.
func SupportedRates() []int {
	r := make([]int, 0, len(designs))
	for _, d := range designs {
		r = append(r, d.Rate)
	}
	return r
}

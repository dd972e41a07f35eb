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

package pokey

import (
	"fmt"
	"math"
	"strings"
)

// Mixing selects the law used to convert the sum of the channel volumes into
// an output sample.
type Mixing int

// List of valid Mixing values.
const (
	// the output stage of the chip saturates as more current is drawn. this
	// is modelled by an exponential curve which has been fitted to
	// measurements of real hardware
	MixExponential Mixing = iota

	// the sum of the volumes scaled into the output range. not accurate but
	// useful for comparison
	MixLinear
)

func (m Mixing) String() string {
	switch m {
	case MixExponential:
		return "exponential"
	case MixLinear:
		return "linear"
	}
	return "unknown"
}

// ParseMixing converts the string representation of a mixing law into a
// Mixing value.
func ParseMixing(s string) (Mixing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exponential":
		return MixExponential, nil
	case "linear":
		return MixLinear, nil
	}
	return MixExponential, fmt.Errorf("pokey: unrecognised mixing law (%s)", s)
}

// the largest total volume. four channels at volume 15 plus the console
// speaker
const maxTotal = 64

// constant used in the exponential mixing law
const mixingCurve = 2.9

// the mixing tables are indexed by the total volume
var mixingTables [2][maxTotal + 1]float32

func init() {
	n := 1.0 - math.Exp(-mixingCurve)
	for t := 0; t <= maxTotal; t++ {
		mixingTables[MixExponential][t] = float32((1.0 - math.Exp(-mixingCurve*float64(t)/maxTotal)) / n)
		mixingTables[MixLinear][t] = float32(t) / 60.0
	}
}

// mix returns the output sample for the current state of the channels
func (pk *Pokey) mix() float32 {
	var total uint8

	// channels 1 and 2 are always exclusive-ORed with the high pass flip-flop.
	// the flip-flops are held at 1 when high pass mode is not enabled,
	// inverting the channel output. this has no audible effect
	b := ((pk.output[0] ^ pk.hipass1) & 0x01) | (pk.audc[0]&audcVolumeOnly)>>4
	total += b * (pk.audc[0] & audcVolume)
	b = ((pk.output[1] ^ pk.hipass2) & 0x01) | (pk.audc[1]&audcVolumeOnly)>>4
	total += b * (pk.audc[1] & audcVolume)

	b = (pk.output[2] & 0x01) | (pk.audc[2]&audcVolumeOnly)>>4
	total += b * (pk.audc[2] & audcVolume)
	b = (pk.output[3] & 0x01) | (pk.audc[3]&audcVolumeOnly)>>4
	total += b * (pk.audc[3] & audcVolume)

	total += pk.console * 4

	return mixingTables[pk.mixing][total]
}

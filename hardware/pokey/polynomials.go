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

// the four polynomial counters used by the chip. the tables are created once
// by init() and are never modified
var (
	poly4  []uint8
	poly5  []uint8
	poly9  []uint8
	poly17 []uint8
)

func init() {
	poly4 = Generate(4)
	poly5 = Generate(5)
	poly9 = Generate(9)
	poly17 = Generate(17)
}

// Generate returns the output sequence of the polynomial counter of the
// specified width. The length of the sequence is (2^bits)-1, which is the
// period of a maximal length counter.
//
// The counter is seeded with just the top bit set. The low bit is emitted
// before the counter is advanced. Only the widths used by the chip (4, 5, 9
// and 17) are supported and any other width will cause a panic.
//
// The 4 and 5 bit counters shift left and feed back the inverse of the XOR of
// their taps. The all-ones state never occurs in those counters. The 9 and 17
// bit counters shift right with XOR feedback and never reach the all-zero
// state.
func Generate(bits int) []uint8 {
	var advance func(v uint32) uint32

	switch bits {
	case 4:
		advance = func(v uint32) uint32 {
			return (v << 1) + (^((v >> 2) ^ (v >> 3)) & 0x01)
		}
	case 5:
		advance = func(v uint32) uint32 {
			return (v << 1) + (^((v >> 2) ^ (v >> 4)) & 0x01)
		}
	case 9:
		advance = func(v uint32) uint32 {
			return (v >> 1) + (((v << 8) ^ (v << 3)) & 0x100)
		}
	case 17:
		advance = func(v uint32) uint32 {
			return (v >> 1) + (((v << 16) ^ (v << 11)) & 0x10000)
		}
	default:
		panic("pokey: unsupported polynomial width")
	}

	l := (1 << bits) - 1
	p := make([]uint8, l)

	mask := uint32(1<<bits) - 1
	v := uint32(1) << (bits - 1)
	for i := range l {
		p[i] = uint8(v & 0x01)
		v = advance(v) & mask
	}

	return p
}

// polyBit returns the value of the polynomial counter for a channel at the
// specified cycle. each channel sees the counters at a different offset
func polyBit(poly []uint8, cycle uint64, channel int) uint8 {
	return poly[(cycle+uint64(channel))%uint64(len(poly))]
}

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

// the number of machine clocks by which a fast clocked channel is delayed
// when it is reloaded
const fastReloadDelay = 3

// the number of machine clocks by which a linked pair is delayed when it is
// reloaded
const linkedReloadDelay = 6

// tick advances the base clock and the four channel counters by one machine
// clock
func (pk *Pokey) tick() {
	// base clock
	pk.clockCnt--
	underflow := pk.clockCnt < 0
	if underflow {
		pk.clockCnt = pk.clockPeriod - 1
	}

	// high pass flip-flops are held high when the mode is not enabled
	if pk.audctl&ctlHipass1 == 0 {
		pk.hipass1 = 1
	}
	if pk.audctl&ctlHipass2 == 0 {
		pk.hipass2 = 1
	}

	// channels 1 and 2
	if pk.audctl&ctlLink12 == 0 {
		if pk.audctl&ctlFast1 == ctlFast1 || underflow {
			pk.cnt[0]--
			if pk.cnt[0] < 0 {
				pk.reloadSingle(0)
			}
		}
		if underflow {
			pk.cnt[1]--
			if pk.cnt[1] < 0 {
				pk.reloadSingle(1)
			}
		}
	} else if pk.audctl&ctlFast1 == ctlFast1 || underflow {
		pk.cnt[0]--
		if pk.cnt[0] < 0 {
			pk.wrapLinked(0)
		}
	}

	// channels 3 and 4. the reload of channel 3 clocks the high pass
	// flip-flop of channel 1 and the reload of channel 4 clocks the flip-flop
	// of channel 2
	if pk.audctl&ctlLink34 == 0 {
		if pk.audctl&ctlFast3 == ctlFast3 || underflow {
			pk.cnt[2]--
			if pk.cnt[2] < 0 {
				pk.reloadSingle(2)
				if pk.audctl&ctlHipass1 == ctlHipass1 {
					pk.hipass1 = pk.output[0]
				}
			}
		}
		if underflow {
			pk.cnt[3]--
			if pk.cnt[3] < 0 {
				pk.reloadSingle(3)
				if pk.audctl&ctlHipass2 == ctlHipass2 {
					pk.hipass2 = pk.output[1]
				}
			}
		}
	} else if pk.audctl&ctlFast3 == ctlFast3 || underflow {
		pk.cnt[2]--
		if pk.cnt[2] < 0 {
			pk.wrapLinked(2)
		}
	}

	pk.cycleCnt++
}

// reloadSingle reloads an unlinked channel from its AUDF register
func (pk *Pokey) reloadSingle(k int) {
	pk.cnt[k] = int(pk.audf[k])
	if (k == 0 && pk.audctl&ctlFast1 == ctlFast1) || (k == 2 && pk.audctl&ctlFast3 == ctlFast3) {
		pk.cnt[k] += fastReloadDelay
	}
	pk.updateOutput(k)
}

// wrapLinked is called when the low channel of a linked pair underflows. the
// low channel wraps around and clocks the high channel. when the high channel
// underflows the pair is reloaded as a single 16-bit value
func (pk *Pokey) wrapLinked(lo int) {
	hi := lo + 1

	pk.cnt[lo] = 255
	pk.updateOutput(lo)

	pk.cnt[hi]--
	if pk.cnt[hi] < 0 {
		v := (int(pk.audf[lo]) + int(pk.audf[hi])<<8 + linkedReloadDelay) & 0xffff
		pk.cnt[lo] = v & 0xff
		pk.cnt[hi] = v >> 8
		pk.updateOutput(hi)
	}
}

// updateOutput is called on every reload of a channel. the square latch
// toggles on every reload and in pure tone mode is the output of the channel.
// the noise modes sample a polynomial counter but only if the 5-bit
// polynomial allows it
func (pk *Pokey) updateOutput(k int) {
	pk.squareOutput[k] ^= 0x01

	if pk.audc[k]&audcPure == audcPure {
		pk.output[k] = pk.squareOutput[k]
		return
	}

	if pk.audc[k]&audcNoPoly5 == 0 && polyBit(poly5, pk.cycleCnt, k) == 0 {
		return
	}

	switch {
	case pk.audc[k]&audcPoly4 == audcPoly4:
		pk.output[k] = polyBit(poly4, pk.cycleCnt, k)
	case pk.audctl&ctlPoly9 == ctlPoly9:
		pk.output[k] = polyBit(poly9, pk.cycleCnt, k)
	default:
		pk.output[k] = polyBit(poly17, pk.cycleCnt, k)
	}
}

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
	"testing"

	"github.com/jetsetilly/gopokey/test"
)

func TestSquareBypass(t *testing.T) {
	// in pure tone mode the output of a channel is the square wave latch
	// regardless of the state of the polynomial counters
	for _, audc := range []uint8{0x20, 0x2f, 0x3a, 0x60, 0xa5, 0xef} {
		for _, audctl := range []uint8{0x00, 0x01, 0x06, 0x18, 0x60, 0x7f, 0x80, 0xff} {
			pk := NewPokey(MixExponential)
			pk.Write(AUDCTL, audctl)
			for k := range 4 {
				pk.Write(AUDF1+uint8(k*2), uint8(k*3+1))
				pk.Write(AUDC1+uint8(k*2), audc)
			}

			var failed bool
			for range 5000 {
				pk.Step()
				for k := range 4 {
					if pk.output[k] != pk.squareOutput[k] {
						failed = true
					}
				}
			}
			test.ExpectEquality(t, failed, false, audc, audctl)
		}
	}
}

func TestSingleReload(t *testing.T) {
	pk := NewPokey(MixExponential)

	// the first tick underflows the base clock
	pk.Write(AUDF2, 10)
	pk.cnt[1] = 0
	pk.Step()
	test.ExpectEquality(t, pk.cnt[1], 10)
	test.ExpectEquality(t, pk.squareOutput[1], 1)

	// fast clocked channels are reloaded with an additional delay
	pk.Reset()
	pk.Write(AUDCTL, ctlFast1|ctlFast3)
	pk.Write(AUDF1, 10)
	pk.Write(AUDF3, 20)
	pk.Step()
	test.ExpectEquality(t, pk.cnt[0], 10+fastReloadDelay)
	test.ExpectEquality(t, pk.cnt[2], 20+fastReloadDelay)

	// channels 2 and 4 cannot be fast clocked. they only count on the base
	// clock
	pk.Reset()
	pk.Write(AUDCTL, ctlFast1)
	pk.Write(AUDF2, 5)
	pk.cnt[1] = 3
	pk.Step()
	test.ExpectEquality(t, pk.cnt[1], 2)
	pk.Step()
	test.ExpectEquality(t, pk.cnt[1], 2)
}

func TestLinkedReload(t *testing.T) {
	pk := NewPokey(MixExponential)
	pk.Write(AUDCTL, ctlLink12|ctlFast1)
	pk.Write(AUDF1, 0x34)
	pk.Write(AUDF2, 0x12)

	// low channel wraps without the high channel underflowing
	pk.cnt[0] = 0
	pk.cnt[1] = 3
	pk.Step()
	test.ExpectEquality(t, pk.cnt[0], 255)
	test.ExpectEquality(t, pk.cnt[1], 2)

	// both channels underflow and the pair is reloaded as a 16-bit value
	pk.cnt[0] = 0
	pk.cnt[1] = 0
	pk.Step()
	test.ExpectEquality(t, pk.cnt[0], 0x3a)
	test.ExpectEquality(t, pk.cnt[1], 0x12)

	// reload values are truncated to 16 bits
	pk.Write(AUDF1, 0xff)
	pk.Write(AUDF2, 0xff)
	pk.cnt[0] = 0
	pk.cnt[1] = 0
	pk.Step()
	test.ExpectEquality(t, pk.cnt[0], 5)
	test.ExpectEquality(t, pk.cnt[1], 0)

	// channels 3 and 4 are linked in the same way
	pk.Reset()
	pk.Write(AUDCTL, ctlLink34|ctlFast3)
	pk.Write(AUDF3, 0x00)
	pk.Write(AUDF4, 0x01)
	pk.cnt[2] = 0
	pk.cnt[3] = 0
	pk.Step()
	test.ExpectEquality(t, pk.cnt[2], 0x06)
	test.ExpectEquality(t, pk.cnt[3], 0x01)
}

func TestBaseClock(t *testing.T) {
	toggles := func(audctl uint8, ticks int) int {
		pk := NewPokey(MixExponential)
		pk.Write(AUDCTL, audctl)
		pk.Write(AUDC2, audcPure|0x0f)

		var ct int
		prev := pk.squareOutput[1]
		for range ticks {
			pk.Step()
			if pk.squareOutput[1] != prev {
				ct++
				prev = pk.squareOutput[1]
			}
		}
		return ct
	}

	// with AUDF of zero the channel reloads on every tick of the base clock.
	// the first tick after reset underflows the base clock
	test.ExpectEquality(t, toggles(0x00, period15kHz*100), 408)
	test.ExpectEquality(t, toggles(ctl15kHz, period15kHz*100), 100)
}

func TestHighPassPinned(t *testing.T) {
	pk := NewPokey(MixExponential)
	test.ExpectEquality(t, pk.hipass1, 1)
	test.ExpectEquality(t, pk.hipass2, 1)

	pk.Write(AUDCTL, ctlHipass1|ctlHipass2)
	pk.hipass1 = 0
	pk.hipass2 = 0

	pk.Write(AUDCTL, ctlHipass2)
	test.ExpectEquality(t, pk.hipass1, 1)
	test.ExpectEquality(t, pk.hipass2, 0)

	pk.Write(AUDCTL, 0x00)
	test.ExpectEquality(t, pk.hipass2, 1)
}

func TestHighPassCapture(t *testing.T) {
	// every reload of channel 3 clocks the output of channel 1 into the
	// flip-flop
	pk := NewPokey(MixExponential)
	pk.Write(AUDCTL, ctlHipass1|ctlFast3)
	pk.Write(AUDC1, audcPure|audcNoPoly5|0x0f)
	pk.Write(AUDF1, 0)
	pk.Write(AUDF3, 4)

	var captured [2]int
	prev := pk.squareOutput[2]
	for range 5000 {
		pk.Step()
		if pk.squareOutput[2] != prev {
			prev = pk.squareOutput[2]
			test.ExpectEquality(t, pk.hipass1, pk.output[0])
			captured[pk.hipass1]++
		}
	}
	test.ExpectSuccess(t, captured[0] > 0)
	test.ExpectSuccess(t, captured[1] > 0)
}

func TestMixingLaw(t *testing.T) {
	for _, m := range []Mixing{MixExponential, MixLinear} {
		tbl := mixingTables[m]
		test.ExpectEquality(t, tbl[0], 0.0, m)
		for i := 1; i < len(tbl); i++ {
			test.ExpectSuccess(t, tbl[i] > tbl[i-1], m, i)
		}
	}
	test.ExpectApproximate(t, mixingTables[MixExponential][maxTotal], 1.0, 0.0001)
	test.ExpectApproximate(t, mixingTables[MixLinear][60], 1.0, 0.0001)

	// the exponential law is louder than the linear law for all totals in
	// the normal range
	for i := 1; i < 60; i++ {
		test.ExpectSuccess(t, mixingTables[MixExponential][i] > mixingTables[MixLinear][i], i)
	}
}

func TestMixingVolume(t *testing.T) {
	// volume only mode ignores the channel output
	var prev float32
	for v := range uint8(16) {
		pk := NewPokey(MixExponential)
		pk.Write(AUDC3, audcVolumeOnly|v)
		s := pk.Step()
		if v == 0 {
			test.ExpectEquality(t, s, 0.0)
		} else {
			test.ExpectSuccess(t, s > prev, v)
		}
		prev = s
	}

	// all four channels plus the console speaker is full scale
	pk := NewPokey(MixExponential)
	for k := range 4 {
		pk.Write(AUDC1+uint8(k*2), audcVolumeOnly|0x0f)
	}
	pk.Write(CONSOLE, 0xff)
	test.ExpectApproximate(t, pk.Step(), 1.0, 0.0001)

	// console speaker only uses the lowest bit
	pk.Write(CONSOLE, 0xfe)
	test.ExpectEquality(t, pk.console, 0)
}

func TestParseMixing(t *testing.T) {
	m, err := ParseMixing("Linear")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, MixLinear)
	m, err = ParseMixing(" exponential ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, MixExponential)
	_, err = ParseMixing("cubic")
	test.ExpectFailure(t, err)
}

func TestDeterminism(t *testing.T) {
	run := func() []float32 {
		pk := NewPokey(MixExponential)
		pk.Write(AUDCTL, 0x81)
		pk.Write(AUDF1, 0x40)
		pk.Write(AUDC1, 0x0a)
		pk.Write(AUDF2, 0x07)
		pk.Write(AUDC2, 0x48)
		pk.Write(AUDF3, 0x21)
		pk.Write(AUDC3, 0xc6)
		pk.Write(AUDF4, 0x90)
		pk.Write(AUDC4, 0x84)

		s := make([]float32, 100000)
		for i := range s {
			s[i] = pk.Step()
		}
		return s
	}

	a := run()
	b := run()
	var different int
	for i := range a {
		if a[i] != b[i] {
			different++
		}
	}
	test.ExpectEquality(t, different, 0)
}

func TestWrite(t *testing.T) {
	pk := NewPokey(MixExponential)

	// the upper nibble of the index is ignored
	test.ExpectSuccess(t, pk.Write(0x18, ctl15kHz))
	test.ExpectEquality(t, pk.audctl, ctl15kHz)
	test.ExpectEquality(t, pk.clockPeriod, period15kHz)

	test.ExpectSuccess(t, pk.Write(AUDC4, 0xa8))
	test.ExpectEquality(t, pk.Registers().AUDC[3], 0xa8)
	test.ExpectEquality(t, pk.Registers().Distortion(3), 0x05)
	test.ExpectEquality(t, pk.Registers().Volume(3), 0x08)

	test.ExpectFailure(t, pk.Write(0x0a, 0x00))
	test.ExpectFailure(t, pk.Write(0x1f, 0x00))

	pk.Reset()
	test.ExpectEquality(t, pk.Registers(), Registers{})
	test.ExpectEquality(t, pk.clockPeriod, period64kHz)
	test.ExpectEquality(t, pk.Cycles(), 0)
}

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
	"strings"
)

// Pokey is the emulation of the sound generating part of a single POKEY chip.
type Pokey struct {
	audf    [4]uint8
	audc    [4]uint8
	audctl  uint8
	console uint8

	// the live down counters. a linked pair holds the low eight bits of the
	// 16-bit value in the even channel
	cnt [4]int

	// output latches for each channel
	squareOutput [4]uint8
	output       [4]uint8

	// high pass flip-flops for channels 1 and 2
	hipass1 uint8
	hipass2 uint8

	// base clock
	clockCnt    int
	clockPeriod int

	// number of machine clocks since reset. only ever used modulo the length
	// of the polynomial tables
	cycleCnt uint64

	mixing Mixing
}

// NewPokey is the preferred method of initialisation for the Pokey type.
func NewPokey(mixing Mixing) *Pokey {
	pk := &Pokey{
		mixing: mixing,
	}
	pk.Reset()
	return pk
}

// Reset the chip to its power-on state.
func (pk *Pokey) Reset() {
	mixing := pk.mixing
	*pk = Pokey{
		clockPeriod: period64kHz,
		hipass1:     1,
		hipass2:     1,
		mixing:      mixing,
	}
}

// SetMixing changes the mixing law used to create output samples.
func (pk *Pokey) SetMixing(mixing Mixing) {
	pk.mixing = mixing
}

// Write a value to a register. Only the lower nibble of the register index is
// considered. Returns false if the index does not refer to a register.
func (pk *Pokey) Write(register uint8, value uint8) bool {
	register &= 0x0f
	if register >= NumRegisters {
		return false
	}

	d := decode[register]
	switch d.kind {
	case kindAUDF:
		pk.audf[d.channel] = value
	case kindAUDC:
		pk.audc[d.channel] = value
	case kindAUDCTL:
		pk.audctl = value
		if pk.audctl&ctl15kHz == ctl15kHz {
			pk.clockPeriod = period15kHz
		} else {
			pk.clockPeriod = period64kHz
		}
		if pk.audctl&ctlHipass1 == 0 {
			pk.hipass1 = 1
		}
		if pk.audctl&ctlHipass2 == 0 {
			pk.hipass2 = 1
		}
	case kindConsole:
		pk.console = value & 0x01
	}

	return true
}

// Step advances the chip by one machine clock and returns the new output
// sample, in the range 0.0 to 1.0.
func (pk *Pokey) Step() float32 {
	pk.tick()
	return pk.mix()
}

// Registers returns a copy of the register values.
func (pk *Pokey) Registers() Registers {
	return Registers{
		AUDF:    pk.audf,
		AUDC:    pk.audc,
		AUDCTL:  pk.audctl,
		Console: pk.console,
	}
}

// Cycles returns the number of machine clocks since the last reset.
func (pk *Pokey) Cycles() uint64 {
	return pk.cycleCnt
}

func (pk *Pokey) String() string {
	s := strings.Builder{}
	s.WriteString(pk.Registers().String())
	s.WriteString(fmt.Sprintf("  out: %d%d%d%d", pk.output[0], pk.output[1], pk.output[2], pk.output[3]))
	return s.String()
}

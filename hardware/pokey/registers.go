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

// Register indexes as they appear in the register write stream. The low
// nibble of an index selects the register. The AUDF and AUDC registers
// alternate for each channel.
const (
	AUDF1 uint8 = iota
	AUDC1
	AUDF2
	AUDC2
	AUDF3
	AUDC3
	AUDF4
	AUDC4
	AUDCTL

	// the console speaker is not part of the chip but it is mixed into the
	// same output
	CONSOLE
)

// NumRegisters is the number of register indexes accepted by Write()
const NumRegisters = CONSOLE + 1

// AUDCTL bits
const (
	ctl15kHz   = 0x01
	ctlHipass2 = 0x02
	ctlHipass1 = 0x04
	ctlLink34  = 0x08
	ctlLink12  = 0x10
	ctlFast3   = 0x20
	ctlFast1   = 0x40
	ctlPoly9   = 0x80
)

// AUDC bits
const (
	audcVolume     = 0x0f
	audcVolumeOnly = 0x10
	audcPure       = 0x20
	audcPoly4      = 0x40
	audcNoPoly5    = 0x80
)

// the period of the base clock in ticks of the internal clock
const (
	period64kHz = 28
	period15kHz = 114
)

type registerKind int

const (
	kindAUDF registerKind = iota
	kindAUDC
	kindAUDCTL
	kindConsole
)

// decoding of the register index into the type of register and the channel
// number (where applicable)
var decode = [NumRegisters]struct {
	kind    registerKind
	channel int
}{
	{kind: kindAUDF, channel: 0},
	{kind: kindAUDC, channel: 0},
	{kind: kindAUDF, channel: 1},
	{kind: kindAUDC, channel: 1},
	{kind: kindAUDF, channel: 2},
	{kind: kindAUDC, channel: 2},
	{kind: kindAUDF, channel: 3},
	{kind: kindAUDC, channel: 3},
	{kind: kindAUDCTL},
	{kind: kindConsole},
}

// Registers is a copy of the write-only registers of the chip.
type Registers struct {
	AUDF    [4]uint8
	AUDC    [4]uint8
	AUDCTL  uint8
	Console uint8
}

// Volume returns the volume bits of the channel's AUDC register.
func (reg Registers) Volume(channel int) uint8 {
	return reg.AUDC[channel] & audcVolume
}

// Distortion returns the distortion bits (the upper three bits) of the
// channel's AUDC register, shifted into the range 0 to 7.
func (reg Registers) Distortion(channel int) uint8 {
	return reg.AUDC[channel] >> 5
}

// VolumeOnly returns true if the channel is in volume only mode.
func (reg Registers) VolumeOnly(channel int) bool {
	return reg.AUDC[channel]&audcVolumeOnly == audcVolumeOnly
}

// Linked returns true if the channel is one half of a 16-bit pair.
func (reg Registers) Linked(channel int) bool {
	switch channel {
	case 0, 1:
		return reg.AUDCTL&ctlLink12 == ctlLink12
	case 2, 3:
		return reg.AUDCTL&ctlLink34 == ctlLink34
	}
	return false
}

// Fast returns true if the channel is clocked by the machine clock rather
// than by the base clock.
func (reg Registers) Fast(channel int) bool {
	switch channel {
	case 0:
		return reg.AUDCTL&ctlFast1 == ctlFast1
	case 2:
		return reg.AUDCTL&ctlFast3 == ctlFast3
	}
	return false
}

// BaseClock returns the period of the base clock in machine clocks.
func (reg Registers) BaseClock() int {
	if reg.AUDCTL&ctl15kHz == ctl15kHz {
		return period15kHz
	}
	return period64kHz
}

func (reg Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("ctl: %08b", reg.AUDCTL))
	for i := range 4 {
		s.WriteString(fmt.Sprintf("  ch%d: %02x %03b %04b", i+1, reg.AUDF[i], reg.Distortion(i), reg.Volume(i)))
	}
	if reg.Console != 0 {
		s.WriteString("  con")
	}
	return s.String()
}

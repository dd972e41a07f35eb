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

// Package pokey emulates the sound generating part of the POKEY chip. The
// emulation is clocked at the chip's internal rate (the 1.77MHz PAL machine
// clock) and every tick produces one normalised sample in the range 0.0 to
// 1.0. Converting that high rate signal into something a sound card can play
// is the job of the filter package.
//
// The chip has four channels. Each channel is an 8-bit down counter that is
// reloaded from its AUDF register when it underflows. A reload toggles the
// channel's square wave latch and samples one of the polynomial counters,
// depending on the distortion bits in the AUDC register. Pairs of channels can
// be linked to form 16-bit counters, channels 1 and 3 can be clocked directly
// by the machine clock, and channels 1 and 2 can be put through a "high pass"
// flip-flop clocked by channels 3 and 4 respectively.
//
// Much of the information needed for the emulation comes from the Altirra
// Hardware Reference Manual, in particular the sections on the timing of the
// counter reloads. The nonlinear mixing law is a fit to measurements of the
// analogue output stage of real hardware.
//
// The Pokey type is not safe for concurrent use. It is owned by the engine in
// the hardware package, which applies register writes between ticks.
package pokey

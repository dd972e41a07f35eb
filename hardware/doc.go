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

// Package hardware is the base package for the sound engine. It and its
// sub-packages contain everything required to turn a stream of POKEY register
// writes into audio.
//
// The Engine type is the root of the emulation. It owns two instances of the
// pokey chip, one for each side of a stereo pair, along with the decimation
// filters and the event intake. Register writes are queued by the producer
// goroutine with Write() and Flush(). The audio goroutine calls Render() to
// fill output buffers.
//
// The Arbiter type decides whether the output should be mono or stereo based
// on which chips are being written to.
package hardware

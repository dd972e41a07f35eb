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

// Package recorder writes and reads capture files. A capture file is a text
// record of every register write applied by the sound engine. The Recorder
// type implements the hardware.Tap interface and so can be attached directly
// to the engine. The Playback type reads a capture file and returns the
// events in a form suitable for feeding back into an engine, either all at
// once or in batches of a fixed period.
//
// The package also contains the SAPWriter type, which converts a stream of
// register writes into a SAP type R file. Type R files are a dump of the
// first nine registers of each chip, once per frame.
package recorder

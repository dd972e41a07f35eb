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

// Package intake handles the stream of register writes on its way from the
// producer to the sound engine. The producer might be an emulated CPU, a
// capture file or a script. Each write is an Event with a timestamp in
// seconds.
//
// Batches of events are handed from the producer goroutine to the audio
// goroutine with the Handoff type, which is built on the lock-free Ring type.
// On the audio side the Sync type moves the timestamps of each batch so that
// they land a short time in the future of the audio clock, correcting for the
// drift between the producer's clock and the audio clock. Finally, events
// wait in a Buffer until the audio clock reaches them.
//
// Nothing in the audio side of the package blocks or performs I/O.
package intake

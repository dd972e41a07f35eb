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

package intake

import (
	"fmt"
	"math"
)

// Event is a single register write.
type Event struct {
	// the low nibble is the register index. bit 4 selects the chip. bits 5 to
	// 7 must be zero
	Register uint8
	Value    uint8

	// time of the write in seconds
	Time float64
}

// Side returns the chip selected by the event. Zero for the left chip and one
// for the right chip.
func (e Event) Side() int {
	return int(e.Register>>4) & 0x01
}

// Index returns the register index of the event with the chip selection
// removed.
func (e Event) Index() uint8 {
	return e.Register & 0x0f
}

// Malformed returns true if the event can never be applied. Either a bit
// above the chip selection bit is set or the time is not a finite number.
func (e Event) Malformed() bool {
	return e.Register&0xe0 != 0 || math.IsNaN(e.Time) || math.IsInf(e.Time, 0)
}

// DiscardMalformed removes malformed events from the batch. The batch is
// changed in place and the order of the remaining events is unchanged.
// Returns the shortened batch and the number of events removed.
func DiscardMalformed(batch []Event) ([]Event, int) {
	n := 0
	for _, e := range batch {
		if !e.Malformed() {
			batch[n] = e
			n++
		}
	}
	return batch[:n], len(batch) - n
}

func (e Event) String() string {
	return fmt.Sprintf("%02x=%02x @ %.6f", e.Register, e.Value, e.Time)
}

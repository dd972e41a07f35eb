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

package tracker

import (
	"fmt"
	"math"
	"strings"

	"github.com/jetsetilly/gopokey/hardware/pokey"
)

// LookupDistortion converts the control register value of the channel into a
// text description. The numbers in the noise descriptions are the lengths of
// the polynomial counters that shape the output.
func LookupDistortion(reg pokey.Registers, channel int) string {
	if reg.VolumeOnly(channel) {
		return "Volume"
	}

	poly9 := reg.AUDCTL&0x80 == 0x80

	switch reg.Distortion(channel) {
	case 0:
		if poly9 {
			return "Noise 5/9"
		}
		return "Noise 5/17"
	case 2:
		return "Buzz 5/4"
	case 4:
		if poly9 {
			return "Noise 9"
		}
		return "Noise 17"
	case 6:
		return "Buzz 4"
	}

	// distortion values 1, 3, 5 and 7
	return "Pure"
}

// describe the clocking options in the AUDCTL register
func describeAUDCTL(v uint8) string {
	var s []string
	if v&0x01 == 0x01 {
		s = append(s, "15kHz")
	} else {
		s = append(s, "64kHz")
	}
	if v&0x80 == 0x80 {
		s = append(s, "poly9")
	}
	if v&0x40 == 0x40 {
		s = append(s, "fast1")
	}
	if v&0x20 == 0x20 {
		s = append(s, "fast3")
	}
	if v&0x10 == 0x10 {
		s = append(s, "link12")
	}
	if v&0x08 == 0x08 {
		s = append(s, "link34")
	}
	if v&0x04 == 0x04 {
		s = append(s, "hp1")
	}
	if v&0x02 == 0x02 {
		s = append(s, "hp2")
	}
	return strings.Join(s, " ")
}

// Frequency returns the frequency of the square wave that a channel would
// produce with the current register values. The clock is the rate of the
// machine clock in Hz.
//
// Returns zero if the channel is in volume only mode or if the channel is the
// low half of a linked pair.
func Frequency(reg pokey.Registers, channel int, clock float64) float64 {
	if reg.VolumeOnly(channel) {
		return 0
	}

	if reg.Linked(channel) {
		if channel&0x01 == 0 {
			return 0
		}
		lo := channel - 1
		n := float64(reg.AUDF[lo]) + 256*float64(reg.AUDF[channel])
		if reg.Fast(lo) {
			return clock / (2 * (n + 7))
		}
		return clock / float64(reg.BaseClock()) / (2 * (n + 1))
	}

	if reg.Fast(channel) {
		return clock / (2 * (float64(reg.AUDF[channel]) + 4))
	}

	return clock / float64(reg.BaseClock()) / (2 * (float64(reg.AUDF[channel]) + 1))
}

// MusicalNote is the name of the note (eg. "C#4") nearest to the frequency
// of a channel.
type MusicalNote string

// NoMusicalNote is used when the channel is not producing a pure tone or when
// the frequency is outside the range of the note table.
const NoMusicalNote = MusicalNote("-")

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// LookupMusicalNote converts the frequency of a channel into a musical note.
// Only pure tones have a note.
func LookupMusicalNote(reg pokey.Registers, channel int, freq float64) MusicalNote {
	if reg.VolumeOnly(channel) || reg.Distortion(channel)&0x01 == 0 {
		return NoMusicalNote
	}
	return NoteFromFrequency(freq)
}

// NoteFromFrequency returns the nearest note in equal temperament tuning, with
// A4 at 440Hz.
func NoteFromFrequency(freq float64) MusicalNote {
	if freq <= 0 || math.IsInf(freq, 0) || math.IsNaN(freq) {
		return NoMusicalNote
	}

	n := int(math.Round(12*math.Log2(freq/440) + 69))
	if n < 0 || n > 127 {
		return NoMusicalNote
	}

	return MusicalNote(fmt.Sprintf("%s%d", noteNames[n%12], n/12-1))
}

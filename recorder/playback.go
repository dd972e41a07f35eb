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

package recorder

import (
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware/intake"
)

// Playback is a sequence of register writes read from a capture file, or
// created by some other means.
type Playback struct {
	Name string

	// the output rate used when the events were captured. a value of zero
	// means that the rate is unknown
	Rate int

	events []intake.Event
}

// NewPlayback reads the named capture file.
func NewPlayback(filename string) (*Playback, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	if fi.Size() == 0 {
		return nil, curated.Errorf(NotCapture, filename)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer m.Unmap()

	rate, events, err := parseCapture(filename, m)
	if err != nil {
		return nil, err
	}

	return &Playback{
		Name:   filename,
		Rate:   rate,
		events: events,
	}, nil
}

// NewPlaybackFromEvents creates a Playback from a list of events. The events
// must be in time order.
func NewPlaybackFromEvents(name string, rate int, events []intake.Event) *Playback {
	return &Playback{
		Name:   name,
		Rate:   rate,
		events: events,
	}
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%s: %d events, %.2fs", plb.Name, len(plb.events), plb.Duration())
}

// Events returns all events in the playback. The returned slice should not be
// modified.
func (plb *Playback) Events() []intake.Event {
	return plb.events
}

// Duration returns the time between the first and last events.
func (plb *Playback) Duration() float64 {
	if len(plb.events) == 0 {
		return 0
	}
	return plb.events[len(plb.events)-1].Time - plb.events[0].Time
}

// Frames divides the events into frames of the specified period in seconds.
// The first frame starts at the time of the first event. Frames in which no
// events occur are returned as empty slices. The slices share memory with the
// Playback.
func (plb *Playback) Frames(period float64) [][]intake.Event {
	if len(plb.events) == 0 || period <= 0 {
		return nil
	}

	start := plb.events[0].Time
	n := int(math.Floor(plb.Duration()/period)) + 1
	frames := make([][]intake.Event, n)

	var i int
	for f := range frames {
		end := start + float64(f+1)*period
		j := i
		for j < len(plb.events) && (plb.events[j].Time < end || f == n-1) {
			j++
		}
		frames[f] = plb.events[i:j:j]
		i = j
	}

	return frames
}

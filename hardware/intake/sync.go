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

// the default latency window of the Sync type, in seconds
const (
	DefaultMinLatency = 0.02
	DefaultMaxLatency = 0.1
)

// Sync maps producer timestamps onto the audio clock. The mapping is a single
// offset which is adjusted for every batch so that the batch lands between
// the minimum and maximum latency ahead of the audio clock.
//
// The first batch sets the offset so that the first event in the batch lands
// exactly at the minimum latency. After that:
//
//   - if the first event of a batch would land too soon, the offset is
//     increased so that it lands at the minimum latency
//   - otherwise, if the last event of a batch would land too late, the offset
//     is decreased so that it lands at the maximum latency
//
// The whole batch is shifted by the same amount. Events are never reordered
// or dropped. A batch is never moved so that it starts before the end of the
// previous batch.
type Sync struct {
	MinLatency float64
	MaxLatency float64

	offset float64
	valid  bool

	// adjusted time of the last event of the previous batch
	last float64

	// the number of times the offset has been adjusted
	adjustments int
}

// NewSync creates a new Sync with the latency window.
func NewSync(minLatency float64, maxLatency float64) *Sync {
	return &Sync{
		MinLatency: minLatency,
		MaxLatency: maxLatency,
	}
}

// Adjust the timestamps of the batch. The now argument is the current time of
// the audio clock in seconds. The events in the batch are changed in place.
func (s *Sync) Adjust(batch []Event, now float64) {
	if len(batch) == 0 {
		return
	}

	earliest := now + s.MinLatency
	latest := now + s.MaxLatency

	if !s.valid {
		s.offset = earliest - batch[0].Time
		s.valid = true
	}

	first := batch[0].Time + s.offset
	last := batch[len(batch)-1].Time + s.offset
	if first < earliest {
		s.offset += earliest - first
		s.adjustments++
	} else if last > latest {
		s.offset -= last - latest
		s.adjustments++
	}

	if s.offset+batch[0].Time < s.last {
		s.offset = s.last - batch[0].Time
	}

	for i := range batch {
		batch[i].Time += s.offset
	}
	s.last = batch[len(batch)-1].Time
}

// Offset returns the current offset and whether it has been initialised.
func (s *Sync) Offset() (float64, bool) {
	return s.offset, s.valid
}

// Adjustments returns the number of times the offset has been adjusted since
// the offset was initialised.
func (s *Sync) Adjustments() int {
	return s.adjustments
}

// Reset forgets the offset. The next batch will initialise a new offset.
func (s *Sync) Reset() {
	s.offset = 0
	s.valid = false
	s.last = 0
	s.adjustments = 0
}

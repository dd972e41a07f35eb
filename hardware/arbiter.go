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

package hardware

// Bits in the mask passed to Arbiter.Update().
const (
	SideLeft  uint8 = 0x01
	SideRight uint8 = 0x02
)

// DefaultStereoThreshold is the number of consecutive updates where both chips
// are written to before stereo output is selected.
const DefaultStereoThreshold = 20

// Arbiter decides whether output should be mono or stereo. Output starts in
// mono and switches to stereo when both chips are written to consistently. It
// switches back to mono when only one chip is written to consistently.
//
// In mono the output is taken from the active chip. The active chip is the
// chip that was written to by the most recent update that wrote to only one
// chip. The left chip is active after a reset.
type Arbiter struct {
	threshold int
	cnt       int
	stereo    bool
	active    int
}

// NewArbiter is the preferred method of initialisation for the Arbiter type.
func NewArbiter(threshold int) *Arbiter {
	if threshold <= 0 {
		threshold = DefaultStereoThreshold
	}
	return &Arbiter{
		threshold: threshold,
	}
}

// Update the arbiter with the mask of sides that were written to. Returns true
// if the output has changed, either the mode or the active chip.
//
// An update with an empty mask makes no difference.
func (a *Arbiter) Update(mask uint8) bool {
	switch mask {
	case SideLeft | SideRight:
		a.cnt++
		if a.cnt > a.threshold {
			a.cnt = a.threshold
			return a.set(true, a.active)
		}
	case SideLeft, SideRight:
		side := 0
		if mask == SideRight {
			side = 1
		}
		a.cnt--
		if a.cnt < 0 {
			a.cnt = 0
			return a.set(false, side)
		}
		if !a.stereo {
			return a.set(false, side)
		}
	}
	return false
}

func (a *Arbiter) set(stereo bool, active int) bool {
	changed := a.stereo != stereo || (!stereo && a.active != active)
	a.stereo = stereo
	a.active = active
	return changed
}

// Stereo returns true if output should be in stereo.
func (a *Arbiter) Stereo() bool {
	return a.stereo
}

// Active returns the chip used for mono output. Zero for the left chip and
// one for the right chip.
func (a *Arbiter) Active() int {
	return a.active
}

// Reset the arbiter to mono output from the left chip.
func (a *Arbiter) Reset() {
	a.cnt = 0
	a.stereo = false
	a.active = 0
}

func (a *Arbiter) String() string {
	if a.stereo {
		return "stereo"
	}
	if a.active == 1 {
		return "mono (right chip)"
	}
	return "mono"
}

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

package preferences

import (
	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/hardware/pokey"
	"github.com/jetsetilly/gopokey/paths"
	"github.com/jetsetilly/gopokey/prefs"
)

// Preferences defines and collates all the preference values used by the
// sound engine.
type Preferences struct {
	dsk *prefs.Disk

	// the mixing law used to combine the channels. "exponential" or "linear"
	Mixing prefs.String

	// output volume applied after filtering
	Volume prefs.Float

	// whether writes to the console speaker register are accepted
	ConsoleSpeaker prefs.Bool

	// the latency window used to synchronise incoming register writes with
	// the audio clock. in seconds
	MinLatency prefs.Float
	MaxLatency prefs.Float

	// the number of consecutive stereo batches required before stereo output
	// is selected
	StereoThreshold prefs.Int

	// remove the DC offset from the output
	DCBlocker prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// location of the preferences file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Mixing.SetHookPre(func(v prefs.Value) error {
		_, err := pokey.ParseMixing(v.(string))
		return err
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.mixing", &p.Mixing)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.volume", &p.Volume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pokey.consolespeaker", &p.ConsoleSpeaker)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sync.minlatency", &p.MinLatency)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sync.maxlatency", &p.MaxLatency)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("stereo.threshold", &p.StereoThreshold)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("filter.dcblocker", &p.DCBlocker)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Mixing.Set(pokey.MixExponential.String())
	_ = p.Volume.Set(0.5)
	_ = p.ConsoleSpeaker.Set(false)
	_ = p.MinLatency.Set(intake.DefaultMinLatency)
	_ = p.MaxLatency.Set(intake.DefaultMaxLatency)
	_ = p.StereoThreshold.Set(20)
	_ = p.DCBlocker.Set(true)
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// MixingLaw returns the current mixing law as a pokey.Mixing value.
func (p *Preferences) MixingLaw() pokey.Mixing {
	m, _ := pokey.ParseMixing(p.Mixing.String())
	return m
}

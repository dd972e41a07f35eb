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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/prefs"
	"github.com/jetsetilly/gopokey/test"
)

func prefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences")
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestTypes(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var speaker prefs.Bool
	var stereo prefs.Bool
	var mixing prefs.String
	var threshold prefs.Int

	test.ExpectSuccess(t, dsk.Add("pokey.consolespeaker", &speaker))
	test.ExpectSuccess(t, dsk.Add("pokey.stereo", &stereo))
	test.ExpectSuccess(t, dsk.Add("pokey.mixing", &mixing))
	test.ExpectSuccess(t, dsk.Add("pokey.threshold", &threshold))

	// strings are converted for the bool and int types. a string that isn't
	// "true" is false
	test.ExpectSuccess(t, speaker.Set("TRUE"))
	test.ExpectSuccess(t, stereo.Set("yes"))
	test.ExpectSuccess(t, mixing.Set("linear"))
	test.ExpectSuccess(t, threshold.Set(" 20"))

	test.DemandSuccess(t, dsk.Save())

	// entries are sorted by key
	cmpPrefsFile(t, fn, "pokey.consolespeaker :: true\npokey.mixing :: linear\npokey.stereo :: false\npokey.threshold :: 20\n")

	test.ExpectFailure(t, threshold.Set("---"))
	test.ExpectFailure(t, threshold.Set(1.0))
	test.ExpectEquality(t, threshold.Get().(int), 20)
}

// values saved from a second disk instance using the same file must not
// clobber the values saved by the first instance
func TestSharedFile(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var speaker prefs.Bool
	test.ExpectSuccess(t, dsk.Add("pokey.consolespeaker", &speaker))
	test.ExpectSuccess(t, speaker.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var backend prefs.String
	test.ExpectSuccess(t, dsk.Add("audio.backend", &backend))
	test.ExpectSuccess(t, backend.Set("oto"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefsFile(t, fn, "audio.backend :: oto\npokey.consolespeaker :: true\n")
}

func TestFloatAndCommandLine(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	err = dsk.Add("pokey.volume", &v)
	test.ExpectSuccess(t, err)

	err = v.Set("0.25")
	test.ExpectSuccess(t, err)
	err = dsk.Save()
	test.DemandSuccess(t, err)
	cmpPrefsFile(t, fn, "pokey.volume :: 0.250\n")

	// command line value overrides the value on disk
	prefs.PushCommandLineStack("pokey.volume::0.75")
	err = dsk.Load(true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Get().(float64), 0.75)

	// the value has been consumed from the command line stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// without the command line the disk value is restored
	err = dsk.Load(false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Get().(float64), 0.25)
}

func TestMissingFile(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("pokey.consolespeaker", &v)
	test.ExpectSuccess(t, err)

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var seen int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(20))
	test.ExpectEquality(t, seen, 20)

	// the pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 20)
}

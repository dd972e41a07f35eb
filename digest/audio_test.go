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

package digest_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopokey/digest"
	"github.com/jetsetilly/gopokey/hardware"
	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/hardware/preferences"
	"github.com/jetsetilly/gopokey/playmode"
	"github.com/jetsetilly/gopokey/recorder"
	"github.com/jetsetilly/gopokey/test"
)

func render(t *testing.T, audf uint8) string {
	t.Helper()

	prf, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	eng, err := hardware.NewEngine(48000, prf)
	test.DemandSuccess(t, err)

	plb := recorder.NewPlaybackFromEvents("tone", 48000, []intake.Event{
		{Register: 0x00, Value: audf, Time: 0},
		{Register: 0x01, Value: 0xaf, Time: 0},
		{Register: 0x01, Value: 0xa0, Time: 0.2},
	})

	dig := digest.NewAudio()
	test.DemandSuccess(t, playmode.Render(eng, plb, dig, 0, false))
	test.ExpectEquality(t, dig.Frames(), 33600)
	return dig.Hash()
}

func TestAudioDigest(t *testing.T) {
	a := render(t, 0x40)
	b := render(t, 0x40)
	c := render(t, 0x41)
	test.ExpectEquality(t, a, b)
	test.ExpectInequality(t, a, c)
}

func TestAudioDigestReset(t *testing.T) {
	dig := digest.NewAudio()
	empty := dig.Hash()

	buf := make([]float32, 5000)
	for i := range buf {
		buf[i] = 0.25
	}
	test.DemandSuccess(t, dig.Write(buf, buf))
	test.ExpectInequality(t, dig.Hash(), empty)
	test.ExpectEquality(t, dig.Frames(), 5000)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), empty)
	test.ExpectEquality(t, dig.Frames(), 0)
}

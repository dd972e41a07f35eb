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

package script_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/script"
	"github.com/jetsetilly/gopokey/test"
)

func TestScore(t *testing.T) {
	src := `
-- an arpeggio written backwards
for i = 3, 0, -1 do
	write(0, 0x40 + i, i * 0.25)
end
write(1, 0xa8, 0.0)
write(0x11, rate % 256, 0.5)
`
	sc, err := script.RunScore(context.Background(), "arp", src, 48000)
	test.DemandSuccess(t, err)

	ev := sc.Events()
	test.DemandEquality(t, len(ev), 6)

	// events are sorted by time. events at the same time keep the order in
	// which they were written
	test.ExpectEquality(t, ev[0].Value, uint8(0x40))
	test.ExpectEquality(t, ev[1].Register, uint8(1))
	test.ExpectEquality(t, ev[1].Value, uint8(0xa8))
	test.ExpectEquality(t, ev[2].Value, uint8(0x41))
	test.ExpectEquality(t, ev[3].Value, uint8(0x42))
	test.ExpectEquality(t, ev[4].Register, uint8(0x11))
	test.ExpectEquality(t, ev[4].Value, uint8(48000%256))
	test.ExpectEquality(t, ev[5].Time, 0.75)

	for i := 1; i < len(ev); i++ {
		test.ExpectSuccess(t, ev[i].Time >= ev[i-1].Time)
	}

	plb := sc.Playback()
	test.ExpectEquality(t, plb.Rate, 48000)
	test.ExpectEquality(t, plb.Duration(), 0.75)
}

func TestScoreErrors(t *testing.T) {
	ctx := context.Background()

	_, err := script.RunScore(ctx, "syntax", "write(0, 0, ", 48000)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	_, err = script.RunScore(ctx, "register", "write(0x20, 0, 0)", 48000)
	test.ExpectFailure(t, err)

	_, err = script.RunScore(ctx, "value", "write(0, 256, 0)", 48000)
	test.ExpectFailure(t, err)

	_, err = script.RunScore(ctx, "time", "write(0, 0, -1)", 48000)
	test.ExpectFailure(t, err)

	_, err = script.RunScore(ctx, "nan", "write(0, 0, 0/0)", 48000)
	test.ExpectFailure(t, err)

	_, err = script.RunScore(ctx, "inf", "write(0, 0, 1/0)", 48000)
	test.ExpectFailure(t, err)

	_, err = script.RunScore(ctx, "empty", "local x = 1", 48000)
	test.ExpectSuccess(t, curated.Is(err, script.ScoreEmpty))

	// no access to the file system
	_, err = script.RunScore(ctx, "io", "io.open('x')", 48000)
	test.ExpectFailure(t, err)
	_, err = script.RunScore(ctx, "dofile", "dofile('x')", 48000)
	test.ExpectFailure(t, err)
}

func TestScoreTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := script.RunScore(ctx, "forever", "while true do end", 48000)
	test.ExpectFailure(t, err)
}

func TestLoadScore(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tone.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("write(0, 1, 0)\nlog('tone')\n"), 0o644))

	test.ExpectSuccess(t, script.IsScore(fn))
	test.ExpectFailure(t, script.IsScore("tone.cap"))

	sc, err := script.LoadScore(context.Background(), fn, 44100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(sc.Events()), 1)

	_, err = script.LoadScore(context.Background(), filepath.Join(t.TempDir(), "missing.lua"), 44100)
	test.ExpectFailure(t, err)
}

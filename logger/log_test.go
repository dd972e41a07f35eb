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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopokey/logger"
	"github.com/jetsetilly/gopokey/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "playback", "capture opened")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "playback: capture opened\n")

	w.Reset()

	log.Log(logger.Allow, "engine", "stereo detected")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "playback: capture opened\nengine: stereo detected\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "playback: capture opened\nengine: stereo detected\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "playback: capture opened\nengine: stereo detected\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "engine: stereo detected\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

// logging is prohibited while a recording is being made
type recording struct {
	active bool
}

func (r recording) AllowLogging() bool {
	return !r.active
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var r recording

	for i := range 10 {
		r.active = i%3 == 0
		log.Clear()
		w.Reset()
		log.Log(r, "recorder", "event lost")
		log.Write(w)
		if r.active {
			test.ExpectEquality(t, w.String(), "")
		} else {
			test.ExpectEquality(t, w.String(), "recorder: event lost\n")
		}
	}
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("unsupported output rate")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: unsupported output rate\n")

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: unsupported output rate\n")
}

// the Log() function explicitly handles Stringer types
type design struct{}

func (design) String() string {
	return "48000Hz (37:1)"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", design{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 48000Hz (37:1)\n")
}

// for explicitly unsupported types, the Log() function will log the detail
// argument using the %v verb from the fmt package
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

// repeated entries are folded into a single entry with a repeat count
func TestRepeatedLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "engine", "stereo: true")
	log.Log(logger.Allow, "engine", "stereo: true")
	log.Log(logger.Allow, "engine", "stereo: true")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "engine: stereo: true (repeat x3)\n")
}

// the number of entries is capped
func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for i := range 5 {
		log.Log(logger.Allow, "tag", i)
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\ntag: 4\n")
}

func TestEchoAndRecent(t *testing.T) {
	log := logger.NewLogger(100)

	r, err := test.NewRingWriter(256)
	test.DemandSuccess(t, err)

	log.SetEcho(r, false)
	log.Log(logger.Allow, "tag", "first")
	test.ExpectEquality(t, r.String(), "tag: first\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "tag", "second")
	test.ExpectEquality(t, r.String(), "tag: first\n")

	w := &strings.Builder{}
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: first\ntag: second\n")

	// nothing new since the last call
	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestPermit(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Permit(false), "tag", "prohibited")
	log.Log(logger.Permit(true), "tag", "allowed")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: allowed\n")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := c.Write([]byte("recorder: error opening file\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("recorder: error opening file\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "recorder"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "error opening file"))
}

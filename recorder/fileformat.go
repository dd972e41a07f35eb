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
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware/intake"
)

// capture file format
// -------------------
//
// # gopokey capture
// # rate <output rate in Hz>
// <register>, <value>, <time in seconds>
// ...
//
// register and value are decimal numbers. lines beginning with # after the
// header are ignored

const (
	fieldRegister int = iota
	fieldValue
	fieldTime
	numFields
)

const fieldSep = ", "

const (
	headerID   = "# gopokey capture"
	headerRate = "# rate "
)

// Sentinal error patterns.
const (
	NotCapture   = "playback: not a capture file (%s)"
	CaptureError = "playback: %s line %d: %v"
)

func writeHeader(w io.Writer, rate int) error {
	_, err := fmt.Fprintf(w, "%s\n%s%d\n", headerID, headerRate, rate)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

func formatEvent(e intake.Event) string {
	return fmt.Sprintf("%d%s%d%s%.9f\n", e.Register, fieldSep, e.Value, fieldSep, e.Time)
}

// parseCapture reads the contents of a capture file. the name argument is
// used in error messages only
func parseCapture(name string, data []byte) (int, []intake.Event, error) {
	lines := strings.Split(string(data), "\n")

	if len(lines) < 2 || strings.TrimSpace(lines[0]) != headerID {
		return 0, nil, curated.Errorf(NotCapture, name)
	}

	r, ok := strings.CutPrefix(strings.TrimSpace(lines[1]), headerRate)
	if !ok {
		return 0, nil, curated.Errorf(NotCapture, name)
	}
	rate, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return 0, nil, curated.Errorf(CaptureError, name, 2, err)
	}

	events := make([]intake.Event, 0, len(lines))

	for i := 2; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}

		toks := strings.Split(l, fieldSep)
		if len(toks) != numFields {
			return 0, nil, curated.Errorf(CaptureError, name, i+1, fmt.Sprintf("expected %d fields", numFields))
		}

		reg, err := strconv.ParseUint(toks[fieldRegister], 0, 8)
		if err != nil {
			return 0, nil, curated.Errorf(CaptureError, name, i+1, err)
		}
		val, err := strconv.ParseUint(toks[fieldValue], 0, 8)
		if err != nil {
			return 0, nil, curated.Errorf(CaptureError, name, i+1, err)
		}
		t, err := strconv.ParseFloat(toks[fieldTime], 64)
		if err != nil {
			return 0, nil, curated.Errorf(CaptureError, name, i+1, err)
		}

		e := intake.Event{
			Register: uint8(reg),
			Value:    uint8(val),
			Time:     t,
		}
		if e.Malformed() {
			return 0, nil, curated.Errorf(CaptureError, name, i+1, "malformed event")
		}

		if len(events) > 0 && t < events[len(events)-1].Time {
			return 0, nil, curated.Errorf(CaptureError, name, i+1, "event is out of order")
		}

		events = append(events, e)
	}

	return rate, events, nil
}

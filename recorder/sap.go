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
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware/intake"
)

// SAP type R files are played at the PAL frame rate
const (
	SAPFramesPerSecond = 50
	SAPFastPlay        = 312
)

// the number of registers of each chip stored per frame
const sapRegisters = 9

// SAPWriter converts register writes into the frames of a SAP type R file.
type SAPWriter struct {
	stereo bool

	// leading frames where every channel has a volume of zero are not written
	trim bool

	// the register values for both chips. the right chip starts at index 16
	regs [32]uint8

	frames int
	data   bytes.Buffer
}

// NewSAPWriter is the preferred method of initialisation for the SAPWriter type.
func NewSAPWriter(stereo bool, trim bool) *SAPWriter {
	return &SAPWriter{
		stereo: stereo,
		trim:   trim,
	}
}

func (w *SAPWriter) silent() bool {
	for _, base := range []int{0, 16} {
		if base == 16 && !w.stereo {
			break
		}
		for ch := range 4 {
			if w.regs[base+ch*2+1]&0x0f != 0 {
				return false
			}
		}
	}
	return true
}

// Frame applies the events to the register state and adds a frame to the
// output.
func (w *SAPWriter) Frame(events []intake.Event) {
	for _, e := range events {
		if w.stereo {
			w.regs[e.Register&0x1f] = e.Value
		} else {
			w.regs[e.Register&0x0f] = e.Value
		}
	}

	if w.trim {
		if w.silent() {
			return
		}
		w.trim = false
	}

	w.data.Write(w.regs[:sapRegisters])
	if w.stereo {
		w.data.Write(w.regs[16 : 16+sapRegisters])
	}
	w.frames++
}

// Frames returns the number of frames written.
func (w *SAPWriter) Frames() int {
	return w.frames
}

// Duration returns the duration of the frames written so far.
func (w *SAPWriter) Duration() float64 {
	return float64(w.frames) / SAPFramesPerSecond
}

// sapTime formats the duration for the TIME header. for example, 65.5
// seconds is 1:05.50
func sapTime(t float64) string {
	m := math.Floor(t / 60)
	s := t - m*60
	return fmt.Sprintf("%d:%05.2f", int(m), s)
}

// Header returns the header of the SAP file. Additional header lines, for
// example NAME and AUTHOR, are inserted after the TYPE line.
func (w *SAPWriter) Header(additional ...string) string {
	h := []string{"SAP", "TYPE R"}
	h = append(h, additional...)
	h = append(h, fmt.Sprintf("TIME %s", sapTime(w.Duration())))
	h = append(h, fmt.Sprintf("FASTPLAY %d", SAPFastPlay))
	if w.stereo {
		h = append(h, "STEREO")
	}
	return strings.Join(h, "\r\n") + "\r\n\r\n"
}

// Save writes the SAP file, header and frame data, to the io.Writer.
func (w *SAPWriter) Save(out io.Writer, additional ...string) error {
	if _, err := io.WriteString(out, w.Header(additional...)); err != nil {
		return curated.Errorf("sap: %v", err)
	}
	if _, err := out.Write(w.data.Bytes()); err != nil {
		return curated.Errorf("sap: %v", err)
	}
	return nil
}

// Stereo returns true if the events in the playback refer to the right chip.
func Stereo(events []intake.Event) bool {
	for _, e := range events {
		if e.Side() == 1 {
			return true
		}
	}
	return false
}

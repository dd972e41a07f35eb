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

// Package wavwriter allows writing of rendered audio to disk as a 16bit PCM
// WAV file. Samples are encoded as they are written so memory use does not
// grow with the length of the recording.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware/mix"
	"github.com/jetsetilly/gopokey/logger"
)

// the bit depth of the encoded samples
const bitDepth = 16

// audio format code for PCM data
const wavFormatPCM = 1

// WavWriter encodes sample buffers to a WAV file.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
	channels int
	frames   int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type. The number of channels should be one or two.
func NewWavWriter(filename string, rate int, channels int) (*WavWriter, error) {
	if channels < 1 || channels > 2 {
		return nil, curated.Errorf("wavwriter: unsupported number of channels (%d)", channels)
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, rate, bitDepth, channels, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: channels,
				SampleRate:  rate,
			},
			SourceBitDepth: bitDepth,
		},
		channels: channels,
	}

	return aw, nil
}

// Write rendered samples to the file. When the WavWriter has been created with
// two channels the right buffer must be the same length as the left buffer.
// For a single channel file the right buffer is mixed with the left buffer if
// it is not nil.
func (aw *WavWriter) Write(left []float32, right []float32) error {
	aw.buf.Data = aw.buf.Data[:0]

	if aw.channels == 1 {
		for i, l := range left {
			if right != nil {
				l = (l + right[i]) * 0.5
			}
			aw.buf.Data = append(aw.buf.Data, int(mix.Sample(l)))
		}
	} else {
		for i, l := range left {
			r := l
			if right != nil {
				r = right[i]
			}
			aw.buf.Data = append(aw.buf.Data, int(mix.Sample(l)), int(mix.Sample(r)))
		}
	}

	if err := aw.enc.Write(aw.buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	aw.frames += len(left)

	return nil
}

// Frames returns the number of sample frames written so far.
func (aw *WavWriter) Frames() int {
	return aw.frames
}

// End completes the WAV header and closes the file.
func (aw *WavWriter) End() (rerr error) {
	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	if err := aw.enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d frames written to %s", aw.frames, aw.filename)

	return nil
}

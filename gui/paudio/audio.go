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

// Package paudio plays rendered audio through PortAudio. Samples are rendered
// directly inside the PortAudio stream callback.
package paudio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/gui"
	"github.com/jetsetilly/gopokey/hardware/mix"
	"github.com/jetsetilly/gopokey/logger"
)

// the number of frames requested in each callback
const framesPerBuffer = 512

// Audio outputs sound using PortAudio.
type Audio struct {
	stream *portaudio.Stream
	rate   float64

	cb *callback
}

// callback renders frames into the interleaved output buffer supplied by
// PortAudio
type callback struct {
	src    gui.Source
	frames *gui.Frames
}

func (cb *callback) process(out []float32) {
	n := len(out) / 2
	l, r := cb.frames.Render(cb.src, n)
	if r == nil {
		r = l
	}

	// samples are passed through the same clipping stage as the integer
	// backends so that all backends sound the same
	for i := range n {
		out[i*2] = float32(mix.Sample(l[i])) / 32768
		out[i*2+1] = float32(mix.Sample(r[i])) / 32768
	}
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(rate int, stereo bool, src gui.Source) (*Audio, error) {
	err := portaudio.Initialize()
	if err != nil {
		return nil, curated.Errorf(gui.BackendError, gui.BackendPortAudio, err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		portaudio.Terminate()
		return nil, curated.Errorf(gui.BackendError, gui.BackendPortAudio, err)
	}
	if host.DefaultOutputDevice == nil {
		portaudio.Terminate()
		return nil, curated.Errorf(gui.BackendError, gui.BackendPortAudio, "no output device")
	}

	parameters := portaudio.LowLatencyParameters(nil, host.DefaultOutputDevice)
	parameters.SampleRate = float64(rate)
	parameters.Output.Channels = 2
	parameters.FramesPerBuffer = framesPerBuffer

	aud := &Audio{
		rate: parameters.SampleRate,
		cb: &callback{
			src:    src,
			frames: gui.NewFrames(framesPerBuffer, stereo),
		},
	}

	aud.stream, err = portaudio.OpenStream(parameters, aud.cb.process)
	if err != nil {
		portaudio.Terminate()
		return nil, curated.Errorf(gui.BackendError, gui.BackendPortAudio, err)
	}

	logger.Logf(logger.Allow, "paudio", "device: %s", host.DefaultOutputDevice.Name)
	logger.Logf(logger.Allow, "paudio", "output latency: %v", parameters.Output.Latency)

	return aud, nil
}

func (aud *Audio) String() string {
	return fmt.Sprintf("portaudio (%.0fHz)", aud.rate)
}

// Start implements the gui.Backend interface.
func (aud *Audio) Start() error {
	if err := aud.stream.Start(); err != nil {
		return curated.Errorf(gui.BackendError, gui.BackendPortAudio, err)
	}
	return nil
}

// End implements the gui.Backend interface.
func (aud *Audio) End() error {
	defer portaudio.Terminate()

	if err := aud.stream.Stop(); err != nil {
		logger.Log(logger.Allow, "paudio", err)
	}
	if err := aud.stream.Close(); err != nil {
		return curated.Errorf(gui.BackendError, gui.BackendPortAudio, err)
	}
	return nil
}

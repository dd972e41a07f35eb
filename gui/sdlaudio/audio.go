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

// Package sdlaudio plays rendered audio through an SDL audio device. Samples
// are pushed to the device queue by a service goroutine which keeps the queue
// topped up to a fixed length.
package sdlaudio

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/gui"
	"github.com/jetsetilly/gopokey/hardware/mix"
	"github.com/jetsetilly/gopokey/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of frames rendered for each push to the device queue. the
// precise value is not critical
const bufferLength = 512

// the number of buffers that the service goroutine tries to keep in the
// queue. a shorter queue reduces latency but risks underflow if the service
// goroutine is delayed
const queuedBuffers = 3

// each frame is two channels of 16bit samples
const bytesPerFrame = 4

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	src    gui.Source
	frames *gui.Frames
	data   []byte

	// the number of bytes to keep queued
	target uint32

	// service goroutine control
	started bool
	quit    chan bool
	done    chan bool

	underflows int
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(rate int, stereo bool, src gui.Source) (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(gui.BackendError, gui.BackendSDL, err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	aud := &Audio{
		src:    src,
		frames: gui.NewFrames(bufferLength, stereo),
		data:   make([]byte, bufferLength*bytesPerFrame),
		target: bufferLength * bytesPerFrame * queuedBuffers,
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	// no changes to the spec are allowed. the engine renders at exactly the
	// requested rate
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf(gui.BackendError, gui.BackendSDL, err)
	}

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "format: %d", aud.spec.Format)
	logger.Logf(logger.Allow, "sdlaudio", "channels: %d", aud.spec.Channels)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	return aud, nil
}

func (aud *Audio) String() string {
	return fmt.Sprintf("sdl (%dHz)", aud.spec.Freq)
}

// Start implements the gui.Backend interface.
func (aud *Audio) Start() error {
	// prime the queue before unpausing so that playback does not begin with
	// an underflow
	if err := aud.fill(); err != nil {
		return curated.Errorf(gui.BackendError, gui.BackendSDL, err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	aud.started = true
	go aud.service()

	return nil
}

func (aud *Audio) service() {
	defer func() {
		aud.done <- true
	}()

	// check the queue twice for every buffer played
	dur := time.Duration(float64(time.Second) * bufferLength / float64(aud.spec.Freq) / 2)
	tck := time.NewTicker(dur)
	defer tck.Stop()

	for {
		select {
		case <-aud.quit:
			return
		case <-tck.C:
			if sdl.GetQueuedAudioSize(aud.id) == 0 {
				aud.underflows++
			}
			if err := aud.fill(); err != nil {
				logger.Log(logger.Allow, "sdlaudio", err)
			}
		}
	}
}

// push buffers to the device queue until the target length is reached
func (aud *Audio) fill() error {
	for sdl.GetQueuedAudioSize(aud.id) < aud.target {
		l, r := aud.frames.Render(aud.src, bufferLength)
		n := mix.InterleaveBytes(aud.data, l, r)
		if err := sdl.QueueAudio(aud.id, aud.data[:n]); err != nil {
			return err
		}
	}
	return nil
}

// End implements the gui.Backend interface.
func (aud *Audio) End() error {
	if aud.started {
		aud.quit <- true
		<-aud.done
		aud.started = false
	}

	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)

	if aud.underflows > 0 {
		logger.Logf(logger.Allow, "sdlaudio", "%d underflows", aud.underflows)
	}

	return nil
}

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

// Package otoaudio plays rendered audio through the oto library. The oto
// player pulls samples through the io.Reader interface.
package otoaudio

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/gui"
	"github.com/jetsetilly/gopokey/hardware/mix"
	"github.com/jetsetilly/gopokey/logger"
)

// each frame is two channels of 16bit samples
const bytesPerFrame = 4

// the length of the buffer used by the oto player
const bufferDuration = 40 * time.Millisecond

// Audio outputs sound using oto.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
	rate   int
}

// reader implements the io.Reader interface for the oto player
type reader struct {
	src    gui.Source
	frames *gui.Frames
}

// Read implements the io.Reader interface.
func (r *reader) Read(buf []byte) (int, error) {
	n := len(buf) / bytesPerFrame
	if n == 0 {
		return 0, nil
	}
	left, right := r.frames.Render(r.src, n)
	return mix.InterleaveBytes(buf, left, right), nil
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(rate int, stereo bool, src gui.Source) (*Audio, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferDuration,
	})
	if err != nil {
		return nil, curated.Errorf(gui.BackendError, gui.BackendOto, err)
	}

	<-ready

	aud := &Audio{
		ctx:  ctx,
		rate: rate,
	}

	aud.player = ctx.NewPlayer(&reader{
		src:    src,
		frames: gui.NewFrames(int(bufferDuration.Seconds()*float64(rate)), stereo),
	})

	logger.Logf(logger.Allow, "otoaudio", "buffer duration: %v", bufferDuration)

	return aud, nil
}

func (aud *Audio) String() string {
	return fmt.Sprintf("oto (%dHz)", aud.rate)
}

// Start implements the gui.Backend interface.
func (aud *Audio) Start() error {
	aud.player.Play()
	return nil
}

// End implements the gui.Backend interface.
func (aud *Audio) End() error {
	aud.player.Pause()
	if err := aud.player.Close(); err != nil {
		return curated.Errorf(gui.BackendError, gui.BackendOto, err)
	}
	if err := aud.ctx.Suspend(); err != nil {
		return curated.Errorf(gui.BackendError, gui.BackendOto, err)
	}
	return nil
}

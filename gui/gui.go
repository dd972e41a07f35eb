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

// Package gui contains the audio output backends. Each backend pulls rendered
// samples from a Source on its own goroutine, or on a goroutine owned by the
// audio driver, and passes them to the host audio device.
//
// All backends open the device with two channels of 16bit samples (or 32bit
// float samples for PortAudio). When the source is mono the left channel is
// duplicated.
package gui

// Source is the provider of rendered audio. The Render() function of the
// hardware.Engine type satisfies this interface.
type Source interface {
	// Render fills the buffers with the next samples. The right buffer is
	// nil if the backend wants a single mixed channel.
	Render(left []float32, right []float32)
}

// Backend is implemented by all audio output backends.
type Backend interface {
	// Start playback. Rendering begins immediately.
	Start() error

	// End playback and release the audio device.
	End() error

	String() string
}

// Sentinal errors returned by backends.
const (
	UnsupportedBackend = "gui: unsupported audio backend (%s)"
	BackendError       = "gui: %s: %v"
)

// List of backend names as they are used by the command line.
const (
	BackendSDL       = "sdl"
	BackendPortAudio = "portaudio"
	BackendOto       = "oto"
)

// Backends is the list of all backend names.
var Backends = []string{BackendSDL, BackendPortAudio, BackendOto}

// Frames holds the buffers used when rendering from a Source.
type Frames struct {
	Left  []float32
	Right []float32

	stereo bool
}

// NewFrames is the preferred method of initialisation for the Frames type.
// The right buffer is only allocated if stereo is true.
func NewFrames(length int, stereo bool) *Frames {
	f := &Frames{stereo: stereo}
	f.resize(length)
	return f
}

func (f *Frames) resize(length int) {
	f.Left = make([]float32, length)
	if f.stereo {
		f.Right = make([]float32, length)
	}
}

// Render the specified number of frames from the Source. The buffers are
// grown if necessary. The returned slices are only valid until the next call
// to Render().
func (f *Frames) Render(src Source, length int) ([]float32, []float32) {
	if length > len(f.Left) {
		f.resize(length)
	}
	l := f.Left[:length]
	var r []float32
	if f.stereo {
		r = f.Right[:length]
	}
	src.Render(l, r)
	return l, r
}

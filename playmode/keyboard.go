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

package playmode

import (
	"io"
	"os"

	"github.com/jetsetilly/gopokey/curated"
	"golang.org/x/term"
)

// Key is a key press that has meaning during playback.
type Key int

// List of valid Key values.
const (
	KeyNone Key = iota
	KeyQuit
	KeyPause
	KeyRestart
	KeyVolumeUp
	KeyVolumeDown
	KeyMixing
	KeyConsoleSpeaker
	KeyStats
)

// NotTerminal is returned by NewKeyboard() if the file is not a terminal.
const NotTerminal = "keyboard: not a terminal"

// translate a single byte read from the terminal into a Key
func translateKey(b byte) Key {
	switch b {
	case 'q', 'Q', 0x03, 0x1b:
		// 0x03 is ctrl-c, which is not turned into a signal in raw mode
		return KeyQuit
	case ' ', 'p', 'P':
		return KeyPause
	case 'r', 'R':
		return KeyRestart
	case '+', '=':
		return KeyVolumeUp
	case '-', '_':
		return KeyVolumeDown
	case 'm', 'M':
		return KeyMixing
	case 'c', 'C':
		return KeyConsoleSpeaker
	case 's', 'S':
		return KeyStats
	}
	return KeyNone
}

// Keyboard reads key presses from a terminal in raw mode.
type Keyboard struct {
	fd    int
	state *term.State
	keys  chan Key
}

// NewKeyboard puts the terminal into raw mode and starts reading key presses.
// Restore() must be called to return the terminal to its previous state.
func NewKeyboard(f *os.File) (*Keyboard, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, curated.Errorf(NotTerminal)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, curated.Errorf("keyboard: %v", err)
	}

	kb := &Keyboard{
		fd:    fd,
		state: state,
		keys:  make(chan Key, 16),
	}

	go kb.read(f)

	return kb, nil
}

func (kb *Keyboard) read(r io.Reader) {
	b := make([]byte, 1)
	for {
		if _, err := r.Read(b); err != nil {
			close(kb.keys)
			return
		}
		if k := translateKey(b[0]); k != KeyNone {
			select {
			case kb.keys <- k:
			default:
			}
		}
	}
}

// Keys returns the channel on which key presses are sent.
func (kb *Keyboard) Keys() <-chan Key {
	return kb.keys
}

// Restore the terminal to the state it was in before NewKeyboard() was
// called.
func (kb *Keyboard) Restore() error {
	return term.Restore(kb.fd, kb.state)
}

// RawWriter converts line endings for a terminal in raw mode.
type RawWriter struct {
	w io.Writer
}

// NewRawWriter is the preferred method of initialisation for the RawWriter
// type.
func NewRawWriter(w io.Writer) *RawWriter {
	return &RawWriter{w: w}
}

// Write implements the io.Writer interface.
func (rw *RawWriter) Write(p []byte) (int, error) {
	var b []byte
	for i, c := range p {
		if c == '\n' && (i == 0 || p[i-1] != '\r') {
			b = append(b, '\r')
		}
		b = append(b, c)
	}
	if _, err := rw.w.Write(b); err != nil {
		return 0, err
	}
	return len(p), nil
}

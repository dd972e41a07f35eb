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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopokey/hardware/mix"
)

// the length of the buffer isn't really important. that said, it needs to be
// at least sha1.Size bytes in length
const audioBufferLength = 4096 + sha1.Size

// to allow digests of audio streams longer than audioBufferLength, the
// previous digest value is stuffed into the first part of the buffer and is
// included when the next digest value is created
const audioBufferStart = sha1.Size

// Audio implements the playmode.SampleWriter interface. Samples are
// converted to 16-bit values before hashing so that the digest matches what
// would be written to a WAV file.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	frames   int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]uint8, audioBufferLength),
	}
	dig.bufferCt = audioBufferStart
	return dig
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Any partially filled buffer is
// included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = audioBufferStart
	dig.frames = 0
}

// Frames returns the number of frames hashed since the last reset.
func (dig *Audio) Frames() int {
	return dig.frames
}

// Write implements the playmode.SampleWriter interface. The right channel is
// optional.
func (dig *Audio) Write(left []float32, right []float32) error {
	for i := range left {
		dig.add(mix.Sample(left[i]))
		if right != nil {
			dig.add(mix.Sample(right[i]))
		}
	}
	dig.frames += len(left)
	return nil
}

func (dig *Audio) add(v int16) {
	binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(v))
	dig.bufferCt += 2
	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

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
	"bufio"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/logger"
)

// the number of events that can be waiting to be written
const queueSize = 65536

// how often the writer goroutine empties the queue
const writeInterval = 10 * time.Millisecond

// Recorder writes register writes to a capture file. It implements the
// hardware.Tap interface.
//
// Events are queued by RegisterWrite() and written to the file by a separate
// goroutine. If the queue fills up events are lost and the number of lost
// events is reported by End().
type Recorder struct {
	output io.WriteCloser
	w      *bufio.Writer

	queue    *intake.Ring[intake.Event]
	overflow atomic.Uint64
	written  int

	quit     chan bool
	finished chan error
}

// NewRecorder creates a new Recorder that writes to the named file. The file
// is created or truncated.
func NewRecorder(filename string, rate int) (*Recorder, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}
	return NewRecorderWriter(f, rate)
}

// NewRecorderWriter creates a new Recorder that writes to the io.WriteCloser.
// The output is closed by End().
func NewRecorderWriter(output io.WriteCloser, rate int) (*Recorder, error) {
	rec := &Recorder{
		output:   output,
		w:        bufio.NewWriter(output),
		queue:    intake.NewRing[intake.Event](queueSize),
		quit:     make(chan bool),
		finished: make(chan error, 1),
	}

	if err := writeHeader(rec.w, rate); err != nil {
		output.Close()
		return nil, err
	}

	go rec.service()

	return rec, nil
}

// RegisterWrite implements the hardware.Tap interface.
func (rec *Recorder) RegisterWrite(e intake.Event) {
	if !rec.queue.Push(e) {
		rec.overflow.Add(1)
	}
}

func (rec *Recorder) service() {
	tick := time.NewTicker(writeInterval)
	defer tick.Stop()

	for {
		select {
		case <-rec.quit:
			rec.finished <- rec.drain()
			return
		case <-tick.C:
			if err := rec.drain(); err != nil {
				rec.finished <- err
				<-rec.quit
				return
			}
		}
	}
}

// write everything in the queue to the buffered writer
func (rec *Recorder) drain() error {
	for {
		e, ok := rec.queue.Pop()
		if !ok {
			return nil
		}
		if _, err := rec.w.WriteString(formatEvent(e)); err != nil {
			return curated.Errorf("recorder: %v", err)
		}
		rec.written++
	}
}

// End the recording. Outstanding events are written and the output is
// closed. The Recorder should not be used after End() has been called.
func (rec *Recorder) End() error {
	rec.quit <- true
	err := <-rec.finished

	if err == nil {
		if ferr := rec.w.Flush(); ferr != nil {
			err = curated.Errorf("recorder: %v", ferr)
		}
	}

	if cerr := rec.output.Close(); cerr != nil && err == nil {
		err = curated.Errorf("recorder: %v", cerr)
	}

	if n := rec.overflow.Load(); n > 0 {
		logger.Logf(logger.Allow, "recorder", "%d events lost", n)
	}
	logger.Logf(logger.Allow, "recorder", "%d events written", rec.written)

	return err
}

// Lost returns the number of events that have been lost because the queue
// was full.
func (rec *Recorder) Lost() uint64 {
	return rec.overflow.Load()
}

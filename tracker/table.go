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

package tracker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// column widths of the table
const (
	widthTime       = 11
	widthChannel    = 6
	widthRegisters  = 8
	widthDistortion = 12
	widthFrequency  = 11
	widthNote       = 5
)

// Table formats tracker entries for display on a terminal.
type Table struct {
	header   lipgloss.Style
	time     lipgloss.Style
	channel  [2]lipgloss.Style
	control  lipgloss.Style
	value    lipgloss.Style
	note     lipgloss.Style
	silent   lipgloss.Style
	lastTime float64
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		time:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		channel: [2]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		},
		control: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		value:   lipgloss.NewStyle(),
		note:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		silent:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}

// Header returns the table heading.
func (tb *Table) Header() string {
	s := fmt.Sprintf("%-*s%-*s%-*s%-*s%-*s%-*s",
		widthTime, "time",
		widthChannel, "chan",
		widthRegisters, "f  c",
		widthDistortion, "distortion",
		widthFrequency, "freq",
		widthNote, "note")
	return tb.header.Render(s)
}

// Row formats a single entry.
func (tb *Table) Row(e Entry) string {
	var s strings.Builder

	s.WriteString(tb.time.Width(widthTime).Render(fmt.Sprintf("%.4f", e.Time)))

	if e.Channel < 0 {
		s.WriteString(tb.control.Width(widthChannel).Render(fmt.Sprintf("%c ctl", sideLabel(e.Side))))
		s.WriteString(tb.value.Width(widthRegisters).Render(fmt.Sprintf("%02x", e.Registers.AUDCTL)))
		s.WriteString(tb.control.Render(e.Distortion))
		return s.String()
	}

	s.WriteString(tb.channel[e.Side&0x01].Width(widthChannel).Render(fmt.Sprintf("%c %d", sideLabel(e.Side), e.Channel+1)))
	s.WriteString(tb.value.Width(widthRegisters).Render(fmt.Sprintf("%02x %02x", e.Registers.AUDF[e.Channel], e.Registers.AUDC[e.Channel])))

	if e.Registers.Volume(e.Channel) == 0 {
		s.WriteString(tb.silent.Width(widthDistortion).Render(e.Distortion))
		s.WriteString(tb.silent.Width(widthFrequency).Render("silent"))
		return s.String()
	}

	s.WriteString(tb.value.Width(widthDistortion).Render(e.Distortion))
	if e.Frequency > 0 {
		s.WriteString(tb.value.Width(widthFrequency).Render(fmt.Sprintf("%.1fHz", e.Frequency)))
	} else {
		s.WriteString(tb.value.Width(widthFrequency).Render("-"))
	}
	s.WriteString(tb.note.Width(widthNote).Render(string(e.MusicalNote)))

	return s.String()
}

// Write entries to the io.Writer, one row per line. Entries with a time
// earlier than the last entry written by a previous call are skipped.
func (tb *Table) Write(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if e.Time < tb.lastTime {
			continue
		}
		tb.lastTime = e.Time
		if _, err := io.WriteString(w, tb.Row(e)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func sideLabel(side int) rune {
	if side == 0 {
		return 'L'
	}
	return 'R'
}

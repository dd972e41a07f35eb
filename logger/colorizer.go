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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is emphasised and any detail that mentions an error is drawn in red.
type Colorizer struct {
	out    io.Writer
	tag    lipgloss.Style
	detail lipgloss.Style
	fault  lipgloss.Style
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:    out,
		tag:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		detail: lipgloss.NewStyle(),
		fault:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var s strings.Builder

	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			s.WriteString(c.detail.Render(l))
			s.WriteString("\n")
			continue
		}

		s.WriteString(c.tag.Render(tag))
		s.WriteString(": ")
		if strings.Contains(strings.ToLower(detail), "error") {
			s.WriteString(c.fault.Render(detail))
		} else {
			s.WriteString(c.detail.Render(detail))
		}
		s.WriteString("\n")
	}

	_, err := io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}

	// report the length of the uncoloured input as required by io.Writer
	return len(p), nil
}

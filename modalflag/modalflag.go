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

package modalflag

import (
	"flag"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/gopokey/curated"
)

const modeSeparator = "/"

// Sentinal errors returned by Parse() and ExpectArgs().
const (
	InvalidChoice = "modalflag: -%s must be one of %s (not %s)"
	TooFewArgs    = "modalflag: %s: too few arguments"
	TooManyArgs   = "modalflag: %s: too many arguments"
)

// a string flag with a limited set of valid values
type choice struct {
	name    string
	value   *string
	choices []string
}

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or help messages will not
// be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// whether Parse() has been called since NewArgs() or NewMode()
	parsed bool

	// the flag set for the current mode. a new flag set is created on every
	// call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// sub-modes for the current mode and their descriptions
	subModes     []string
	descriptions map[string]string

	choices []choice

	// the series of sub-modes selected by calls to Parse(). never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.descriptions = make(map[string]string)
	md.choices = md.choices[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
	md.additionalHelp = ""
}

// AdditionalHelp adds help text to be displayed after the regular help on
// available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not been called since a call to
// NewArgs() or NewMode(). A Modes struct is considered to be Parsed() even if
// Parse() resulted in an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were specified then
	// the Mode() function will return the selected mode.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Parse the current layer of arguments. Help messages are printed to the
// Output automatically and ParseHelp returned.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.descriptions, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, curated.Errorf("modalflag: %v", err)
	}

	for _, c := range md.choices {
		v := strings.ToLower(*c.value)
		if !slices.Contains(c.choices, v) {
			return ParseError, curated.Errorf(InvalidChoice, c.name, strings.Join(c.choices, "|"), *c.value)
		}
		*c.value = v
	}

	// the flags for this layer have been consumed
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		if slices.Contains(md.subModes, arg) {
			mode = arg
			md.argsIdx++
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument that isn't a flag or a selected
// sub-mode. Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// ExpectArgs returns an error if the number of remaining arguments is not
// between min and max inclusive.
func (md *Modes) ExpectArgs(min int, max int) error {
	n := len(md.RemainingArgs())
	if n < min {
		return curated.Errorf(TooFewArgs, md.Path())
	}
	if n > max {
		return curated.Errorf(TooManyArgs, md.Path())
	}
	return nil
}

// AddSubModes to list of sub-modes for the next call to Parse(). The first
// sub-mode in the list is the default sub-mode.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// DescribeSubMode adds a one line description of a sub-mode for the help
// message.
func (md *Modes) DescribeSubMode(submode string, description string) {
	md.descriptions[strings.ToUpper(submode)] = description
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddChoice adds a string flag that can only be one of the listed choices.
// Comparison is case insensitive and the value is converted to lower case by
// Parse().
func (md *Modes) AddChoice(name string, value string, choices []string, usage string) *string {
	c := choice{
		name:  name,
		value: md.flags.String(name, value, usage),
	}
	for _, s := range choices {
		c.choices = append(c.choices, strings.ToLower(s))
	}
	md.choices = append(md.choices, c)
	return c.value
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

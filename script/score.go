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

// Package script runs Lua scores. A score is a Lua program that describes a
// sequence of register writes by calling the write() function. For example:
//
//	-- one second of middle A on channel one
//	write(0, 0x3f, 0.0)
//	write(1, 0xa8, 0.0)
//	write(1, 0xa0, 1.0)
//
// The following globals are available to the score:
//
//	write(register, value, time)	queue a register write. the time is in seconds
//	rate				the output rate in Hz
//	log(message)			add an entry to the central log
//
// Only the base, table, string and math libraries are opened.
package script

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/jetsetilly/gopokey/curated"
	"github.com/jetsetilly/gopokey/hardware/intake"
	"github.com/jetsetilly/gopokey/logger"
	"github.com/jetsetilly/gopokey/recorder"

	lua "github.com/yuin/gopher-lua"
)

// Sentinal errors.
const (
	ScriptError = "script: %v"
	ScoreEmpty  = "script: %s: no register writes"
)

// Extension is the file extension that identifies a Lua score.
const Extension = ".lua"

// IsScore returns true if the filename looks like a Lua score.
func IsScore(filename string) bool {
	return filepath.Ext(filename) == Extension
}

// the largest valid register index. the low nibble selects the register and
// bit 4 selects the chip
const maxRegister = 0x1f

// Score is the result of running a Lua score.
type Score struct {
	name   string
	rate   int
	events []intake.Event
}

// LoadScore reads and runs the named Lua file.
func LoadScore(ctx context.Context, filename string, rate int) (*Score, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}
	return RunScore(ctx, filename, string(src), rate)
}

// RunScore runs Lua source code. The name is used in error messages and log
// entries. The context can be used to stop a score that does not terminate.
func RunScore(ctx context.Context, name string, src string, rate int) (*Score, error) {
	sc := &Score{
		name: name,
		rate: rate,
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	// the base library includes functions that can read files
	for _, f := range []string{"dofile", "loadfile", "require"} {
		L.SetGlobal(f, lua.LNil)
	}

	L.SetGlobal("write", L.NewFunction(sc.write))
	L.SetGlobal("log", L.NewFunction(sc.log))
	L.SetGlobal("rate", lua.LNumber(rate))

	L.SetContext(ctx)

	fn, err := L.LoadString(src)
	if err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}

	if len(sc.events) == 0 {
		return nil, curated.Errorf(ScoreEmpty, name)
	}

	// writes can be made in any order by the score. writes with the same
	// time keep the order in which they were made
	slices.SortStableFunc(sc.events, func(a, b intake.Event) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})

	logger.Logf(logger.Allow, "script", "%s: %d register writes", name, len(sc.events))

	return sc, nil
}

func (sc *Score) write(L *lua.LState) int {
	reg := L.CheckInt(1)
	if reg < 0 || reg > maxRegister {
		L.ArgError(1, "register out of range")
	}
	val := L.CheckInt(2)
	if val < 0 || val > 255 {
		L.ArgError(2, "value out of range")
	}
	t := float64(L.CheckNumber(3))
	if math.IsNaN(t) || math.IsInf(t, 0) {
		L.ArgError(3, "time is not a finite number")
	}
	if t < 0 {
		L.ArgError(3, "negative time")
	}

	sc.events = append(sc.events, intake.Event{
		Register: uint8(reg),
		Value:    uint8(val),
		Time:     t,
	})

	return 0
}

func (sc *Score) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

// Events returns the register writes in time order.
func (sc *Score) Events() []intake.Event {
	return sc.events
}

// Playback converts the score to a recorder.Playback so that it can be used
// wherever a capture file can be used.
func (sc *Score) Playback() *recorder.Playback {
	return recorder.NewPlaybackFromEvents(sc.name, sc.rate, sc.events)
}

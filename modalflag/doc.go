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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, and sub-modes, each with their own set of
// flags.
//
// Arguments are supplied with NewArgs() and then Parse() is called with no
// arguments. Flags are added before the call to Parse(), in the same way as
// with the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	statsview := md.AddBool("statsview", false, "run stats server")
//	md.AddSubModes("RENDER", "PLAY", "VERSION")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first argument after the flags is compared against the list of
// sub-modes. If it matches, the mode is selected and the argument is removed
// from the list of remaining arguments. If it doesn't match then the first
// sub-mode in the list is selected. Comparisons are case insensitive.
//
// Flags for the selected mode are added after a call to NewMode() and another
// call to Parse():
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		rate := md.AddInt("rate", 48000, "output rate")
//		backend := md.AddChoice("backend", "sdl", []string{"sdl", "oto"}, "audio backend")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		if err := md.ExpectArgs(1, 1); err != nil {
//			return err
//		}
//		render(md.GetArg(0), *rate, *backend)
//	}
//
// Modes can be nested as deeply as required. The Path() function returns the
// list of modes that have been selected.
package modalflag

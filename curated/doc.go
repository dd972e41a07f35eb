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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what differentiates
// one curated error from another, so packages that want their callers to test
// for a specific error export the pattern as a constant. For example:
//
//	const UnsupportedRate = "filter: no decimation design for %d Hz"
//
//	err := curated.Errorf(UnsupportedRate, 22050)
//
//	if curated.Is(err, UnsupportedRate) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("engine: %v", err)
//
//	if curated.Has(f, UnsupportedRate) {
//		fmt.Println("true")
//	}
//
// In this example Is(f, UnsupportedRate) would be false because the pattern
// of f is "engine: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'curated'
// and false if the error is 'uncurated'. We can think of the difference as
// being 'expected' and 'unexpected' errors.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means that a function can wrap an error with
// its package name without worrying whether the error was already prefixed
// that way:
//
//	err := curated.Errorf("recorder: %v", curated.Errorf("recorder: %v", io.EOF))
//	fmt.Println(err) // "recorder: EOF"
package curated

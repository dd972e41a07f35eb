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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. The bool and error types are supported. It is
// worth describing how these functions handle the nil type because it is not
// obvious. The nil type is considered a success and consequently will cause
// ExpectFailure to fail and ExpectSuccess to succeed. This is because of how
// errors usually work (nil to indicate no error).
//
// ExpectEquality and ExpectInequality compare values of the same comparable
// type. ExpectApproximate compares numeric values within a tolerance, which is
// useful when testing the output of filters and mixers.
//
// The Demand functions are the same as the Expect functions except that a
// failure is fatal to the test.
//
// The RingWriter type implements the io.Writer interface and can be used to
// capture the most recent output of a component under test.
package test

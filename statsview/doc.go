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

// Package statsview serves runtime statistics over HTTP while audio is
// playing. It is useful for watching the allocation behaviour of the render
// loop and the garbage collector's effect on audio underflows.
//
// The package is only functional when built with the statsview build tag:
//
//	go build -tags statsview
//
// Without the tag Available() returns false and Launch() does nothing.
//
// After launch the statistics are viewable at:
//
//	localhost:12601/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12601/debug/pprof/
package statsview

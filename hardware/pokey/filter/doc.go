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

// Package filter converts the output of the pokey emulation, running at the
// machine clock rate, to a sample rate suitable for playback. The
// conversion is a decimation: samples are low pass filtered to remove
// everything that would alias in the output band and then only every Mth
// sample is kept.
//
// Each supported output rate has a design. A design specifies the decimation
// ratio and how to build the filter. For 48kHz the ratio is 37 and a single
// long FIR filter is used. The ratios for 44.1kHz (40) and 56kHz (32) allow a
// cascade of efficient half band filters, each decimating by two, followed by
// a final FIR filter.
//
// Output rates without a design are not supported and Lookup() returns an
// error. Filter coefficients are fixed at compile time.
//
// The DCBlocker type removes the DC offset from the filtered signal. The pokey
// output is always positive and the high pass behaviour of the analogue output
// stage is modelled by the blocker.
package filter

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

package pokey

import (
	"testing"

	"github.com/jetsetilly/gopokey/test"
)

func TestPolynomialsLength(t *testing.T) {
	// maximal-length generators. an N-bit generator has a period of 2^N-1
	test.ExpectEquality(t, len(poly4), 15)
	test.ExpectEquality(t, len(poly5), 31)
	test.ExpectEquality(t, len(poly9), 511)
	test.ExpectEquality(t, len(poly17), 131071)
}

func ones(p []uint8) int {
	var ct int
	for _, v := range p {
		if v == 1 {
			ct++
		}
	}
	return ct
}

func TestPolynomialsBalance(t *testing.T) {
	// the 4 and 5 bit counters never reach the all-ones state so there is one
	// more 0 bit than 1 bit. the 9 and 17 bit counters never reach the
	// all-zero state so there is one more 1 bit than 0 bit
	test.ExpectEquality(t, ones(poly4), 7, "poly4")
	test.ExpectEquality(t, ones(poly5), 15, "poly5")
	test.ExpectEquality(t, ones(poly9), 256, "poly9")
	test.ExpectEquality(t, ones(poly17), 65536, "poly17")
}

func TestPolynomialsWindows(t *testing.T) {
	// every window of N consecutive bits, wrapping at the end of the sequence,
	// is a different value. only the value of the state that the counter
	// never reaches is missing
	windows := func(t *testing.T, p []uint8, bits int, missing int) {
		t.Helper()

		seen := make(map[int]bool)
		for i := range p {
			var w int
			for j := range bits {
				w |= int(p[(i+j)%len(p)]) << j
			}
			test.ExpectInequality(t, w, missing, bits)
			test.ExpectEquality(t, seen[w], false, bits)
			seen[w] = true
		}
		test.ExpectEquality(t, len(seen), (1<<bits)-1, bits)
	}

	windows(t, poly4, 4, 0x0f)
	windows(t, poly5, 5, 0x1f)
	windows(t, poly9, 9, 0)
}

func TestPolynomialsPattern(t *testing.T) {
	// first period of the 4 and 5 bit counters, bit for bit
	expected4 := []uint8{0, 0, 1, 1, 1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0}
	test.DemandEquality(t, len(poly4), len(expected4))
	for i := range expected4 {
		test.ExpectEquality(t, poly4[i], expected4[i], "poly4", i)
	}

	expected5 := []uint8{0, 0, 1, 1, 1, 0, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0}
	test.DemandEquality(t, len(poly5), len(expected5))
	for i := range expected5 {
		test.ExpectEquality(t, poly5[i], expected5[i], "poly5", i)
	}

	// the seed is the top bit so the first 1 bit is emitted after eight zero
	// bits
	for i := range 8 {
		test.ExpectEquality(t, poly9[i], 0, "poly9", i)
	}
	test.ExpectEquality(t, poly9[8], 1, "poly9")

	for i := range 16 {
		test.ExpectEquality(t, poly17[i], 0, "poly17", i)
	}
	test.ExpectEquality(t, poly17[16], 1, "poly17")
}

func TestPolynomialsUnsupported(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	_ = Generate(7)
	t.Errorf("expected panic for unsupported polynomial width")
}

// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/test"
)

func TestPatternMatching(t *testing.T) {
	e := curated.Errorf("machine: %v", "error")
	test.Equate(t, e.Error(), "machine: error")
	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, "machine: %v"), true)
	test.Equate(t, curated.Is(e, "machine: %s"), false)

	f := curated.Errorf("fatal: %v", e)
	test.Equate(t, curated.Is(f, "machine: %v"), false)
	test.Equate(t, curated.Has(f, "machine: %v"), true)
	test.Equate(t, curated.Has(f, "fatal: %v"), true)
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate parts of the message chain are folded
	e := curated.Errorf("error: %v", "an error")
	f := curated.Errorf("error: %v", e)
	test.Equate(t, f.Error(), "error: an error")
}

func TestUncurated(t *testing.T) {
	test.Equate(t, curated.IsAny(nil), false)
	test.Equate(t, curated.Is(nil, "whatever %v"), false)
	test.Equate(t, curated.Has(nil, "whatever %v"), false)
}

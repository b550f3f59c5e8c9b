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

package video

import (
	"strings"

	"github.com/gopher8/gopher8/curated"
)

// Policy controls how sprite coordinates are treated at the display edges.
type Policy int

// The two coordinate policies. Clamp is the default.
const (
	// pixels at or past the display edge are not drawn
	Clamp Policy = iota

	// coordinates are taken modulo the display dimensions
	Wrap
)

func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	}
	return ""
}

// UnknownPolicy is the error pattern returned by ParsePolicy.
const UnknownPolicy = "video: unknown coordinate policy (%s)"

// ParsePolicy converts a policy name, as it would appear on the command
// line, to a Policy value.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "clamp":
		return Clamp, nil
	case "wrap":
		return Wrap, nil
	}
	return Clamp, curated.Errorf(UnknownPolicy, s)
}

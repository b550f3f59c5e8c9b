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

// Dimensions of the display buffer in pixels.
const (
	Width  = 64
	Height = 32
)

// Display is the monochrome pixel buffer. Each cell holds 0 or 1.
type Display struct {
	policy Policy
	pixels [Height][Width]uint8

	// whether the buffer has changed since the last call to ResetDirty()
	dirty bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(policy Policy) *Display {
	return &Display{policy: policy}
}

// Policy returns the coordinate policy the display was created with.
func (dsp *Display) Policy() Policy {
	return dsp.policy
}

// Clear zeroes every cell in the buffer.
func (dsp *Display) Clear() {
	for y := range dsp.pixels {
		for x := range dsp.pixels[y] {
			dsp.pixels[y][x] = 0
		}
	}
	dsp.dirty = true
}

// Pixel returns the cell at the specified coordinate. Out of range
// coordinates return zero, which is convenient for renderers.
func (dsp *Display) Pixel(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return dsp.pixels[y][x]
}

// DrawSprite XORs the sprite data into the buffer at the coordinate given by
// ox and oy. Each byte of data is one row of eight pixels, most significant
// bit leftmost. Returns true if any set pixel was unset by the draw.
//
// How coordinates beyond the display edge are treated depends on the
// coordinate policy. Under Wrap the coordinate is taken modulo the display
// dimensions. Under Clamp the pixel is simply not drawn; pixels before the
// edge are unaffected.
func (dsp *Display) DrawSprite(ox, oy uint8, data []uint8) bool {
	collision := false

	for r, d := range data {
		for c := 0; c < 8; c++ {
			if d&(0x80>>c) == 0 {
				continue
			}

			x := int(ox) + c
			y := int(oy) + r

			if dsp.policy == Wrap {
				x %= Width
				y %= Height
			} else if x >= Width || y >= Height {
				continue
			}

			if dsp.pixels[y][x] == 1 {
				collision = true
			}
			dsp.pixels[y][x] ^= 1
		}
	}

	dsp.dirty = true

	return collision
}

// Dirty returns true if the buffer may have changed since the last call to
// ResetDirty().
func (dsp *Display) Dirty() bool {
	return dsp.dirty
}

// ResetDirty acknowledges the current state of the buffer. Called by the
// emulation once registered renderers have seen the frame.
func (dsp *Display) ResetDirty() {
	dsp.dirty = false
}

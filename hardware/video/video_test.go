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

package video_test

import (
	"testing"

	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/test"
)

func TestXorAndCollision(t *testing.T) {
	dsp := video.NewDisplay(video.Clamp)

	// single row, all eight pixels set
	collision := dsp.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, collision, false)
	for x := 0; x < 8; x++ {
		test.Equate(t, dsp.Pixel(x, 0), 1)
	}
	test.Equate(t, dsp.Pixel(8, 0), 0)

	// drawing the same sprite again erases it and reports the collision
	collision = dsp.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, collision, true)
	for x := 0; x < 8; x++ {
		test.Equate(t, dsp.Pixel(x, 0), 0)
	}

	// overlap of a single pixel is still a collision
	_ = dsp.DrawSprite(0, 0, []uint8{0x80})
	collision = dsp.DrawSprite(7, 0, []uint8{0x80})
	test.Equate(t, collision, false)
	collision = dsp.DrawSprite(0, 0, []uint8{0x81})
	test.Equate(t, collision, true)
}

func TestClampPolicy(t *testing.T) {
	dsp := video.NewDisplay(video.Clamp)

	// drawing at the far corner. only the first pixel of the row is on
	// screen, the rest fall off the right hand edge and are not drawn
	collision := dsp.DrawSprite(video.Width-1, video.Height-1, []uint8{0xff, 0xff})
	test.Equate(t, collision, false)
	test.Equate(t, dsp.Pixel(video.Width-1, video.Height-1), 1)

	// nothing wrapped around to the left column or the top row
	for y := 0; y < video.Height; y++ {
		test.Equate(t, dsp.Pixel(0, y), 0)
	}
	for x := 0; x < video.Width-1; x++ {
		test.Equate(t, dsp.Pixel(x, video.Height-1), 0)
	}
}

func TestWrapPolicy(t *testing.T) {
	dsp := video.NewDisplay(video.Wrap)

	collision := dsp.DrawSprite(video.Width-1, video.Height-1, []uint8{0xc0, 0xc0})
	test.Equate(t, collision, false)

	// the 2x2 block wraps around both edges
	test.Equate(t, dsp.Pixel(video.Width-1, video.Height-1), 1)
	test.Equate(t, dsp.Pixel(0, video.Height-1), 1)
	test.Equate(t, dsp.Pixel(video.Width-1, 0), 1)
	test.Equate(t, dsp.Pixel(0, 0), 1)
}

func TestClear(t *testing.T) {
	dsp := video.NewDisplay(video.Clamp)

	dsp.DrawSprite(10, 10, []uint8{0xff, 0xff, 0xff})
	dsp.Clear()

	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if dsp.Pixel(x, y) != 0 {
				t.Fatalf("pixel at %d,%d not cleared", x, y)
			}
		}
	}
}

func TestDirty(t *testing.T) {
	dsp := video.NewDisplay(video.Clamp)
	test.Equate(t, dsp.Dirty(), false)

	dsp.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, dsp.Dirty(), true)

	dsp.ResetDirty()
	test.Equate(t, dsp.Dirty(), false)

	dsp.Clear()
	test.Equate(t, dsp.Dirty(), true)
}

func TestParsePolicy(t *testing.T) {
	p, err := video.ParsePolicy("wrap")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == video.Wrap, true)

	p, err = video.ParsePolicy("CLAMP")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == video.Clamp, true)

	_, err = video.ParsePolicy("toroidal")
	test.ExpectedFailure(t, err)
}

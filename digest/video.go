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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/video"
)

// Video is an implementation of the screen.Renderer interface. It generates
// a SHA-1 value of the image every frame, chained with the value of the
// previous frame. It does not display the image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		// the head of the pixel array holds the digest of the previous frame
		pixels: make([]byte, sha1.Size+(video.Width*video.Height)),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frames = 0
}

// Frames returns the number of frames seen since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// NewFrame implements the screen.Renderer interface.
func (dig *Video) NewFrame(dsp *video.Display) error {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the pixel data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: error during new frame")
	}

	i := len(dig.digest)
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			dig.pixels[i] = dsp.Pixel(x, y)
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}

// EndRendering implements the screen.Renderer interface.
func (dig *Video) EndRendering() error {
	return nil
}

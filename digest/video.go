// This file is part of VIDCemu.
//
// VIDCemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VIDCemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VIDCemu.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/vidcemu/hardware/vidc"
)

// the number of bytes per pixel included in the digest. the alpha channel is
// always opaque and is not included
const pixelDepth = 3

// Video is an implementation of the television.PixelRenderer interface. It
// generates a SHA-1 value of the image every frame. It does not display the
// image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{
		pixels: make([]byte, sha1.Size),
	}
	return dig
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// FrameNum returns the number of the frame most recently included in the
// digest.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// Resize implements the television.PixelRenderer interface.
func (dig *Video) Resize(geom vidc.Geometry) error {
	// length of pixels array contains enough room for the previous frames
	// digest value
	l := sha1.Size + geom.Width*geom.Height*pixelDepth
	if cap(dig.pixels) >= l {
		dig.pixels = dig.pixels[:l]
	} else {
		dig.pixels = make([]byte, l)
	}
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int, img *image.RGBA) error {
	// the image may be a different size to the most recent Resize()
	b := img.Bounds()
	l := sha1.Size + b.Dx()*b.Dy()*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the screen data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := img.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			dig.pixels[i] = img.Pix[o]
			dig.pixels[i+1] = img.Pix[o+1]
			dig.pixels[i+2] = img.Pix[o+2]
			i += pixelDepth
			o += 4
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum

	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}

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

// Package screenshot implements the television.PixelRenderer interface such
// that the most recent frame can be saved to disk on request.
//
// Images can be saved as PNG, BMP or JPEG. Frames produced by low resolution
// screen modes can be scaled vertically so that the saved image has the
// correct aspect ratio.
package screenshot

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
	"github.com/jetsetilly/vidcemu/paths"
)

// Sentinal error patterns.
const (
	NoFrame     = "screenshot: no frame to save"
	FileExists  = "screenshot: image file (%s) already exists"
	SaveError   = "screenshot: %v"
	UnknownType = "screenshot: unknown image format (%s)"
)

// Format of the saved image.
type Format int

// List of valid Format values.
const (
	PNG Format = iota
	BMP
	JPEG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case JPEG:
		return "jpg"
	}
	return "unknown"
}

// FormatByName returns the format with the file extension.
func FormatByName(name string) (Format, error) {
	switch name {
	case "png", "PNG":
		return PNG, nil
	case "bmp", "BMP":
		return BMP, nil
	case "jpg", "jpeg", "JPG", "JPEG":
		return JPEG, nil
	}
	return PNG, curated.Errorf(UnknownType, name)
}

// Screenshot keeps a copy of the most recent frame.
type Screenshot struct {
	Format Format

	// the saved image is scaled by this amount in both directions
	Scale int

	// double the height of images where the lines are twice as tall as
	// they are wide
	Aspect bool

	frame    *image.RGBA
	frameNum int
}

// NewScreenshot is the preferred method of initialisation for the Screenshot
// type.
func NewScreenshot(format Format) *Screenshot {
	return &Screenshot{
		Format: format,
		Scale:  1,
		Aspect: true,
	}
}

// Resize implements the television.PixelRenderer interface.
func (sh *Screenshot) Resize(_ vidc.Geometry) error {
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (sh *Screenshot) NewFrame(frameNum int, img *image.RGBA) error {
	b := img.Bounds()
	if sh.frame == nil || sh.frame.Bounds().Size() != b.Size() {
		sh.frame = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Copy(sh.frame, image.Point{}, img, b, draw.Src, nil)
	sh.frameNum = frameNum
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (sh *Screenshot) EndRendering() error {
	return nil
}

// FrameNum returns the number of the frame that will be saved.
func (sh *Screenshot) FrameNum() int {
	return sh.frameNum
}

// Image returns the image as it will be saved, after scaling.
func (sh *Screenshot) Image() (*image.RGBA, error) {
	if sh.frame == nil {
		return nil, curated.Errorf(NoFrame)
	}

	w := sh.frame.Bounds().Dx()
	h := sh.frame.Bounds().Dy()

	sx := max(sh.Scale, 1)
	sy := sx
	if sh.Aspect && h*2 <= w {
		sy *= 2
	}
	if sx == 1 && sy == 1 {
		return sh.frame, nil
	}

	img := image.NewRGBA(image.Rect(0, 0, w*sx, h*sy))
	draw.NearestNeighbor.Scale(img, img.Bounds(), sh.frame, sh.frame.Bounds(), draw.Src, nil)
	return img, nil
}

// Save the most recent frame. The frame number and file extension are
// appended to the fileNameBase. An empty fileNameBase is replaced with a
// timestamped name. Existing files will not be overwritten.
//
// Returns the name of the saved file.
func (sh *Screenshot) Save(fileNameBase string) (string, error) {
	img, err := sh.Image()
	if err != nil {
		return "", err
	}

	if fileNameBase == "" {
		fileNameBase = paths.UniqueFilename("screenshot", "")
	}

	imageName := fmt.Sprintf("%s_%d.%s", fileNameBase, sh.frameNum, sh.Format)

	f, err := os.Open(imageName)
	if f != nil {
		f.Close()
		return "", curated.Errorf(FileExists, imageName)
	}
	if err != nil && !os.IsNotExist(err) {
		return "", curated.Errorf(SaveError, err)
	}

	f, err = os.Create(imageName)
	if err != nil {
		return "", curated.Errorf(SaveError, err)
	}
	defer f.Close()

	switch sh.Format {
	case BMP:
		err = bmp.Encode(f, img)
	case JPEG:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return "", curated.Errorf(SaveError, err)
	}

	return imageName, nil
}

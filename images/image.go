// Package images - plain-text PGM grayscale images and the row reversal transform.
package images

import "fmt"

// Image represents a grayscale image with a format tag, dimensions, a declared maximum
// sample value and a row-major pixel grid.
type Image struct {
	// The format tag of the image, written back verbatim.
	Format ImageFormat `json:"format" yaml:"format"`
	// The width of the image (number of columns).
	Width int `json:"width" yaml:"width"`
	// The height of the image (number of rows).
	Height int `json:"height" yaml:"height"`
	// The declared maximum sample value. It is not enforced against Pixels.
	MaxValue int `json:"maxValue" yaml:"maxValue"`
	// Pixels holds Height rows of Width samples each.
	Pixels [][]int `json:"pixels" yaml:"pixels"`
}

// NewImage allocates an Image with a zeroed grid of the given dimensions.
//
// Arguments:
// - format: The format tag to carry through to the output.
// - width: The number of columns.
// - height: The number of rows.
// - maxValue: The declared maximum sample value.
//
// Returns:
// - The allocated image.
func NewImage(format ImageFormat, width, height, maxValue int) *Image {
	pixels := make([][]int, height)
	for y := range pixels {
		pixels[y] = make([]int, width)
	}

	return &Image{
		Format:   format,
		Width:    width,
		Height:   height,
		MaxValue: maxValue,
		Pixels:   pixels,
	}
}

// Validate checks that the grid matches the declared dimensions.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("image is nil")
	}
	if img.Width < 0 || img.Height < 0 {
		return fmt.Errorf("invalid image dimensions: %dx%d", img.Width, img.Height)
	}
	if len(img.Pixels) != img.Height {
		return fmt.Errorf("grid has %d rows, header declares %d", len(img.Pixels), img.Height)
	}
	for y, row := range img.Pixels {
		if len(row) != img.Width {
			return fmt.Errorf("row %d has %d columns, header declares %d", y, len(row), img.Width)
		}
	}

	return nil
}

// Len returns the number of samples declared by the header.
func (img *Image) Len() int {
	return img.Width * img.Height
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	out := *img
	out.Pixels = make([][]int, len(img.Pixels))
	for y, row := range img.Pixels {
		out.Pixels[y] = append([]int(nil), row...)
	}

	return &out
}

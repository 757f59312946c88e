package images

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// PreviewOptions controls how an image is rendered for viewing.
type PreviewOptions struct {
	// Width and Height are the target size in pixels. A zero value keeps the aspect
	// ratio; both zero keeps the original size.
	Width  uint `json:"width" yaml:"width"`
	Height uint `json:"height" yaml:"height"`
	// Mirror flips the preview left-to-right.
	Mirror bool `json:"mirror" yaml:"mirror"`
	// Blur is the Gaussian blur sigma. Zero disables blurring.
	Blur float32 `json:"blur" yaml:"blur"`
}

// ToGray converts img into an 8-bit grayscale image, scaling samples from
// [0, MaxValue] to [0, 255]. Out-of-range samples are clamped.
//
// Arguments:
// - img: The image to convert.
//
// Returns:
// - The converted image.
// - error if the max value is not positive or the grid does not match the header.
func ToGray(img *Image) (*image.Gray, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if img.MaxValue <= 0 {
		return nil, errors.Errorf("cannot scale samples with max value %d", img.MaxValue)
	}

	gray := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	for y, row := range img.Pixels {
		for x, v := range row {
			scaled := Clamp(v, 0, img.MaxValue) * 255 / img.MaxValue
			gray.SetGray(x, y, color.Gray{Y: uint8(scaled)})
		}
	}
	return gray, nil
}

// Preview renders img for viewing: converted to 8-bit gray, resized with Lanczos
// resampling and passed through the optional mirror and blur filters.
//
// Arguments:
// - img: The image to render.
// - opts: Size and filter options.
//
// Returns:
// - The rendered image.
// - error if the image cannot be converted.
func Preview(img *Image, opts PreviewOptions) (image.Image, error) {
	gray, err := ToGray(img)
	if err != nil {
		return nil, errors.Wrap(err, "preview")
	}

	var out image.Image = gray
	if opts.Width > 0 || opts.Height > 0 {
		out = resize.Resize(opts.Width, opts.Height, gray, resize.Lanczos3)
	}

	g := gift.New()
	if opts.Mirror {
		g.Add(gift.FlipHorizontal())
	}
	if opts.Blur > 0 {
		g.Add(gift.GaussianBlur(opts.Blur))
	}
	if len(g.Filters) == 0 {
		return out, nil
	}

	dst := image.NewGray(g.Bounds(out.Bounds()))
	g.Draw(dst, out)
	return dst, nil
}

// WritePNG renders img with opts and encodes the result as PNG.
func WritePNG(w io.Writer, img *Image, opts PreviewOptions) error {
	out, err := Preview(img, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, out), "encode PNG")
}

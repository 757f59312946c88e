package images

import "fmt"

// Summary describes an image's header and sample distribution.
type Summary struct {
	// Format is the image's format tag.
	Format ImageFormat `json:"format" yaml:"format"`
	// Width and Height are the grid dimensions.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	// MaxValue is the declared maximum sample value.
	MaxValue int `json:"maxValue" yaml:"maxValue"`
	// Pixels is the number of samples in the grid.
	Pixels int `json:"pixels" yaml:"pixels"`
	// Min and Max are the smallest and largest samples. Both are zero for an empty grid.
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
	// Mean is the average sample value, zero for an empty grid.
	Mean float64 `json:"mean" yaml:"mean"`
	// OutOfRange counts samples below zero or above MaxValue.
	OutOfRange int `json:"outOfRange" yaml:"outOfRange"`
}

// Summarize computes a Summary for img in a single pass over the grid.
func Summarize(img *Image) Summary {
	s := Summary{
		Format:   img.Format,
		Width:    img.Width,
		Height:   img.Height,
		MaxValue: img.MaxValue,
	}

	var sum int64
	for _, row := range img.Pixels {
		for _, v := range row {
			if s.Pixels == 0 || v < s.Min {
				s.Min = v
			}
			if s.Pixels == 0 || v > s.Max {
				s.Max = v
			}
			if v < 0 || v > img.MaxValue {
				s.OutOfRange++
			}
			sum += int64(v)
			s.Pixels++
		}
	}
	if s.Pixels > 0 {
		s.Mean = float64(sum) / float64(s.Pixels)
	}

	return s
}

// String returns a short human-readable description, e.g. "3x2 P2 (6 px, max 15)".
func (s Summary) String() string {
	return fmt.Sprintf("%dx%d %s (%d px, max %d)", s.Width, s.Height, s.Format, s.Pixels, s.MaxValue)
}

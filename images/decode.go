package images

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// tokenReader yields whitespace-delimited tokens. Spaces, tabs and line breaks are all
// equivalent separators.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

// next returns the next token. ok is false when input is exhausted. A token too long
// to buffer is reported as malformed input for field.
func (t *tokenReader) next(field string) (token string, ok bool, err error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), true, nil
	}
	if err := t.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", false, &MalformedInputError{Field: field, Err: err}
		}
		return "", false, errors.Wrap(err, "read PGM tokens")
	}
	return "", false, nil
}

// nextInt reads the next token as a base-10 integer.
func (t *tokenReader) nextInt(field string) (int, error) {
	token, ok, err := t.next(field)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &MalformedInputError{Field: field}
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, &MalformedInputError{Field: field, Token: token}
	}
	return v, nil
}

// Initial capacities for the grid; longer rows and grids grow by append.
const (
	maxPreallocRows    = 4096
	maxPreallocSamples = 4096
)

// Decode parses a plain-text PGM image.
//
// The header is four tokens (format tag, width, height, max value) followed by
// width*height samples in row-major order. Tokens after the last sample are ignored.
//
// Arguments:
// - r: The source of the PGM text.
//
// Returns:
// - The parsed image.
// - A *MalformedInputError if a token has the wrong type or the pixel section is short.
func Decode(r io.Reader) (*Image, error) {
	tokens := newTokenReader(r)

	tag, ok, err := tokens.next("format tag")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MalformedInputError{Field: "format tag"}
	}

	width, err := tokens.nextInt("width")
	if err != nil {
		return nil, err
	}
	height, err := tokens.nextInt("height")
	if err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, &MalformedInputError{
			Field: "dimensions",
			Err:   fmt.Errorf("negative size %dx%d", width, height),
		}
	}
	if width > 0 && height > math.MaxInt/width {
		return nil, &MalformedInputError{
			Field: "dimensions",
			Err:   fmt.Errorf("size %dx%d overflows the sample count", width, height),
		}
	}
	maxValue, err := tokens.nextInt("max value")
	if err != nil {
		return nil, err
	}

	pixels := make([][]int, 0, min(height, maxPreallocRows))
	for y := 0; y < height; y++ {
		row := make([]int, 0, min(width, maxPreallocSamples))
		for x := 0; x < width; x++ {
			v, err := tokens.nextInt("pixel")
			if err != nil {
				var malformed *MalformedInputError
				if errors.As(err, &malformed) {
					malformed.Field = fmt.Sprintf("pixel %d (row %d, column %d)", y*width+x, y, x)
				}
				return nil, err
			}
			row = append(row, v)
		}
		pixels = append(pixels, row)
	}

	return &Image{
		Format:   ImageFormat(tag),
		Width:    width,
		Height:   height,
		MaxValue: maxValue,
		Pixels:   pixels,
	}, nil
}

// DecodeString parses a PGM image held in memory.
func DecodeString(s string) (*Image, error) {
	return Decode(strings.NewReader(s))
}

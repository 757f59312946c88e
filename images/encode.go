package images

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// PixelFieldWidth is the minimum width of each serialized sample. Wider values are
// written in full and push the rest of the row to the right.
const PixelFieldWidth = 3

// Encode writes img in the plain-text layout:
//
//	<format tag>
//	<width> <height>
//	<max value>
//	<one line per row, each sample right-aligned in a 3-character field, no delimiter>
//
// Arguments:
// - w: The destination.
// - img: The image to serialize. Its grid must match its header.
//
// Returns:
// - The first write error, if any.
func Encode(w io.Writer, img *Image) error {
	if err := img.Validate(); err != nil {
		return errors.Wrap(err, "encode PGM")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, img.Format)
	fmt.Fprintf(bw, "%d %d\n", img.Width, img.Height)
	fmt.Fprintf(bw, "%d\n", img.MaxValue)
	for _, row := range img.Pixels {
		for _, v := range row {
			fmt.Fprintf(bw, "%*d", PixelFieldWidth, v)
		}
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first error and reports it on Flush.
	return errors.Wrap(bw.Flush(), "write PGM")
}

// EncodeToString serializes img into a string.
func EncodeToString(img *Image) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, img); err != nil {
		return "", err
	}
	return sb.String(), nil
}

package images

import (
	"crypto/md5"
	"fmt"
	"strconv"
)

// Checksum generates a deterministic fingerprint of an image's header and samples.
//
// Arguments:
// - img: The image to fingerprint.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for a nil image.
//
// Example:
//
// ```go
//
//	before := Checksum(img)
//	after := Checksum(img.Reverse().Reverse())
//	// before == after
//
// ```
func Checksum(img *Image) string {
	if img == nil {
		return "empty"
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%s\n%d %d\n%d\n", img.Format, img.Width, img.Height, img.MaxValue)
	buf := make([]byte, 0, 12)
	for _, row := range img.Pixels {
		for _, v := range row {
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			buf = append(buf, ' ')
			hash.Write(buf)
		}
		hash.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Clamp restricts a value to the specified range.
//
// Arguments:
// - value: The value to clamp.
// - min: The minimum allowed value.
// - max: The maximum allowed value.
//
// Returns:
// - The clamped value.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

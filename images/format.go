package images

import "strings"

// ImageFormat is the magic tag on the first line of a PNM file.
type ImageFormat string

const (
	// FormatPlainPGM is the ASCII grayscale variant handled by this package.
	FormatPlainPGM ImageFormat = "P2"
	// FormatRawPGM is the binary grayscale variant. It is recognised but never produced.
	FormatRawPGM ImageFormat = "P5"
)

// Extension is the file suffix required for PGM inputs. The match is case-sensitive.
const Extension = ".pgm"

// String returns the tag as written on disk.
func (f ImageFormat) String() string {
	return string(f)
}

// IsPlain reports whether the tag names the ASCII grayscale variant.
func (f ImageFormat) IsPlain() bool {
	return f == FormatPlainPGM
}

// HasExtension reports whether name ends in the literal ".pgm" suffix.
func HasExtension(name string) bool {
	return strings.HasSuffix(name, Extension)
}

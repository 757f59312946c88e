package images

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// MalformedInputError reports header or pixel tokens that do not parse as the expected
// type, or a pixel section shorter than width*height.
type MalformedInputError struct {
	// Field names what was being read, e.g. "width" or "pixel 4 (row 1, column 1)".
	Field string
	// Token is the offending text, empty when input ran out.
	Token string
	// Err is the underlying parse error, if any.
	Err error
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Token == "" && e.Err == nil:
		return fmt.Sprintf("malformed PGM input: missing %s", e.Field)
	case e.Err != nil && e.Token == "":
		return fmt.Sprintf("malformed PGM input: %s: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("malformed PGM input: %s: unexpected token %q", e.Field, e.Token)
	}
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// FileAccessError reports a PGM file that could not be opened, read or written.
type FileAccessError struct {
	// Path is the file that failed.
	Path string
	// Op is the failing operation: "open", "read" or "write".
	Op string
	// Err is the underlying OS error.
	Err error
}

func (e *FileAccessError) Error() string {
	if errors.Is(e.Err, os.ErrNotExist) {
		return fmt.Sprintf("%s (No such file or directory)", e.Path)
	}
	return fmt.Sprintf("%s: %s failed: %v", e.Path, e.Op, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err, or anything it wraps, is a *MalformedInputError.
func IsMalformed(err error) bool {
	var target *MalformedInputError
	return errors.As(err, &target)
}

// IsFileAccess reports whether err, or anything it wraps, is a *FileAccessError.
func IsFileAccess(err error) bool {
	var target *FileAccessError
	return errors.As(err, &target)
}

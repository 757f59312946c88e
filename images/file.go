package images

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ReadFile opens path, decodes it and closes the handle before returning.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		if IsMalformed(err) {
			return nil, errors.Wrap(err, path)
		}
		return nil, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	return img, nil
}

// WriteFile truncates path and writes img to it.
func WriteFile(path string, img *Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &FileAccessError{Path: path, Op: "open", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileAccessError{Path: path, Op: "write", Err: cerr}
		}
	}()

	if err := Encode(f, img); err != nil {
		return &FileAccessError{Path: path, Op: "write", Err: err}
	}
	return nil
}

// ReverseFile mirrors every row of the PGM image at path and overwrites the file.
//
// The input is decoded completely and its handle closed before the output handle is
// opened, so a malformed file is left untouched.
//
// Arguments:
// - path: The PGM file to rewrite.
// - logger: Receives debug fingerprints of the image before and after. May be nil.
//
// Returns:
// - A *FileAccessError if the file cannot be opened, read or written.
// - A *MalformedInputError (wrapped with the path) if the content does not parse.
func ReverseFile(path string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	img, err := ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("decoded image",
		zap.String("path", path),
		zap.Stringer("format", img.Format),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.String("checksum", Checksum(img)),
	)

	reversed := img.Reverse()
	if err := WriteFile(path, reversed); err != nil {
		return err
	}
	logger.Debug("wrote reversed image",
		zap.String("path", path),
		zap.String("checksum", Checksum(reversed)),
	)
	return nil
}

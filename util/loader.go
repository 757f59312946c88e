package util

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ImageFile represents a PGM file found in a directory.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Frame is the frame number parsed from a "frame-<n>.pgm" name, or -1.
	Frame int
}

// LoadDirectoryImageFiles lists the PGM files in a directory.
//
// Only regular entries whose name ends in ext are returned; subdirectories are not
// descended. Files named "frame-<n><ext>" sort first by frame number, the rest follow
// by name.
//
// Arguments:
// - dir: Directory path containing image files.
// - ext: The case-sensitive suffix to match, e.g. ".pgm".
//
// Returns:
// - []ImageFile: The matching files in processing order.
// - error: Error if the directory cannot be read.
func LoadDirectoryImageFiles(dir, ext string) ([]ImageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}

	var images []ImageFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}

		frame := -1
		if stem, ok := strings.CutPrefix(strings.TrimSuffix(entry.Name(), ext), "frame-"); ok {
			if n, err := strconv.Atoi(stem); err == nil && n >= 0 {
				frame = n
			}
		}
		images = append(images, ImageFile{
			Path:  filepath.Join(dir, entry.Name()),
			Frame: frame,
		})
	}

	sort.SliceStable(images, func(i, j int) bool {
		a, b := images[i], images[j]
		switch {
		case a.Frame >= 0 && b.Frame >= 0:
			return a.Frame < b.Frame
		case a.Frame >= 0:
			return true
		case b.Frame >= 0:
			return false
		default:
			return a.Path < b.Path
		}
	})

	return images, nil
}

// Paths returns the path of every file, in order.
func Paths(files []ImageFile) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

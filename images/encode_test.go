package images

import (
	"bytes"
	"errors"
	"image"
	"strconv"
	"testing"

	_ "github.com/jbuchbinder/gopnm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode validates the fixed-width layout.
func TestEncode(t *testing.T) {
	img := &Image{
		Format:   FormatPlainPGM,
		Width:    3,
		Height:   2,
		MaxValue: 15,
		Pixels:   [][]int{{3, 2, 1}, {6, 5, 4}},
	}

	out, err := EncodeToString(img)
	require.NoError(t, err)
	assert.Equal(t, "P2\n3 2\n15\n  3  2  1\n  6  5  4\n", out)
}

// TestEncodeFieldWidth checks minimum-width, never-truncating sample fields.
func TestEncodeFieldWidth(t *testing.T) {
	tests := []struct {
		name string
		row  []int
		want string
	}{
		{name: "single digit", row: []int{7}, want: "  7"},
		{name: "two digits", row: []int{42, 10}, want: " 42 10"},
		{name: "three digits", row: []int{255, 0}, want: "255  0"},
		{name: "wider than field", row: []int{1000, 1}, want: "1000  1"},
		{name: "negative", row: []int{-5, -10}, want: " -5-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := &Image{Format: FormatPlainPGM, Width: len(tt.row), Height: 1, MaxValue: 255, Pixels: [][]int{tt.row}}
			out, err := EncodeToString(img)
			require.NoError(t, err)
			assert.Equal(t, "P2\n"+strconv.Itoa(len(tt.row))+" 1\n255\n"+tt.want+"\n", out)
		})
	}
}

// TestEncodeDegenerate covers empty rows and an empty grid.
func TestEncodeDegenerate(t *testing.T) {
	out, err := EncodeToString(NewImage(FormatPlainPGM, 0, 2, 9))
	require.NoError(t, err)
	assert.Equal(t, "P2\n0 2\n9\n\n\n", out)

	out, err = EncodeToString(NewImage(FormatPlainPGM, 2, 0, 9))
	require.NoError(t, err)
	assert.Equal(t, "P2\n2 0\n9\n", out)
}

// TestEncodeRejectsInconsistentGrid checks that a grid not matching its header is refused.
func TestEncodeRejectsInconsistentGrid(t *testing.T) {
	img := &Image{Format: FormatPlainPGM, Width: 2, Height: 1, MaxValue: 9, Pixels: [][]int{{1}}}
	_, err := EncodeToString(img)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestEncodeWriteError checks that write failures surface.
func TestEncodeWriteError(t *testing.T) {
	err := Encode(failingWriter{}, NewImage(FormatPlainPGM, 1, 1, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// TestEncodeDecodeRoundTrip checks that decoding our own output restores the image.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	img, err := DecodeString("P2 4 3 99 0 1 2 3 10 20 30 40 97 98 99 5")
	require.NoError(t, err)

	out, err := EncodeToString(img)
	require.NoError(t, err)

	again, err := DecodeString(out)
	require.NoError(t, err)
	assert.Equal(t, img, again)
	assert.Equal(t, Checksum(img), Checksum(again))
}

// TestEncodeReadableByPNMDecoder checks that our output is a valid plain PGM for a
// third-party PNM decoder.
func TestEncodeReadableByPNMDecoder(t *testing.T) {
	img, err := DecodeString(samplePGM)
	require.NoError(t, err)
	img.MaxValue = 255

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img.Reverse()))

	decoded, _, err := image.Decode(&buf)
	require.NoError(t, err, "PNM decoder should accept our output")
	assert.Equal(t, 3, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
}

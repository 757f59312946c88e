package images

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomImage(rng *rand.Rand, width, height int) *Image {
	img := NewImage(FormatPlainPGM, width, height, 255)
	for y := range img.Pixels {
		for x := range img.Pixels[y] {
			img.Pixels[y][x] = rng.Intn(256)
		}
	}
	return img
}

// TestReverseScenario validates the documented round trip.
func TestReverseScenario(t *testing.T) {
	img, err := DecodeString(samplePGM)
	require.NoError(t, err)

	out, err := EncodeToString(img.Reverse())
	require.NoError(t, err)
	assert.Equal(t, "P2\n3 2\n15\n  3  2  1\n  6  5  4\n", out)
}

// TestReverseProperties checks dimension preservation, per-row correctness, header
// pass-through and involution over a spread of grid shapes.
func TestReverseProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	shapes := []struct{ w, h int }{
		{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 3}, {16, 9}, {0, 4}, {4, 0}, {0, 0},
		{33, 4099},
	}

	for _, shape := range shapes {
		img := randomImage(rng, shape.w, shape.h)
		reversed := img.Reverse()

		assert.Equal(t, img.Width, reversed.Width)
		assert.Equal(t, img.Height, reversed.Height)
		assert.Equal(t, img.Format, reversed.Format)
		assert.Equal(t, img.MaxValue, reversed.MaxValue)
		require.NoError(t, reversed.Validate())

		for r := range img.Pixels {
			for k := 0; k < img.Width; k++ {
				assert.Equal(t, img.Pixels[r][img.Width-1-k], reversed.Pixels[r][k])
			}
		}

		if diff := cmp.Diff(img.Pixels, reversed.Reverse().Pixels); diff != "" {
			t.Errorf("%dx%d: reversing twice changed pixels (-want +got):\n%s", shape.w, shape.h, diff)
		}
	}
}

// TestReverseRowsDoesNotMutate checks that the input grid is left alone.
func TestReverseRowsDoesNotMutate(t *testing.T) {
	in := [][]int{{1, 2, 3}, {4, 5, 6}}
	out := ReverseRows(in)

	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, in)
	out[0][0] = 99
	assert.Equal(t, 1, in[0][0], "output must not alias input")
}

// TestReverseRowsDegenerate covers single-element and empty grids.
func TestReverseRowsDegenerate(t *testing.T) {
	assert.Equal(t, [][]int{{7}}, ReverseRows([][]int{{7}}))
	assert.Equal(t, [][]int{{3, 2, 1}}, ReverseRows([][]int{{1, 2, 3}}))
	assert.Equal(t, [][]int{{}, {}}, ReverseRows([][]int{{}, {}}))
	assert.Empty(t, ReverseRows(nil))
	assert.Empty(t, ReverseRows([][]int{}))
}

// TestCloneIsDeep checks that Clone copies the grid.
func TestCloneIsDeep(t *testing.T) {
	img, err := DecodeString(samplePGM)
	require.NoError(t, err)

	clone := img.Clone()
	clone.Pixels[0][0] = 100
	assert.Equal(t, 1, img.Pixels[0][0])
	assert.Equal(t, img.Len(), clone.Len())
}

// TestChecksum checks the fingerprint is stable and sensitive to pixel order.
func TestChecksum(t *testing.T) {
	img, err := DecodeString(samplePGM)
	require.NoError(t, err)

	assert.Equal(t, "empty", Checksum(nil))
	assert.Equal(t, Checksum(img), Checksum(img.Clone()))
	assert.NotEqual(t, Checksum(img), Checksum(img.Reverse()))
	assert.Equal(t, Checksum(img), Checksum(img.Reverse().Reverse()))
}

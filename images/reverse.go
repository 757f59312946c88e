package images

// ReverseRows returns a new grid in which every row is mirrored left-to-right. Row
// order is unchanged and the input is not modified.
//
// For row i, output column k is input column len(row)-1-k. Empty rows and empty grids
// are returned as empty copies. Large grids are split across CPUs by row.
//
// Arguments:
// - pixels: The row-major grid to mirror.
//
// Returns:
// - The mirrored grid.
//
// Example:
//
// ```go
//
//	out := ReverseRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	// out == [][]int{{3, 2, 1}, {6, 5, 4}}
//
// ```
func ReverseRows(pixels [][]int) [][]int {
	reversed := make([][]int, len(pixels))
	Parallel(len(pixels), func(start, end int) {
		for y := start; y < end; y++ {
			row := pixels[y]
			out := make([]int, len(row))
			for k := range out {
				out[k] = row[len(row)-1-k]
			}
			reversed[y] = out
		}
	})
	return reversed
}

// Reverse returns a copy of img with every row mirrored. The format tag, dimensions and
// max value are carried over unchanged.
func (img *Image) Reverse() *Image {
	return &Image{
		Format:   img.Format,
		Width:    img.Width,
		Height:   img.Height,
		MaxValue: img.MaxValue,
		Pixels:   ReverseRows(img.Pixels),
	}
}

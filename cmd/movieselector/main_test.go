package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalog = "Title\tYear\tLength\tRating\tGenre\n" +
	"Toy Story\t1995\t81\tG\t010000\n" +
	"Heat\t1995\t170\tR\t100100\n" +
	"The Lion King\t1994\t88\tG\t010100\n" +
	"Hoop Dreams\t1994\t170\tPG-13\t000010\n"

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.txt")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestQueries(t *testing.T) {
	path := writeCatalog(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "list",
			args: []string{"list", path},
			want: "Toy Story\nHeat\nThe Lion King\nHoop Dreams\nNumber of movies: 4\n",
		},
		{name: "year", args: []string{"year", path, "1994"}, want: "The Lion King\nHoop Dreams\n"},
		{name: "year without matches", args: []string{"year", path, "2000"}, want: ""},
		{name: "title words", args: []string{"title", path, "lion", "KING"}, want: "The Lion King\n"},
		{
			name: "search",
			args: []string{"search", path, "--genre", "n", "--rating", "G", "--max-length", "85"},
			want: "Toy Story\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCommand(t, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	path := writeCatalog(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "year too early", args: []string{"year", path, "1700"}, want: `invalid year: "1700"`},
		{name: "year not a number", args: []string{"year", path, "soon"}, want: `invalid year: "soon"`},
		{name: "genre", args: []string{"search", path, "-g", "Z", "-r", "G", "-l", "90"}, want: `invalid genre: "Z"`},
		{name: "rating", args: []string{"search", path, "-g", "A", "-r", "M", "-l", "90"}, want: `invalid rating: "M"`},
		{name: "length", args: []string{"search", path, "-g", "A", "-r", "R", "-l", "0"}, want: `invalid length: "0"`},
		{name: "missing flag", args: []string{"search", path, "-g", "A"}, want: "required flag"},
		{name: "missing catalog", args: []string{"list", filepath.Join(t.TempDir(), "none.txt")}, want: "open catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCommand(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestConfigYearBounds(t *testing.T) {
	path := writeCatalog(t)
	cfg := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("movies:\n  min_year: 1995\n"), 0o644))

	code, _, stderr := runCommand(t, "--config", cfg, "year", path, "1994")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid year")

	code, stdout, stderr := runCommand(t, "--config", cfg, "year", path, "1995")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Toy Story\nHeat\n", stdout)
}

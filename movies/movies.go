// Package movies loads a tab-delimited movie catalog and answers the selector's queries.
package movies

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Catalog bounds used when no configuration overrides them.
const (
	DefaultMinYear   = 1880
	DefaultMaxYear   = 2050
	DefaultMinLength = 1
	// HeaderRows is the number of lines skipped at the top of a catalog file.
	HeaderRows = 1
)

// Genre is a position in a movie's six-character genre mask.
type Genre int

const (
	Action Genre = iota
	Animation
	Comedy
	Drama
	Documentary
	Romance
)

// genreLetters maps the selector's one-letter codes to genres.
var genreLetters = map[string]Genre{
	"A": Action,
	"N": Animation,
	"C": Comedy,
	"D": Drama,
	"O": Documentary,
	"R": Romance,
}

// Ratings lists the accepted rating codes.
var Ratings = []string{"G", "PG", "PG-13", "R", "NC-17", "NR"}

// ParseGenre resolves a one-letter genre code, case-insensitively.
func ParseGenre(letter string) (Genre, bool) {
	g, ok := genreLetters[strings.ToUpper(letter)]
	return g, ok
}

// String returns the genre's name.
func (g Genre) String() string {
	switch g {
	case Action:
		return "Action"
	case Animation:
		return "Animation"
	case Comedy:
		return "Comedy"
	case Drama:
		return "Drama"
	case Documentary:
		return "Documentary"
	case Romance:
		return "Romance"
	default:
		return fmt.Sprintf("Genre(%d)", int(g))
	}
}

// Movie is one catalog entry.
type Movie struct {
	Title  string `json:"title" yaml:"title"`
	Year   int    `json:"year" yaml:"year"`
	Length int    `json:"length" yaml:"length"`
	Rating string `json:"rating" yaml:"rating"`
	// Genres is the raw mask, '1' at each Genre position that applies.
	Genres string `json:"genres" yaml:"genres"`
}

// Is reports whether the movie's mask marks genre g.
func (m Movie) Is(g Genre) bool {
	return int(g) < len(m.Genres) && m.Genres[g] == '1'
}

// Catalog is an ordered list of movies.
type Catalog []Movie

// Load reads a catalog: one header line, then one tab-separated
// "title, year, length, rating, genre mask" record per line. Blank lines are skipped.
//
// Arguments:
// - r: The catalog source.
//
// Returns:
// - The movies in file order.
// - error naming the line number of the first bad record.
func Load(r io.Reader) (Catalog, error) {
	scanner := bufio.NewScanner(r)
	var catalog Catalog
	line := 0
	for scanner.Scan() {
		line++
		if line <= HeaderRows {
			continue
		}
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		movie, err := parseRecord(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		catalog = append(catalog, movie)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}
	return catalog, nil
}

func parseRecord(text string) (Movie, error) {
	fields := strings.Split(text, "\t")
	if len(fields) < 5 {
		return Movie{}, errors.Errorf("expected 5 tab-separated fields, got %d", len(fields))
	}
	year, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Movie{}, errors.Errorf("year %q is not a number", fields[1])
	}
	length, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Movie{}, errors.Errorf("length %q is not a number", fields[2])
	}
	return Movie{
		Title:  fields[0],
		Year:   year,
		Length: length,
		Rating: strings.TrimSpace(fields[3]),
		Genres: strings.TrimSpace(fields[4]),
	}, nil
}

// Titles returns every title in catalog order.
func (c Catalog) Titles() []string {
	return lo.Map(c, func(m Movie, _ int) string { return m.Title })
}

// ByYear returns the titles released in year.
//
// Returns:
// - The matching titles.
// - A *ValidationError "invalid year" when year is outside [minYear, maxYear].
func (c Catalog) ByYear(year, minYear, maxYear int) ([]string, error) {
	if year < minYear || year > maxYear {
		return nil, &ValidationError{Field: "year", Value: strconv.Itoa(year)}
	}
	matches := lo.Filter(c, func(m Movie, _ int) bool { return m.Year == year })
	return matches.Titles(), nil
}

// ByTitle returns the titles containing substr, ignoring case.
func (c Catalog) ByTitle(substr string) []string {
	needle := strings.ToLower(substr)
	matches := lo.Filter(c, func(m Movie, _ int) bool {
		return strings.Contains(strings.ToLower(m.Title), needle)
	})
	return matches.Titles()
}

// Criteria is a genre/rating/length query.
type Criteria struct {
	// Genre is a one-letter code: A, N, C, D, O or R.
	Genre string
	// Rating is one of Ratings.
	Rating string
	// MaxLength is the longest acceptable running time in minutes.
	MaxLength int
}

// Search returns the titles matching every criterion. Criteria are validated in order
// genre, rating, length; the first invalid one is reported.
//
// Arguments:
// - q: The query.
// - minLength: The smallest acceptable MaxLength.
//
// Returns:
// - The matching titles.
// - A *ValidationError for the first invalid criterion.
func (c Catalog) Search(q Criteria, minLength int) ([]string, error) {
	genre, ok := ParseGenre(q.Genre)
	if !ok {
		return nil, &ValidationError{Field: "genre", Value: q.Genre}
	}
	rating := strings.ToUpper(q.Rating)
	if !lo.Contains(Ratings, rating) {
		return nil, &ValidationError{Field: "rating", Value: q.Rating}
	}
	if q.MaxLength < minLength {
		return nil, &ValidationError{Field: "length", Value: strconv.Itoa(q.MaxLength)}
	}

	matches := lo.Filter(c, func(m Movie, _ int) bool {
		return m.Is(genre) && m.Rating == rating && m.Length <= q.MaxLength
	})
	return matches.Titles(), nil
}

// ValidationError reports a query parameter outside its accepted range.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// Package treasuremap obscures and uncovers ASCII treasure maps.
//
// A map is drawn with a small set of valid characters on a background of spaces.
// Obscuring fills every space with a random noise character; uncovering keeps the
// valid characters and blanks everything else.
package treasuremap

import (
	"bufio"
	"io"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultValidCharacters are the characters a map is drawn with.
	DefaultValidCharacters = `+/\~X`
	// DefaultObscureCharacters are the noise characters used to hide a map.
	DefaultObscureCharacters = "!@#$%^&*()="
)

// Mode selects the direction of Process.
type Mode int

const (
	// Obscure replaces spaces with noise.
	Obscure Mode = iota
	// Uncover replaces everything but valid characters with spaces.
	Uncover
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case Obscure:
		return "obscure"
	case Uncover:
		return "uncover"
	default:
		return "unknown"
	}
}

// Charset holds the two lookup tables.
type Charset struct {
	Valid   string `yaml:"valid" toml:"valid"`
	Obscure string `yaml:"obscure" toml:"obscure"`
}

// DefaultCharset returns the standard tables.
func DefaultCharset() Charset {
	return Charset{Valid: DefaultValidCharacters, Obscure: DefaultObscureCharacters}
}

// Validate rejects empty tables and tables that share a character, since an obscured
// map could then not be uncovered faithfully.
func (c Charset) Validate() error {
	if c.Valid == "" {
		return errors.New("valid character set is empty")
	}
	if c.Obscure == "" {
		return errors.New("obscure character set is empty")
	}
	if strings.ContainsRune(c.Obscure, ' ') {
		return errors.New("obscure character set must not contain a space")
	}
	if i := strings.IndexAny(c.Valid, c.Obscure); i >= 0 {
		return errors.Errorf("character %q is both valid and obscure", c.Valid[i])
	}
	return nil
}

// Changer obscures and uncovers maps. It owns its random source; a Changer is not safe
// for concurrent use.
type Changer struct {
	charset Charset
	noise   []rune
	rng     *rand.Rand
	logger  *zap.Logger
}

// New creates a Changer with the given tables and random source.
//
// Arguments:
// - charset: The valid and obscure tables.
// - rng: The random source for noise characters. A nil rng is seeded with 1.
// - logger: Receives per-file debug output. May be nil.
//
// Returns:
// - The Changer.
// - error if the charset is invalid.
func New(charset Charset, rng *rand.Rand, logger *zap.Logger) (*Changer, error) {
	if err := charset.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Changer{
		charset: charset,
		noise:   []rune(charset.Obscure),
		rng:     rng,
		logger:  logger,
	}, nil
}

// IsValidCharacter reports whether r is one of the valid map characters.
func (c *Changer) IsValidCharacter(r rune) bool {
	return strings.ContainsRune(c.charset.Valid, r)
}

// RandomCharacter returns a noise character chosen uniformly.
func (c *Changer) RandomCharacter() rune {
	return c.noise[c.rng.Intn(len(c.noise))]
}

// ObscureLine replaces every space in line with a random noise character and keeps
// every other character.
func (c *Changer) ObscureLine(line string) string {
	var sb strings.Builder
	sb.Grow(len(line))
	for _, r := range line {
		if r == ' ' {
			sb.WriteRune(c.RandomCharacter())
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// UncoverLine keeps the valid characters of line and replaces everything else with a
// space.
func (c *Changer) UncoverLine(line string) string {
	var sb strings.Builder
	sb.Grow(len(line))
	for _, r := range line {
		if c.IsValidCharacter(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Process transforms r line by line into w. Every output line ends in '\n'.
//
// Arguments:
// - r: The input map.
// - w: The destination.
// - mode: Obscure or Uncover.
//
// Returns:
// - The number of lines written.
// - The first read or write error.
func (c *Changer) Process(r io.Reader, w io.Writer, mode Mode) (int, error) {
	var transform func(string) string
	switch mode {
	case Obscure:
		transform = c.ObscureLine
	case Uncover:
		transform = c.UncoverLine
	default:
		return 0, errors.Errorf("unknown mode %d", mode)
	}

	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	lines := 0
	for scanner.Scan() {
		bw.WriteString(transform(scanner.Text()))
		bw.WriteByte('\n')
		lines++
	}
	if err := scanner.Err(); err != nil {
		return lines, errors.Wrap(err, "read map")
	}
	if err := bw.Flush(); err != nil {
		return lines, errors.Wrap(err, "write map")
	}

	c.logger.Debug("processed map", zap.Stringer("mode", mode), zap.Int("lines", lines))
	return lines, nil
}

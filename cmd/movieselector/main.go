// Command movieselector answers questions about a tab-delimited movie catalog.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nvr-ai/go-toolbox/config"
	"github.com/nvr-ai/go-toolbox/logging"
	"github.com/nvr-ai/go-toolbox/movies"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type globals struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "movieselector",
		Short: "Query a movie catalog",
		Long: `movieselector reads a catalog with one header line followed by one
tab-separated record per movie: title, year, length in minutes, rating and a
six-digit genre mask (Action, Animation, Comedy, Drama, Documentary, Romance).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := logging.Setup(g.configPath, g.verbose)
			if err != nil {
				return err
			}
			g.cfg, g.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "settings file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(
		newListCommand(g),
		newYearCommand(g),
		newTitleCommand(g),
		newSearchCommand(g),
	)
	return cmd
}

func loadCatalog(g *globals, path string) (movies.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog")
	}
	defer f.Close()

	catalog, err := movies.Load(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	g.logger.Debug("loaded catalog", zap.String("path", path), zap.Int("movies", len(catalog)))
	return catalog, nil
}

func printTitles(w io.Writer, titles []string) {
	for _, title := range titles {
		fmt.Fprintln(w, title)
	}
}

func newListCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "list <catalog>",
		Short: "Print every title and the number of movies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(g, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printTitles(out, catalog.Titles())
			fmt.Fprintf(out, "Number of movies: %d\n", len(catalog))
			return nil
		},
	}
}

func newYearCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "year <catalog> <year>",
		Short: "Print the titles released in a year",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return &movies.ValidationError{Field: "year", Value: args[1]}
			}
			catalog, err := loadCatalog(g, args[0])
			if err != nil {
				return err
			}
			titles, err := catalog.ByYear(year, g.cfg.Movies.MinYear, g.cfg.Movies.MaxYear)
			if err != nil {
				return err
			}
			printTitles(cmd.OutOrStdout(), titles)
			return nil
		},
	}
}

func newTitleCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "title <catalog> <words...>",
		Short: "Print the titles containing the given text, ignoring case",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(g, args[0])
			if err != nil {
				return err
			}
			printTitles(cmd.OutOrStdout(), catalog.ByTitle(strings.Join(args[1:], " ")))
			return nil
		},
	}
}

func newSearchCommand(g *globals) *cobra.Command {
	var criteria movies.Criteria

	cmd := &cobra.Command{
		Use:   "search <catalog>",
		Short: "Print the titles matching a genre, rating and maximum length",
		Long: `Genres: A (Action), N (Animation), C (Comedy), D (Drama), O (Documentary),
R (Romance). Ratings: ` + strings.Join(movies.Ratings, ", ") + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(g, args[0])
			if err != nil {
				return err
			}
			titles, err := catalog.Search(criteria, g.cfg.Movies.MinLength)
			if err != nil {
				return err
			}
			printTitles(cmd.OutOrStdout(), titles)
			return nil
		},
	}

	cmd.Flags().StringVarP(&criteria.Genre, "genre", "g", "", "one-letter genre code")
	cmd.Flags().StringVarP(&criteria.Rating, "rating", "r", "", "rating code")
	cmd.Flags().IntVarP(&criteria.MaxLength, "max-length", "l", 0, "longest running time in minutes")
	_ = cmd.MarkFlagRequired("genre")
	_ = cmd.MarkFlagRequired("rating")
	_ = cmd.MarkFlagRequired("max-length")
	return cmd
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

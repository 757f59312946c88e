// Command mapchanger hides a treasure map in noise, or recovers it.
//
//	mapchanger obscure map.txt hidden.txt
//	mapchanger uncover hidden.txt map.txt
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/nvr-ai/go-toolbox/config"
	"github.com/nvr-ai/go-toolbox/logging"
	"github.com/nvr-ai/go-toolbox/treasuremap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type globals struct {
	configPath string
	verbose    bool
	force      bool
	seed       int64

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:           "mapchanger",
		Short:         "Obscure or uncover ASCII treasure maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := logging.Setup(g.configPath, g.verbose)
			if err != nil {
				return err
			}
			g.cfg, g.logger = cfg, logger
			if !cmd.Flags().Changed("seed") {
				g.seed = cfg.TreasureMap.Seed
			}
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
	cmd.PersistentFlags().BoolVarP(&g.force, "force", "f", false, "overwrite an existing output file")
	cmd.PersistentFlags().Int64Var(&g.seed, "seed", 0, "noise seed (0 seeds from the clock)")

	cmd.AddCommand(
		newModeCommand(g, treasuremap.Obscure, "Replace the blanks of a map with noise"),
		newModeCommand(g, treasuremap.Uncover, "Recover a map by blanking everything but map characters"),
	)
	return cmd
}

func newModeCommand(g *globals, mode treasuremap.Mode, short string) *cobra.Command {
	return &cobra.Command{
		Use:   mode.String() + " <input> <output>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeFile(g, mode, args[0], args[1])
		},
	}
}

func changeFile(g *globals, mode treasuremap.Mode, input, output string) (err error) {
	if sameFile(input, output) {
		return errors.Errorf("input and output are the same file: %s", output)
	}

	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	changer, err := treasuremap.New(g.cfg.TreasureMap.Charset, rand.New(rand.NewSource(seed)), g.logger)
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer in.Close()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !g.force {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(output, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Errorf("%s already exists (use --force to overwrite)", output)
		}
		return errors.Wrap(err, "open output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()

	lines, err := changer.Process(in, out, mode)
	if err != nil {
		return err
	}
	g.logger.Info("map written",
		zap.Stringer("mode", mode),
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("lines", lines),
		zap.Int64("seed", seed),
	)
	return nil
}

// sameFile reports whether a and b name the same path, or the same existing file.
func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nvr-ai/go-toolbox/images"
	"github.com/nvr-ai/go-toolbox/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newReverseCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <image.pgm>",
		Short: "Mirror every row of one image in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !images.HasExtension(args[0]) {
				return errors.Errorf("%s: filename must have %s extension", args[0], images.Extension)
			}
			return images.ReverseFile(args[0], g.logger)
		},
	}
}

func newReverseDirCommand(g *globals) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "reverse-dir <directory>",
		Short: "Mirror every .pgm image in a directory",
		Long: `Mirrors every .pgm file directly inside the directory. Files named frame-<n>.pgm
are processed in frame order. A file that fails does not stop the others.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := util.LoadDirectoryImageFiles(args[0], images.Extension)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return reverseDir(ctx, cmd, util.Paths(files), workers, g)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "files processed at once (0 for one per CPU)")
	return cmd
}

func reverseDir(ctx context.Context, cmd *cobra.Command, paths []string, workers int, g *globals) error {
	result, err := images.ReverseFiles(ctx, paths, workers, g.logger)

	out := cmd.OutOrStdout()
	for _, path := range result.Reversed {
		fmt.Fprintln(out, "reversed", path)
	}
	fmt.Fprintf(out, "%d reversed, %d failed\n", len(result.Reversed), len(result.Failed))

	if err != nil {
		return errors.Wrapf(err, "%d of %d files failed", len(multierr.Errors(err)), len(paths))
	}
	return nil
}

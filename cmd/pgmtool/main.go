// Command pgmtool inspects, previews and reverses plain PGM images.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nvr-ai/go-toolbox/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globals holds the persistent flags and the logger built from them.
type globals struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "pgmtool",
		Short: "Inspect, preview and reverse plain PGM images",
		Long: `pgmtool works on plain (P2) PGM images.

Commands:
  reverse      mirror every row of one image in place
  reverse-dir  mirror every .pgm image in a directory
  info         print an image's header, sample range and checksum
  preview      render an image to PNG`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := logging.Setup(g.configPath, g.verbose)
			if err != nil {
				return err
			}
			g.logger = logger
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
		newReverseCommand(g),
		newReverseDirCommand(g),
		newInfoCommand(g),
		newPreviewCommand(g),
	)
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

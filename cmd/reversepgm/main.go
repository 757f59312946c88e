// Command reversepgm mirrors every row of a plain PGM image in place.
//
//	reversepgm [-v] [--config tools.yaml] image.pgm
//
// Diagnostics are printed to stdout and every failure exits with status 1. A file
// that does not parse is left untouched.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nvr-ai/go-toolbox/images"
	"github.com/nvr-ai/go-toolbox/logging"
	"github.com/spf13/cobra"
)

const (
	usageMessage     = "Usage: reversepgm filename"
	extensionMessage = "Filename must have .pgm extension"
)

// UsageError reports a command line that names no file, too many files, or a file
// without the .pgm extension.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

type options struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "reversepgm filename",
		Short: "Mirror every row of a plain PGM image in place",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Message: usageMessage}
			}
			if !images.HasExtension(args[0]) {
				return &UsageError{Message: extensionMessage}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "settings file (.yaml, .yml or .toml)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	return cmd
}

func run(opts *options, path string) error {
	_, logger, err := logging.Setup(opts.configPath, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return images.ReverseFile(path, logger)
}

// execute runs the command with args and returns the process exit status. Any error
// is printed on its own line to stdout.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

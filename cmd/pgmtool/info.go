package main

import (
	"fmt"

	"github.com/nvr-ai/go-toolbox/images"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// infoReport is the YAML form of the info command's output.
type infoReport struct {
	Path     string         `yaml:"path"`
	Checksum string         `yaml:"checksum"`
	Summary  images.Summary `yaml:"summary"`
}

func newInfoCommand(g *globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info <image.pgm>",
		Short: "Print an image's header, sample range and checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := images.ReadFile(args[0])
			if err != nil {
				return err
			}
			report := infoReport{
				Path:     args[0],
				Checksum: images.Checksum(img),
				Summary:  images.Summarize(img),
			}
			g.logger.Debug("summarized image", zap.String("path", args[0]), zap.Stringer("summary", report.Summary))

			out := cmd.OutOrStdout()
			switch output {
			case "text":
				s := report.Summary
				fmt.Fprintf(out, "%s: %s\n", report.Path, s)
				fmt.Fprintf(out, "samples: min %d, max %d, mean %.2f, out of range %d\n", s.Min, s.Max, s.Mean, s.OutOfRange)
				fmt.Fprintf(out, "checksum: %s\n", report.Checksum)
				return nil
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return errors.Wrap(err, "encode report")
				}
				return enc.Close()
			default:
				return errors.Errorf("unknown output %q (want text or yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")
	return cmd
}

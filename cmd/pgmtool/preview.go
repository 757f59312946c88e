package main

import (
	"bytes"
	"os"

	"github.com/nvr-ai/go-toolbox/images"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPreviewCommand(g *globals) *cobra.Command {
	var opts images.PreviewOptions

	cmd := &cobra.Command{
		Use:   "preview <image.pgm> <preview.png>",
		Short: "Render an image to PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := images.ReadFile(args[0])
			if err != nil {
				return err
			}

			// Render fully before touching the destination.
			var buf bytes.Buffer
			if err := images.WritePNG(&buf, img, opts); err != nil {
				return errors.Wrap(err, args[0])
			}
			if err := os.WriteFile(args[1], buf.Bytes(), 0o644); err != nil {
				return errors.Wrap(err, "write preview")
			}

			g.logger.Debug("wrote preview",
				zap.String("source", args[0]),
				zap.String("preview", args[1]),
				zap.Int("bytes", buf.Len()),
			)
			return nil
		},
	}

	cmd.Flags().UintVar(&opts.Width, "width", 0, "preview width (0 keeps the aspect ratio)")
	cmd.Flags().UintVar(&opts.Height, "height", 0, "preview height (0 keeps the aspect ratio)")
	cmd.Flags().BoolVar(&opts.Mirror, "mirror", false, "flip the preview left-to-right")
	cmd.Flags().Float32Var(&opts.Blur, "blur", 0, "Gaussian blur sigma")
	return cmd
}

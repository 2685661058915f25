// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/ik5/tapepbx"
	"github.com/ik5/tapepbx/tape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		rate   int
		depth  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "render <image> <output.wav|output.aiff>",
		Short: "Render a tape image into an audio file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tapepbx.Options{
				SampleRate: a.cfg.Render.SampleRate,
				BitDepth:   a.cfg.Render.BitDepth,
				Amplitude:  a.cfg.Render.Amplitude,
				Format:     a.cfg.Render.Format,
			}
			if rate > 0 {
				opts.SampleRate = rate
			}
			if depth > 0 {
				opts.BitDepth = depth
			}
			if format != "" {
				opts.Format = format
			}

			settings := tape.NewMemSettings(a.cfg.Baud)
			res, err := tapepbx.RenderFile(cmd.Context(), args[0], args[1], settings, opts, a.log)
			if err != nil {
				return err
			}

			a.log.Info("rendered",
				zap.String("output", args[1]),
				zap.Int("samples", res.Samples),
				zap.Duration("duration", res.Duration))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples, %s\n", args[1], res.Samples, res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().IntVar(&rate, "rate", 0, "sample rate in Hz (default from config)")
	cmd.Flags().IntVar(&depth, "bits", 0, "bits per sample, 16 or 24 (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "output format, wav or aiff (default by extension)")
	return cmd
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/tapepbx/formats/mzf"
	"github.com/ik5/tapepbx/player"
	"github.com/ik5/tapepbx/tape"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <image>",
		Short: "Describe a tape image and its playback time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			stream, err := tape.NewStream(f)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "image:     %s (%d bytes)\n", args[0], stream.Size())

			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".mzf", ".m12", ".mzt":
				if err := printMZFHeader(w, stream); err != nil {
					return err
				}
			}

			p := player.New(nil, tape.NewMemSettings(a.cfg.Baud), a.log)
			if err := p.Load(args[0], stream); err != nil {
				return err
			}
			stats, err := p.Measure(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "periods:   %d\n", stats.HalfPeriods)
			fmt.Fprintf(w, "duration:  %s\n", stats.Duration.Round(time.Millisecond))
			return nil
		},
	}
}

func printMZFHeader(w io.Writer, stream *tape.Stream) error {
	h, err := mzf.ParseHeader(stream)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "name:      %q\n", h.Name())
	fmt.Fprintf(w, "type:      %s\n", h.Type())
	fmt.Fprintf(w, "size:      %d\n", h.Size())
	fmt.Fprintf(w, "load:      $%04X\n", h.LoadAddr())
	fmt.Fprintf(w, "exec:      $%04X\n", h.ExecAddr())
	fmt.Fprintf(w, "checksum:  $%04X\n", uint16(mzf.HeaderChecksum(&h)))
	return nil
}

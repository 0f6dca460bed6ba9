package main

import (
	"github.com/spf13/cobra"

	"github.com/srlehn/oledface"
	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/sink/gifsink"
	"github.com/srlehn/oledface/sink/pngsink"
	"github.com/srlehn/oledface/surface"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportGIFFlag, `gif`, ``, `write an animated gif`)
	exportCmd.Flags().StringVar(&exportPNGDirFlag, `png-dir`, ``, `write every frame as png into this directory`)
	exportCmd.Flags().IntVar(&exportScaleFlag, `scale`, 0, `integer scale factor (overrides config)`)
	exportCmd.Flags().StringVar(&exportResizerFlag, `resizer`, ``, `resizer used for scaling (overrides config)`)
}

var exportCmd = &cobra.Command{
	Use:   exportCmdStr + ` <expression>...`,
	Short: `export expressions as images`,
	Long:  `render expressions without pausing and save the frames as gif and/or png files`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(exportFunc(args))
	},
}

var (
	exportCmdStr      = "export"
	exportGIFFlag     string
	exportPNGDirFlag  string
	exportScaleFlag   int
	exportResizerFlag string
)

func exportFunc(names []string) sessionFunc {
	return func(s *session) error {
		if len(exportGIFFlag) == 0 && len(exportPNGDirFlag) == 0 {
			return errors.New(`nothing to export: use --gif and/or --png-dir`)
		}
		if exportScaleFlag > 0 {
			s.cfg.Preview.Scale = exportScaleFlag
		}
		if len(exportResizerFlag) > 0 {
			s.cfg.Preview.Resizer = exportResizerFlag
		}
		rsz, err := s.resizer()
		if err != nil {
			return err
		}

		// the gif sink also takes the pauses, so export never sleeps
		gs := gifsink.New(rsz, s.cfg.Preview.Scale)
		flushers := []surface.Flusher{gs}
		if len(exportPNGDirFlag) > 0 {
			ps, err := pngsink.New(exportPNGDirFlag, `frame`, rsz, s.cfg.Preview.Scale)
			if err != nil {
				return err
			}
			flushers = append(flushers, ps)
		}
		r, _, err := s.newRenderer(flushers, face.SetSleeper(gs))
		if err != nil {
			return err
		}
		if err := oledface.Play(s.ctx, r, names...); err != nil {
			return err
		}
		if len(exportGIFFlag) > 0 {
			return gs.WriteFile(exportGIFFlag)
		}
		return nil
	}
}

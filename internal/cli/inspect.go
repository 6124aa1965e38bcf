package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

var sectorHeaders = []string{"#", "Quadrant", "Start", "End", "Width", "Fraction", "Arrow", "Length"}

// inspectCommand prints the computed sector geometry of a configuration.
func (c *CLI) inspectCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "inspect [config.toml]",
		Short: "Print the sector table of a magnet layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := diagram.ParseMode(mode)
			if err != nil {
				return err
			}
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return c.runInspect(cmd.Context(), input, m)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(diagram.ModeQuadrant), "diagram mode: quadrant, full")
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, mode diagram.Mode) error {
	cfg := magnet.MagnetIV()
	name := presetName
	if input != "" {
		var err error
		if cfg, err = c.newRunner().Load(ctx, input); err != nil {
			return err
		}
		name = input
	}

	rows, err := sectorRows(cfg, mode)
	if err != nil {
		return err
	}

	p := cfg.Display()
	fmt.Fprintln(stdout, StyleTitle.Render(name))
	printKeyValue("Radii", fmt.Sprintf("%g to %g m", cfg.InnerRadius, cfg.OuterRadius))
	printKeyValue("Span", diagram.FormatDegrees(cfg.TotalSpanDegrees))
	printKeyValue("Sectors", StyleNumber.Render(strconv.Itoa(cfg.SectorCount())))
	printKeyValue("Axis limit", fmt.Sprintf("%.4g (%s)", p.Scale*cfg.Limit(), p.XLabel))
	printKeyValue("Mode", string(mode))
	printNewline()
	printTable(sectorHeaders, rows)

	if cfg.TotalSpanDegrees != diagram.MaxMirrorSpan && mode == diagram.ModeFull {
		printWarning("span %s does not tile the full circle", diagram.FormatDegrees(cfg.TotalSpanDegrees))
	}
	return nil
}

// sectorRows lays out cfg and formats one table row per sector, mirrored
// into all four quadrants in full mode.
func sectorRows(cfg magnet.Config, mode diagram.Mode) ([][]string, error) {
	sectors, err := geometry.Sectors(cfg)
	if err != nil {
		return nil, err
	}
	if mode == diagram.ModeFull {
		if err := geometry.CheckMirrorSpan(cfg.TotalSpanDegrees); err != nil {
			return nil, err
		}
		sectors = geometry.MirrorToFullCircle(sectors)
	}

	rows := make([][]string, len(sectors))
	for i, s := range sectors {
		rows[i] = []string{
			strconv.Itoa(s.Index),
			s.Quadrant.String(),
			diagram.FormatDegrees(s.StartAngle),
			diagram.FormatDegrees(s.EndAngle),
			diagram.FormatDegrees(s.Width()),
			strconv.FormatFloat(cfg.SectorFractions[s.Index], 'g', 4, 64) + "%",
			diagram.FormatDegrees(geometry.NormalizeDegrees(s.ArrowAngle)),
			strconv.FormatFloat(s.ArrowLength, 'f', 1, 64),
		}
	}
	return rows, nil
}

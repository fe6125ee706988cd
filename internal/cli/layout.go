package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltree/layout"
)

type layoutFlags struct {
	width       float64
	levelHeight float64
}

// newLayoutCommand creates the "layout" command.
func newLayoutCommand(a *app) *cobra.Command {
	flags := &layoutFlags{}

	cmd := &cobra.Command{
		Use:   "layout [values...]",
		Short: "Print drawing coordinates for each node",
		Long: `Compute a 2-D layout for the tree: each node is centered in its parent's
half of the canvas, one row per depth.

Examples:
  lvltree layout "1,2,3,null,4"
  lvltree layout 1 2 3 --width 800 --level-height 100 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLayout(cmd, args, flags)
		},
	}
	cmd.Flags().Float64Var(&flags.width, "width", layout.DefaultWidth, "Canvas width")
	cmd.Flags().Float64Var(&flags.levelHeight, "level-height", layout.DefaultLevelHeight, "Distance between depths")

	return cmd
}

// layoutOutput is the JSON shape of the layout command.
type layoutOutput struct {
	Width     float64           `json:"width"`
	Height    float64           `json:"height"`
	Positions []layout.Position `json:"positions"`
	Edges     []layout.Edge     `json:"edges"`
}

func (a *app) runLayout(cmd *cobra.Command, args []string, flags *layoutFlags) error {
	if flags.width <= 0 || flags.levelHeight <= 0 {
		return &ExitError{Code: ExitGeneralError, Err: errors.New("--width and --level-height must be > 0")}
	}
	t, err := a.buildFromArgs(cmd, args)
	if err != nil {
		return err
	}

	pos := layout.Compute(t, layout.WithWidth(flags.width), layout.WithLevelHeight(flags.levelHeight))
	res := layoutOutput{
		Width:     flags.width,
		Height:    layout.Height(pos, flags.levelHeight),
		Positions: pos,
		Edges:     layout.Edges(t, pos),
	}

	out := cmd.OutOrStdout()
	if a.flags.json {
		return writeJSON(out, res)
	}
	fmt.Fprintf(out, "canvas %gx%g\n", res.Width, res.Height)
	for _, p := range pos {
		fmt.Fprintf(out, "%g\tdepth=%d\tx=%g\ty=%g\n", p.Value, p.Depth, p.X, p.Y)
	}

	return nil
}

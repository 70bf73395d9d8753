package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vladelaina/catime-notes/internal/markdown"
	"github.com/vladelaina/catime-notes/internal/render"
	"github.com/vladelaina/catime-notes/internal/surface"
)

// Terminal layout defaults, in columns
const (
	DefaultColumns    = 80
	TerminalIndent    = 2
	TerminalWrapSlack = 1
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		width int
		ansi  bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Lay out notes for the terminal",
		Long:  "Render markdown release notes into wrapped terminal text. Reads stdin when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= TerminalWrapSlack {
				return fmt.Errorf("width must be greater than %d, got %d", TerminalWrapSlack, width)
			}
			src, err := readInput(cmd, inputArg(args))
			if err != nil {
				return err
			}
			doc, err := opts.parseNotes(src)
			if err != nil {
				return err
			}

			cells := renderTerminal(doc, width)
			if ansi {
				fmt.Fprintln(cmd.OutOrStdout(), cells.ANSI())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), cells.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", DefaultColumns, "wrap width in columns")
	cmd.Flags().BoolVar(&ansi, "ansi", false, "emit bold, italic and link colors as ANSI escapes")
	return cmd
}

// renderTerminal paints doc onto a character grid width columns wide
func renderTerminal(doc *markdown.Document, width int) *surface.Cells {
	cells := surface.NewCells()
	engine := render.NewEngine(render.Options{
		ListIndent: TerminalIndent,
		WrapMargin: TerminalWrapSlack,
	})
	engine.Paint(cells, doc, markdown.Rect{Right: float32(width), Bottom: math.MaxFloat32})
	return cells
}

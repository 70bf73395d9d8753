package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/export"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		output      string
		profilePath string
		width       int
		scale       float32
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render notes to a PNG image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := inputArg(args)

			profile := config.DefaultProfile()
			if profilePath != "" {
				loaded, err := config.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				profile = loaded
			}
			if cmd.Flags().Changed("width") {
				profile.Width = width
			}
			if cmd.Flags().Changed("scale") {
				profile.Scale = scale
			}

			if output == "" {
				output = defaultExportPath(input)
			}

			src, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			if opts.debug {
				if _, err := opts.parseNotes(src); err != nil {
					return err
				}
			}

			img, err := export.RenderImage(cmd.Context(), src, profile, nil)
			if err != nil {
				return err
			}
			if err := export.WritePNG(output, img); err != nil {
				return err
			}

			b := img.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d×%d)\n", output, b.Dx(), b.Dy())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <input>-notes.png)")
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "YAML render profile")
	cmd.Flags().IntVar(&width, "width", config.DefaultImageWidth, "image width in logical pixels")
	cmd.Flags().Float32Var(&scale, "scale", 1, "pixel density multiplier")
	return cmd
}

// defaultExportPath names the image after the input file
func defaultExportPath(input string) string {
	if input == "" || input == "-" {
		return export.DefaultTitle + export.NotesSuffix + export.OutputExtensionPNG
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + export.NotesSuffix + export.OutputExtensionPNG
}

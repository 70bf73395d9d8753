package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vladelaina/catime-notes/internal/markdown"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options shared by every subcommand
type rootOptions struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "catime-notes",
		Short:         "Render and check Catime release notes",
		Version:       version,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log parsed annotations")

	rootCmd.AddCommand(
		newRenderCmd(opts),
		newExportCmd(opts),
		newCheckCmd(opts),
		newViewCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catime-notes %s\n", version)
		},
	}
}

// readInput returns the contents of path, or of stdin when path is "-" or empty
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read notes: %w", err)
	}
	return string(data), nil
}

// parseNotes parses src and dumps the annotations when debugging
func (o *rootOptions) parseNotes(src string) (*markdown.Document, error) {
	doc, err := markdown.Parse(src)
	if err != nil {
		return nil, err
	}
	if o.debug {
		log.Printf("Parsed notes: %s", doc.Summary())
		for i, link := range doc.Links {
			log.Printf("  link %d [%d,%d) %s", i, link.Start, link.End, link.URL)
		}
		for i, heading := range doc.Headings {
			log.Printf("  heading %d [%d,%d) level %d", i, heading.Start, heading.End, heading.Level)
		}
	}
	return doc, nil
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

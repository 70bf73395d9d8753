package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vladelaina/catime-notes/internal/model"
	"github.com/vladelaina/catime-notes/internal/platform"
	"github.com/vladelaina/catime-notes/internal/update"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var (
		current    string
		prerelease bool
		repo       string
		apiURL     string
		retries    int
		showNotes  bool
		width      int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check GitHub for a newer Catime release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher := platform.NewReleaseParserService()
			if apiURL != "" {
				fetcher.SetBaseURL(apiURL)
			}
			if repo != "" {
				owner, name, ok := strings.Cut(repo, "/")
				if !ok || owner == "" || name == "" {
					return fmt.Errorf("repository must be owner/name, got %q", repo)
				}
				fetcher.SetRepository(owner, name)
			}

			svc := update.NewService(current, fetcher)
			svc.SetIncludePrerelease(prerelease)
			svc.SetRetryPolicy(retries, update.DefaultRetryDelay)
			if opts.debug {
				svc.SetUpdateCallback(func(check *model.UpdateCheck) {
					log.Printf("Check %s: %s (attempts %d)", check.ID, check.Status, check.Attempts)
				})
			}

			check, err := svc.Check(cmd.Context())
			if err != nil {
				if errors.Is(err, platform.ErrNoRelease) {
					fmt.Fprintln(cmd.OutOrStdout(), "No release published")
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			switch check.Status {
			case model.CheckStatusUpdateAvailable:
				fmt.Fprintf(out, "Update available: %s -> %s\n", check.CurrentVersion, check.LatestVersion())
				fmt.Fprintf(out, "Download: %s\n", check.Latest.GetDownloadTarget())
			default:
				fmt.Fprintf(out, "Up to date: %s (latest %s)\n", check.CurrentVersion, check.LatestVersion())
			}
			if !check.Latest.PublishedAt.IsZero() {
				fmt.Fprintf(out, "Published: %s\n", check.Latest.PublishedAt.Format(time.DateOnly))
			}

			if showNotes {
				doc, err := opts.parseNotes(check.Latest.NotesOrDefault())
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderTerminal(doc, width).String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", version, "version to compare against")
	cmd.Flags().BoolVar(&prerelease, "prerelease", false, "include beta and rc builds")
	cmd.Flags().StringVar(&repo, "repo", "", "repository as owner/name (default vladelaina/Catime)")
	cmd.Flags().StringVar(&apiURL, "api", "", "GitHub API base URL")
	cmd.Flags().IntVar(&retries, "retries", update.DefaultMaxRetries, "retries after a failed request")
	cmd.Flags().BoolVar(&showNotes, "notes", false, "print the release notes")
	cmd.Flags().IntVarP(&width, "width", "w", DefaultColumns, "wrap width for --notes")
	return cmd
}

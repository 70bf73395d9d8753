package model

import (
	"strings"
	"time"
)

// NoReleaseNotes is shown when a release has an empty body
const NoReleaseNotes = "No release notes available."

// Release describes a published version of the application
type Release struct {
	Version     string // without leading "v"
	TagName     string
	Name        string
	DownloadURL string
	PageURL     string
	Notes       string // markdown body
	Prerelease  bool
	PublishedAt time.Time
}

// NotesOrDefault returns the release notes, or a placeholder when empty
func (r *Release) NotesOrDefault() string {
	if r == nil || strings.TrimSpace(r.Notes) == "" {
		return NoReleaseNotes
	}
	return r.Notes
}

// GetDownloadTarget returns the asset URL, falling back to the release page
func (r *Release) GetDownloadTarget() string {
	if r == nil {
		return ""
	}
	if r.DownloadURL != "" {
		return r.DownloadURL
	}
	return r.PageURL
}

// UpdateCheck is the result of comparing the running version to the latest release
type UpdateCheck struct {
	ID             string
	CurrentVersion string
	Latest         *Release
	Status         CheckStatus
	Attempts       int
	LastError      string
	StartedAt      time.Time
	CheckedAt      time.Time
}

// HasUpdate returns true when a newer release was found
func (uc *UpdateCheck) HasUpdate() bool {
	return uc != nil && uc.Status == CheckStatusUpdateAvailable && uc.Latest != nil
}

// LatestVersion returns the version of the latest release, or ""
func (uc *UpdateCheck) LatestVersion() string {
	if uc == nil || uc.Latest == nil {
		return ""
	}
	return uc.Latest.Version
}

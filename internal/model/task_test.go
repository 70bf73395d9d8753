package model

import (
	"testing"
	"time"
)

func TestExportTask_GetDisplayName(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		id       string
		expected string
	}{
		{"Catime 1.2.0", "/tmp/notes-notes.png", "id-1", "Catime 1.2.0"},
		{"", "/tmp/CHANGELOG-notes.png", "id-2", "CHANGELOG-notes"},
		{"", `C:\exports\v1-notes.png`, "id-3", "v1-notes"},
		{"", "", "id-4", "id-4"},
	}

	for _, test := range tests {
		task := &ExportTask{ID: test.id, Title: test.title, OutputPath: test.output}
		if result := task.GetDisplayName(); result != test.expected {
			t.Errorf("GetDisplayName() with title='%s', output='%s' = '%s', expected '%s'",
				test.title, test.output, result, test.expected)
		}
	}
}

func TestExportTask_GetSizeString(t *testing.T) {
	task := &ExportTask{}
	if got := task.GetSizeString(); got != "—" {
		t.Errorf("Expected '—' before rendering, got %s", got)
	}

	task.Width, task.Height = 480, 900
	if got := task.GetSizeString(); got != "480×900" {
		t.Errorf("Expected '480×900', got %s", got)
	}
}

func TestExportTask_GetElapsed(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	task := &ExportTask{StartedAt: start, FinishedAt: start.Add(1500 * time.Millisecond)}

	if got := task.GetElapsed(); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v", got)
	}
	if got := (&ExportTask{}).GetElapsed(); got != 0 {
		t.Errorf("Expected zero elapsed for unstarted task, got %v", got)
	}
}

func TestRelease_NotesOrDefault(t *testing.T) {
	tests := []struct {
		release  *Release
		expected string
	}{
		{nil, NoReleaseNotes},
		{&Release{Notes: "  \n"}, NoReleaseNotes},
		{&Release{Notes: "# Fixes"}, "# Fixes"},
	}

	for _, test := range tests {
		if result := test.release.NotesOrDefault(); result != test.expected {
			t.Errorf("NotesOrDefault() = %q, expected %q", result, test.expected)
		}
	}
}

func TestRelease_GetDownloadTarget(t *testing.T) {
	r := &Release{PageURL: "https://github.com/x/y/releases/tag/v1"}
	if got := r.GetDownloadTarget(); got != r.PageURL {
		t.Errorf("Expected page URL fallback, got %s", got)
	}
	r.DownloadURL = "https://github.com/x/y/releases/download/v1/app.exe"
	if got := r.GetDownloadTarget(); got != r.DownloadURL {
		t.Errorf("Expected asset URL, got %s", got)
	}
}

func TestUpdateCheck_HasUpdate(t *testing.T) {
	var none *UpdateCheck
	if none.HasUpdate() || none.LatestVersion() != "" {
		t.Error("Expected nil check to have no update")
	}

	check := &UpdateCheck{Status: CheckStatusUpToDate, Latest: &Release{Version: "1.0.0"}}
	if check.HasUpdate() {
		t.Error("Expected no update when up to date")
	}

	check.Status = CheckStatusUpdateAvailable
	if !check.HasUpdate() || check.LatestVersion() != "1.0.0" {
		t.Errorf("Expected update to 1.0.0, got %v %s", check.HasUpdate(), check.LatestVersion())
	}
}

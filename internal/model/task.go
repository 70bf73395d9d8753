package model

import (
	"fmt"
	"strings"
	"time"
)

// ExportTask represents rendering a set of notes into an image file
type ExportTask struct {
	ID         string
	Title      string // release or file the notes belong to
	OutputPath string
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	Width      int     // image width in pixels
	Height     int     // image height in pixels
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayName returns title or output filename in order of preference
func (et *ExportTask) GetDisplayName() string {
	if et.Title != "" {
		return et.Title
	}

	if et.OutputPath != "" {
		// Extract just the filename without path (support both / and \ separators)
		parts := strings.FieldsFunc(et.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}
	return et.ID
}

// GetSizeString returns the image dimensions, or "—" before rendering
func (et *ExportTask) GetSizeString() string {
	if et.Width <= 0 || et.Height <= 0 {
		return "—"
	}
	return fmt.Sprintf("%d×%d", et.Width, et.Height)
}

// GetElapsed returns how long the task ran, or has been running
func (et *ExportTask) GetElapsed() time.Duration {
	if et.StartedAt.IsZero() {
		return 0
	}
	if et.FinishedAt.IsZero() {
		return time.Since(et.StartedAt)
	}
	return et.FinishedAt.Sub(et.StartedAt)
}

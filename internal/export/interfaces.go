package export

import (
	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	StartExport(title, notes, outputPath string) (*model.ExportTask, error)
	StartFileExport(inputPath string) (*model.ExportTask, error)
	StopExport(taskID string) error
	GetTask(taskID string) (*model.ExportTask, bool)
	GetAllTasks() []*model.ExportTask

	// SetProfile and SetOutputDirectory affect exports started afterwards
	SetProfile(profile config.Profile)
	SetOutputDirectory(dir string)
}

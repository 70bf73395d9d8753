package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/model"
	"github.com/vladelaina/catime-notes/internal/platform"
)

// Export constants
const (
	// Output suffix
	NotesSuffix = "-notes"

	OutputExtensionPNG = ".png"
	TaskIDPrefix       = "export-"
	DefaultTitle       = "release"
	maxFileNameLength  = 64
)

// ErrTaskNotFound is returned for an unknown task ID
var ErrTaskNotFound = errors.New("export task not found")

// Service handles exporting notes to images
type Service struct {
	tasks      map[string]*model.ExportTask
	tasksMutex sync.RWMutex
	outputDir  string
	profile    config.Profile
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service writing into outputDir
func NewService(outputDir string, profile config.Profile) *Service {
	return &Service{
		tasks:     make(map[string]*model.ExportTask),
		outputDir: outputDir,
		profile:   profile,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.onUpdate = callback
}

// SetProfile replaces the render profile used by exports started afterwards
func (s *Service) SetProfile(profile config.Profile) {
	s.tasksMutex.Lock()
	s.profile = profile
	s.tasksMutex.Unlock()
}

// SetOutputDirectory changes where titled exports are written
func (s *Service) SetOutputDirectory(dir string) {
	s.tasksMutex.Lock()
	s.outputDir = dir
	s.tasksMutex.Unlock()
}

// StartExport renders notes into outputPath. An empty outputPath places the
// image in the output directory, named after the title.
func (s *Service) StartExport(title, notes, outputPath string) (*model.ExportTask, error) {
	if outputPath == "" {
		s.tasksMutex.RLock()
		outputDir := s.outputDir
		s.tasksMutex.RUnlock()

		if outputDir == "" {
			return nil, errors.New("no output directory configured")
		}
		if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		outputPath = filepath.Join(outputDir, sanitizeFileName(title)+NotesSuffix+OutputExtensionPNG)
	}
	return s.start(title, notes, outputPath)
}

// StartFileExport renders a markdown file into an image next to it
func (s *Service) StartFileExport(inputPath string) (*model.ExportTask, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file does not exist: %s", inputPath)
		}
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return s.start(title, string(data), generateOutputPath(inputPath))
}

func (s *Service) start(title, notes, outputPath string) (*model.ExportTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check if an export is already writing this file
	for _, task := range s.tasks {
		if task.OutputPath == outputPath && task.Status.IsActive() {
			return nil, fmt.Errorf("export already in progress for file: %s", outputPath)
		}
	}

	task := &model.ExportTask{
		ID:         generateTaskID(),
		Title:      title,
		OutputPath: outputPath,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}
	s.tasks[task.ID] = task

	// Start export in background
	go s.runExport(task, notes, s.profile)

	return task, nil
}

// StopExport stops a running export task
func (s *Service) StopExport(taskID string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}

	if !task.Status.IsActive() && task.Status != model.TaskStatusPending {
		return fmt.Errorf("export task is not active: %s", task.Status)
	}

	// Set stopping status
	task.Status = model.TaskStatusStopping
	s.notifyUpdate(task)

	return nil
}

// runExport performs the actual rendering
func (s *Service) runExport(task *model.ExportTask, notes string, profile config.Profile) {
	s.tasksMutex.Lock()
	if task.Status == model.TaskStatusStopping {
		task.Status = model.TaskStatusStopped
		task.FinishedAt = time.Now()
		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
		return
	}
	task.Status = model.TaskStatusStarting
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	// Create context for cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Monitor for stop requests
	go func() {
		for {
			s.tasksMutex.RLock()
			status := task.Status
			s.tasksMutex.RUnlock()

			if status == model.TaskStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() || ctx.Err() != nil {
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}()

	s.tasksMutex.Lock()
	if task.Status == model.TaskStatusStarting {
		task.Status = model.TaskStatusRendering
	}
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	img, err := RenderImage(ctx, notes, profile, func(fraction float64) {
		s.setProgress(task, fraction)
	})
	if err == nil {
		s.tasksMutex.Lock()
		task.Width = img.Bounds().Dx()
		task.Height = img.Bounds().Dy()
		s.tasksMutex.Unlock()
		err = WritePNG(task.OutputPath, img)
	}

	// Handle result
	s.tasksMutex.Lock()
	switch {
	case errors.Is(err, context.Canceled) || task.Status == model.TaskStatusStopping:
		task.Status = model.TaskStatusStopped
		// Remove partial output file
		os.Remove(task.OutputPath)
	case err != nil:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		log.Printf("Export failed for task %s: %v", task.ID, err)
	default:
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// setProgress records render progress
func (s *Service) setProgress(task *model.ExportTask, fraction float64) {
	s.tasksMutex.Lock()
	task.Progress = fraction
	task.Percent = int(fraction * 100)
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// GetTask returns an export task by ID
func (s *Service) GetTask(taskID string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ExportTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateOutputPath generates the output path for an exported file
func generateOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	baseName := strings.TrimSuffix(inputPath, ext)
	return baseName + NotesSuffix + OutputExtensionPNG
}

// sanitizeFileName keeps letters, digits, dots and dashes
func sanitizeFileName(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
		if b.Len() >= maxFileNameLength {
			break
		}
	}
	name := strings.Trim(b.String(), "._")
	if name == "" {
		return DefaultTitle
	}
	return name
}

// generateTaskID generates a unique task ID using UUID v7
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}

package model

// TaskStatus represents the status of an export task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the task is in the process of starting
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusRendering means the notes are being laid out and drawn
	TaskStatusRendering TaskStatus = "Rendering"

	// TaskStatusStopping means the task is in the process of stopping
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the task was stopped by user
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusRendering || ts == TaskStatusStopping
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}

// CheckStatus represents the state of an update check
type CheckStatus string

const (
	// CheckStatusPending means the check has not run yet
	CheckStatusPending CheckStatus = "Pending"

	// CheckStatusChecking means the release metadata is being fetched
	CheckStatusChecking CheckStatus = "Checking"

	// CheckStatusUpToDate means no newer release exists
	CheckStatusUpToDate CheckStatus = "UpToDate"

	// CheckStatusUpdateAvailable means a newer release was found
	CheckStatusUpdateAvailable CheckStatus = "UpdateAvailable"

	// CheckStatusError means the check failed
	CheckStatusError CheckStatus = "Error"
)

// String returns the string representation of CheckStatus
func (cs CheckStatus) String() string {
	return string(cs)
}

// IsFinished returns true once the check produced a result or failed
func (cs CheckStatus) IsFinished() bool {
	return cs == CheckStatusUpToDate || cs == CheckStatusUpdateAvailable || cs == CheckStatusError
}

package model

import "testing"

func TestTaskStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusStarting, true},
		{TaskStatusRendering, true},
		{TaskStatusStopping, true},
		{TaskStatusStopped, false},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusStarting, false},
		{TaskStatusRendering, false},
		{TaskStatusStopping, false},
		{TaskStatusStopped, true},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestCheckStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   CheckStatus
		expected bool
	}{
		{CheckStatusPending, false},
		{CheckStatusChecking, false},
		{CheckStatusUpToDate, true},
		{CheckStatusUpdateAvailable, true},
		{CheckStatusError, true},
	}

	for _, test := range tests {
		if result := test.status.IsFinished(); result != test.expected {
			t.Errorf("CheckStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

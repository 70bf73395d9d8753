package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}
}

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Skipf("No user config directory available: %v", err)
	}
	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected directory to end with %s, got: %s", AppDirName, dir)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://github.com/vladelaina/Catime", false},
		{"http://example.com/a?b=c", false},
		{"mailto:someone@example.com", false},
		{"HTTPS://EXAMPLE.COM", false},
		{"", true},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"relative/path", true},
	}

	for _, test := range tests {
		_, err := ValidateURL(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
		}
	}

	if _, err := ValidateURL("ftp://x"); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("Expected ErrUnsupportedScheme, got %v", err)
	}
}

func TestOpenURL_UsesSystemHandler(t *testing.T) {
	var gotName string
	var gotArgs []string
	original := commandRunner
	commandRunner = func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}
	defer func() { commandRunner = original }()

	if err := OpenURL("https://example.com/notes"); err != nil {
		if strings.Contains(err.Error(), "unsupported operating system") {
			t.Skipf("No URL handler for %s", runtime.GOOS)
		}
		t.Fatalf("OpenURL returned error: %v", err)
	}
	if gotName == "" {
		t.Fatal("Expected a command to be started")
	}
	if gotArgs[len(gotArgs)-1] != "https://example.com/notes" {
		t.Errorf("Expected URL as last argument, got %v", gotArgs)
	}
}

func TestOpenURL_RejectsUnsafeScheme(t *testing.T) {
	called := false
	original := commandRunner
	commandRunner = func(name string, args ...string) error {
		called = true
		return nil
	}
	defer func() { commandRunner = original }()

	if err := OpenURL("file:///etc/passwd"); err == nil {
		t.Error("Expected error for file URL")
	}
	if called {
		t.Error("No command should run for rejected URLs")
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	if err := OpenFileWithDefaultApp(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

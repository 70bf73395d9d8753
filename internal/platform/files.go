package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	RundllCommand   = "rundll32"
	AndroidAM       = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsURLHandler  = "url.dll,FileProtocolHandler"
)

// AppDirName is the directory name used under the user config directory
const AppDirName = "catime-notes"

// AllowedURLSchemes lists the schemes OpenURL passes to the system
var AllowedURLSchemes = []string{"http", "https", "mailto"}

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrUnsupportedScheme is returned for links that are not web or mail links
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// commandRunner starts external commands; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// ValidateURL checks that raw is an absolute URL with an allowed scheme
func ValidateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty URL")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	scheme := strings.ToLower(u.Scheme)
	for _, allowed := range AllowedURLSchemes {
		if scheme == allowed {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
}

// OpenURL opens a web link with the system default handler
func OpenURL(raw string) error {
	u, err := ValidateURL(raw)
	if err != nil {
		return err
	}
	target := u.String()

	switch runtime.GOOS {
	case OSDarwin:
		return commandRunner(OpenCommand, target)
	case OSWindows:
		return commandRunner(RundllCommand, WindowsURLHandler, target)
	case OSLinux:
		return commandRunner(XDGOpenCommand, target)
	case OSAndroid:
		return commandRunner(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", target)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return commandRunner(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		return commandRunner(ExplorerCommand, WindowsSelectParam+absPath)
	case OSLinux:
		return openFileInManagerLinux(absPath)
	case OSAndroid:
		return commandRunner(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+filepath.Dir(absPath))
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	if err := commandRunner(XDGOpenCommand, dir); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return commandRunner(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return commandRunner(OpenCommand, absPath)
	case OSWindows:
		return commandRunner(RundllCommand, WindowsURLHandler, absPath)
	case OSLinux:
		return commandRunner(XDGOpenCommand, absPath)
	case OSAndroid:
		return commandRunner(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+absPath, "-t", "image/png")
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// existingAbsPath checks that filePath exists and returns it as an absolute path
func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %v", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	// Check multiple ways to detect Android environment
	isAndroid := runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so

	if isAndroid {
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// GetConfigDir returns the per-user configuration directory of the app
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

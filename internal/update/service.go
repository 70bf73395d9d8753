package update

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladelaina/catime-notes/internal/model"
	"github.com/vladelaina/catime-notes/internal/platform"
)

// Retry settings for release lookups
const (
	DefaultMaxRetries = 2
	DefaultRetryDelay = 2 * time.Second
	CheckIDPrefix     = "check-"
)

// Service checks for newer releases
type Service struct {
	currentVersion    string
	fetcher           ReleaseFetcher
	includePrerelease bool
	maxRetries        int
	retryDelay        time.Duration

	last      *model.UpdateCheck
	lastMutex sync.RWMutex
	onUpdate  func(*model.UpdateCheck) // callback for UI updates
}

// NewService creates a new update service for the running version
func NewService(currentVersion string, fetcher ReleaseFetcher) *Service {
	if fetcher == nil {
		fetcher = platform.NewReleaseParserService()
	}
	return &Service{
		currentVersion: NormalizeVersion(currentVersion),
		fetcher:        fetcher,
		maxRetries:     DefaultMaxRetries,
		retryDelay:     DefaultRetryDelay,
	}
}

// SetUpdateCallback sets the callback function for check updates
func (s *Service) SetUpdateCallback(callback func(*model.UpdateCheck)) {
	s.onUpdate = callback
}

// SetIncludePrerelease configures whether pre-releases are considered
func (s *Service) SetIncludePrerelease(include bool) {
	s.lastMutex.Lock()
	s.includePrerelease = include
	s.lastMutex.Unlock()
}

// SetRetryPolicy overrides the retry count and the initial backoff delay
func (s *Service) SetRetryPolicy(maxRetries int, delay time.Duration) {
	if maxRetries < 0 {
		maxRetries = 0
	}
	s.maxRetries = maxRetries
	s.retryDelay = delay
}

// CurrentVersion returns the running version without a "v" prefix
func (s *Service) CurrentVersion() string {
	return s.currentVersion
}

// LastCheck returns a copy of the most recent check
func (s *Service) LastCheck() (*model.UpdateCheck, bool) {
	s.lastMutex.RLock()
	defer s.lastMutex.RUnlock()
	if s.last == nil {
		return nil, false
	}
	snapshot := *s.last
	return &snapshot, true
}

// CheckAsync runs Check in the background; the result arrives via the callback
func (s *Service) CheckAsync(ctx context.Context) {
	go func() {
		if _, err := s.Check(ctx); err != nil {
			log.Printf("Warning: update check failed: %v", err)
		}
	}()
}

// Check fetches the newest release and compares it to the running version
func (s *Service) Check(ctx context.Context) (*model.UpdateCheck, error) {
	s.lastMutex.Lock()
	check := &model.UpdateCheck{
		ID:             generateCheckID(),
		CurrentVersion: s.currentVersion,
		Status:         model.CheckStatusChecking,
		StartedAt:      time.Now(),
	}
	s.last = check
	includePrerelease := s.includePrerelease
	s.lastMutex.Unlock()

	s.notifyUpdate(check)

	release, attempts, err := s.fetchWithRetry(ctx, check.ID, includePrerelease)

	s.lastMutex.Lock()
	check.Attempts = attempts
	check.CheckedAt = time.Now()
	switch {
	case err != nil:
		check.Status = model.CheckStatusError
		check.LastError = err.Error()
	case IsNewer(release.Version, s.currentVersion):
		check.Latest = release
		check.Status = model.CheckStatusUpdateAvailable
	default:
		check.Latest = release
		check.Status = model.CheckStatusUpToDate
	}
	s.lastMutex.Unlock()

	s.notifyUpdate(check)

	if err != nil {
		return check, err
	}
	if _, ok := ParseVersion(release.Version); !ok {
		log.Printf("Warning: release %q has an unparseable version", release.TagName)
	}
	return check, nil
}

// fetchWithRetry attempts the lookup with exponential backoff
func (s *Service) fetchWithRetry(ctx context.Context, checkID string, includePrerelease bool) (*model.Release, int, error) {
	var lastErr error
	delay := s.retryDelay

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			// Backoff delay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, attempt, ctx.Err()
			}
			delay *= 2

			log.Printf("Retrying update check %s, attempt %d", checkID, attempt+1)
		}

		release, err := s.fetcher.FetchNewest(ctx, includePrerelease)
		if err == nil {
			return release, attempt + 1, nil
		}

		lastErr = err
		log.Printf("Update check attempt %d failed for %s: %v", attempt+1, checkID, err)

		if ctx.Err() != nil {
			return nil, attempt + 1, ctx.Err()
		}
		// A missing release will not appear by retrying
		if errors.Is(err, platform.ErrNoRelease) {
			return nil, attempt + 1, err
		}
	}

	return nil, s.maxRetries + 1, lastErr
}

// notifyUpdate calls the update callback with a snapshot of the check
func (s *Service) notifyUpdate(check *model.UpdateCheck) {
	if s.onUpdate == nil {
		return
	}
	s.lastMutex.RLock()
	snapshot := *check
	s.lastMutex.RUnlock()
	s.onUpdate(&snapshot)
}

// generateCheckID generates a unique, time-ordered check ID
func generateCheckID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(CheckIDPrefix+"%d", time.Now().UnixNano())
	}
	return CheckIDPrefix + id.String()
}

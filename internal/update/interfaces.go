package update

import (
	"context"

	"github.com/vladelaina/catime-notes/internal/model"
)

// ReleaseFetcher supplies release metadata
type ReleaseFetcher interface {
	FetchNewest(ctx context.Context, includePrerelease bool) (*model.Release, error)
}

// Checker defines the interface for the update check service.
type Checker interface {
	SetUpdateCallback(func(*model.UpdateCheck))
	Check(ctx context.Context) (*model.UpdateCheck, error)
	CheckAsync(ctx context.Context)
	LastCheck() (*model.UpdateCheck, bool)
	CurrentVersion() string

	// SetIncludePrerelease configures whether beta and rc builds are offered
	SetIncludePrerelease(include bool)
}

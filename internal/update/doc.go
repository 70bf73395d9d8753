package update

// Package update checks GitHub for a newer release of the application. It
// manages check lifecycle, retry with backoff, version comparison including
// pre-release ordering, and propagates results to the UI via a callback.

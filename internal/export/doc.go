package export

// Package export renders release notes into PNG images. It manages export
// tasks, progress updates, cancellation and output file naming.

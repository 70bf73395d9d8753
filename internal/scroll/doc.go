package scroll

// Package scroll implements the per-panel scroll and click state machine:
// proportional thumb geometry, thumb drag, track paging, wheel scrolling and
// link activation. It knows nothing about the widget toolkit hosting it.

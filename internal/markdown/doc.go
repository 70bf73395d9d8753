package markdown

// Package markdown turns the release-notes dialect (headings, emphasis, code
// spans, bullet items and links) into a display buffer plus annotation ranges.
// All offsets are rune indices into Document.Text, never into the source.

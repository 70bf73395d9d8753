package platform

// Package platform contains OS/platform integration and external service glue:
// filesystem helpers, opening URLs and files with the system handler, and
// fetching release metadata from GitHub.

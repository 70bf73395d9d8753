package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It hosts the scrollable notes panel, wires update checks and exports to their
// services, and shows update, settings and notification dialogs. All UI strings
// are localized via Localization.

package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the canvas geometry controller
// and the project model, and renders the template canvas, properties panel,
// schedule, and settings. All UI strings are localized via Localization.

package plugin

// Package plugin parses .adsp audio-plugin descriptor files and keeps the
// registry of imported plugins. Descriptors are JSON sidecars produced by
// the plugin build pipeline; this app consumes their metadata for content
// planning and the pluginSize pair for the canvas media window.

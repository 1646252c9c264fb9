package geometry

// Package geometry implements the template canvas positioning engine: frame
// layout for the active content type, proportional re-anchoring of elements
// across frame changes, hit-testing, the drag/resize interaction state
// machine, and per-content-type state isolation. All mutations happen
// synchronously on the UI event thread; the package has no locking.

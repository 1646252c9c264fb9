package model

// Package model defines domain data structures used across the app: content
// types with their canvas aspect ratios, template elements, and the rectangle
// value type shared by the geometry engine and the UI. Structures are designed
// for direct use in the canvas controller and explicit state transitions.

package project

// Package project implements the .rtune project file: referenced assets, the
// content schedule, per-content-type canvas templates, and imported plugin
// descriptors, persisted together as a single JSON document. It also builds
// the structured export consumed by external AI content-generation tools.

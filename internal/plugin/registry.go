package plugin

import (
	"fmt"
	"sort"
	"time"
)

// Registry keeps the plugins imported into a project, keyed by plugin name.
type Registry struct {
	plugins  map[string]*Descriptor
	imported map[string]time.Time
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins:  make(map[string]*Descriptor),
		imported: make(map[string]time.Time),
	}
}

// Import parses a descriptor file and adds it to the registry, replacing any
// previous import of the same plugin.
func (r *Registry) Import(path string) (*Descriptor, error) {
	d, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	r.plugins[d.Name] = d
	r.imported[d.Name] = time.Now()
	return d, nil
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	d, ok := r.plugins[name]
	return d, ok
}

// Remove deletes a plugin from the registry.
func (r *Registry) Remove(name string) bool {
	if _, ok := r.plugins[name]; !ok {
		return false
	}
	delete(r.plugins, name)
	delete(r.imported, name)
	return true
}

// All returns the registered plugins sorted by name.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.plugins))
	for _, d := range r.plugins {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.plugins)
}

// GenerationData returns the structured block describing one plugin for the
// AI content-generation export.
func (r *Registry) GenerationData(name string) (map[string]any, error) {
	d, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("plugin not found: %s", name)
	}

	return map[string]any{
		"plugin_info": map[string]any{
			"name":                 d.Name,
			"title":                d.DisplayTitle(),
			"tagline":              d.Tagline,
			"company":              d.Company(),
			"version":              d.Version,
			"one_word_description": d.OneWord,
			"personality":          d.Personality,
		},
		"marketing_content": map[string]any{
			"short_description":    d.ShortDescription,
			"long_description":     d.LongDescription,
			"unique_selling_point": d.Unique,
			"problem_solved":       d.Problem,
			"wow_factor":           d.Wow,
			"categories":           d.Category,
			"use_cases":            d.IntendedUse,
		},
		"technical_specs": map[string]any{
			"input_type":     d.InputType,
			"has_sidechain":  d.HasSidechain,
			"tech_summary":   d.TechSummary,
			"key_parameters": d.KeyParameters,
		},
		"visual_branding": map[string]any{
			"highlight_color": d.HighlightColor,
			"plugin_size":     d.PluginSize,
		},
		"version_info": map[string]any{
			"current_version": d.Version,
			"changelog":       d.Changelog,
		},
	}, nil
}

// Descriptors exposes a copy of the registry content for project
// serialization. Mutating the returned map leaves the registry untouched.
func (r *Registry) Descriptors() map[string]*Descriptor {
	out := make(map[string]*Descriptor, len(r.plugins))
	for name, d := range r.plugins {
		out[name] = d
	}
	return out
}

// Load replaces the registry content from deserialized project data. The
// descriptors are copied, so later changes to the input do not reach the
// registry.
func (r *Registry) Load(plugins map[string]*Descriptor) {
	r.plugins = make(map[string]*Descriptor)
	r.imported = make(map[string]time.Time)
	for name, d := range plugins {
		if d == nil {
			continue
		}
		own := *d
		if own.Name == "" {
			own.Name = name
		}
		r.plugins[own.Name] = &own
	}
}

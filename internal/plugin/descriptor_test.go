package plugin

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDescriptor(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write descriptor fixture: %v", err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	path := writeDescriptor(t, "euclyd.adsp", `{
		"pluginName": "Euclyd",
		"pluginTitle": "Euclyd Sequencer",
		"pluginTagline": "Euclidean rhythms, instantly",
		"pluginVersion": "1.2.0",
		"pluginSize": [700, 400],
		"category": ["sequencer"],
		"has_sidechain": false,
		"components": [
			{"type": "header_company", "display_name": "Artista Audio"},
			{"type": "knob", "display_name": "Steps"}
		],
		"some_future_field": 42
	}`)

	d, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	if d.Name != "Euclyd" {
		t.Errorf("Expected name Euclyd, got %s", d.Name)
	}
	if d.DisplayTitle() != "Euclyd Sequencer" {
		t.Errorf("Expected display title Euclyd Sequencer, got %s", d.DisplayTitle())
	}
	if d.Company() != "Artista Audio" {
		t.Errorf("Expected company Artista Audio, got %s", d.Company())
	}
	if d.FilePath != path {
		t.Errorf("Expected FilePath %s, got %s", path, d.FilePath)
	}

	ratio, err := d.AspectRatio()
	if err != nil {
		t.Fatalf("AspectRatio failed: %v", err)
	}
	if ratio != 1.75 {
		t.Errorf("Expected aspect ratio 1.75, got %f", ratio)
	}
}

func TestParseFileNameFallback(t *testing.T) {
	path := writeDescriptor(t, "untitled.adsp", `{"pluginSize": [400, 400]}`)

	d, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if d.Name != "untitled" {
		t.Errorf("Expected name to fall back to file stem, got %s", d.Name)
	}
}

func TestParseFileErrors(t *testing.T) {
	if _, err := ParseFile("/nonexistent/plugin.adsp"); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := ParseFile(writeDescriptor(t, "plugin.json", `{}`)); err == nil {
		t.Error("Expected error for wrong extension")
	}
	if _, err := ParseFile(writeDescriptor(t, "broken.adsp", `{not json`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestAspectRatioErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing pluginSize", `{"pluginName": "A"}`},
		{"short pluginSize", `{"pluginName": "A", "pluginSize": [700]}`},
		{"zero height", `{"pluginName": "A", "pluginSize": [700, 0]}`},
	}

	for _, tt := range tests {
		d, err := ParseFile(writeDescriptor(t, "a.adsp", tt.content))
		if err != nil {
			t.Fatalf("%s: ParseFile failed: %v", tt.name, err)
		}
		if _, err := d.AspectRatio(); err == nil {
			t.Errorf("%s: expected AspectRatio error", tt.name)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	path := writeDescriptor(t, "verb.adsp", `{
		"pluginName": "VerbMachine",
		"pluginSize": [800, 400],
		"short_description": "A lush reverb"
	}`)

	d, err := r.Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if d.Name != "VerbMachine" {
		t.Fatalf("Unexpected plugin name %s", d.Name)
	}

	if _, ok := r.Get("VerbMachine"); !ok {
		t.Error("Imported plugin should be retrievable")
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 plugin, got %d", r.Len())
	}

	data, err := r.GenerationData("VerbMachine")
	if err != nil {
		t.Fatalf("GenerationData failed: %v", err)
	}
	marketing, ok := data["marketing_content"].(map[string]any)
	if !ok {
		t.Fatal("Expected marketing_content block")
	}
	if marketing["short_description"] != "A lush reverb" {
		t.Errorf("Unexpected short description: %v", marketing["short_description"])
	}

	if _, err := r.GenerationData("Nope"); err == nil {
		t.Error("Expected error for unknown plugin")
	}

	if !r.Remove("VerbMachine") {
		t.Error("Remove should report success")
	}
	if r.Remove("VerbMachine") {
		t.Error("Second remove should report failure")
	}
}

func TestRegistryLoad(t *testing.T) {
	r := NewRegistry()
	r.Load(map[string]*Descriptor{
		"Euclyd": {PluginSize: []float64{700, 400}},
		"empty":  nil,
	})

	d, ok := r.Get("Euclyd")
	if !ok {
		t.Fatal("Loaded plugin should be retrievable")
	}
	if d.Name != "Euclyd" {
		t.Errorf("Load should backfill name from key, got %q", d.Name)
	}
	if r.Len() != 1 {
		t.Errorf("Nil entries should be skipped, got %d plugins", r.Len())
	}
}

func TestRegistryContentIsOwned(t *testing.T) {
	r := NewRegistry()
	input := map[string]*Descriptor{
		"Euclyd": {Name: "Euclyd", Version: "1.0.0", PluginSize: []float64{700, 400}},
	}
	r.Load(input)

	// Mutating the input after Load does not reach the registry.
	input["Euclyd"].Version = "9.9.9"
	if d, _ := r.Get("Euclyd"); d.Version != "1.0.0" {
		t.Errorf("Load should copy descriptors, registry saw version %q", d.Version)
	}

	// Mutating the serialization view does not reach the registry either.
	snapshot := r.Descriptors()
	delete(snapshot, "Euclyd")
	snapshot["Ghost"] = &Descriptor{Name: "Ghost"}
	if r.Len() != 1 {
		t.Errorf("Descriptors should return a copy, registry has %d plugins", r.Len())
	}
	if _, ok := r.Get("Euclyd"); !ok {
		t.Error("Registry lost its plugin after mutating the snapshot")
	}
}

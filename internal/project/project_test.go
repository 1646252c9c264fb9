package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reeltune/reeltune/internal/geometry"
	"github.com/reeltune/reeltune/internal/model"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestNewProject(t *testing.T) {
	p := New("Euclyd Launch")

	if p.Metadata.Name != "Euclyd Launch" {
		t.Errorf("Expected project name, got %s", p.Metadata.Name)
	}
	if !p.Modified() {
		t.Error("A new project starts with unsaved changes")
	}
	if p.Path() != "" {
		t.Error("A new project has no path yet")
	}
}

func TestProjectSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := New("Euclyd Launch")

	// Plugin
	adsp := writeFixture(t, dir, "euclyd.adsp", `{
		"pluginName": "Euclyd",
		"pluginSize": [700, 400],
		"short_description": "Euclidean sequencing"
	}`)
	if _, err := p.Plugins.Import(adsp); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	// Asset
	media := writeFixture(t, dir, "demo.mp4", "fake video")
	asset, err := p.AddAsset(media)
	if err != nil {
		t.Fatalf("AddAsset failed: %v", err)
	}

	// Schedule
	post := p.Schedule.Add(&ScheduledPost{
		Date:        time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		ContentType: model.ContentReel,
		Title:       "Launch reel",
		AssetIDs:    []string{asset.ID},
	})

	// Canvas templates
	c := geometry.NewController()
	c.Resize(450, 800)
	c.SetTextContent(geometry.ElementTitle, "Euclyd is here")
	p.CaptureTemplates(c)

	path := filepath.Join(dir, "launch.rtune")
	if err := p.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if p.Modified() {
		t.Error("Save should clear the modified flag")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Metadata.Name != "Euclyd Launch" {
		t.Errorf("Name lost in round trip: %s", loaded.Metadata.Name)
	}
	if loaded.Modified() {
		t.Error("A loaded project starts clean")
	}

	if _, ok := loaded.Plugins.Get("Euclyd"); !ok {
		t.Error("Plugin lost in round trip")
	}

	got, ok := loaded.Asset(asset.ID)
	if !ok {
		t.Fatal("Asset lost in round trip")
	}
	if got.Kind != AssetVideo || got.Name != "demo.mp4" {
		t.Errorf("Asset drifted: %+v", got)
	}

	posts := loaded.Schedule.All()
	if len(posts) != 1 || posts[0].ID != post.ID || posts[0].Title != "Launch reel" {
		t.Errorf("Schedule drifted: %+v", posts)
	}

	snap, ok := loaded.Template(model.ContentReel)
	if !ok {
		t.Fatal("Template lost in round trip")
	}
	title, ok := snap.Elements[geometry.ElementTitle]
	if !ok {
		t.Fatal("Title element lost in template")
	}
	content, _ := title.TypeFields["content"].(string)
	if content != "Euclyd is here" {
		t.Errorf("Template content drifted: %q", content)
	}

	// Templates restore onto a fresh canvas controller.
	restored := geometry.NewController()
	restored.Resize(450, 800)
	loaded.ApplyTemplates(restored)
	e, _ := restored.State(model.ContentReel).Element(geometry.ElementTitle)
	if e.Content != "Euclyd is here" {
		t.Errorf("Restored canvas drifted: %q", e.Content)
	}
}

func TestSaveAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	p := New("ext test")

	if err := p.Save(filepath.Join(dir, "bare")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if filepath.Ext(p.Path()) != ProjectExt {
		t.Errorf("Expected %s extension, got %s", ProjectExt, p.Path())
	}
	if _, err := os.Stat(filepath.Join(dir, "bare"+ProjectExt)); err != nil {
		t.Errorf("Expected file with extension on disk: %v", err)
	}
}

func TestSaveDoesNotLeaveTempFile(t *testing.T) {
	dir := t.TempDir()
	p := New("tmp test")
	path := filepath.Join(dir, "p.rtune")

	if err := p.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file should be renamed away")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load("/nonexistent/p.rtune"); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := writeFixture(t, dir, "bad.rtune", "{broken")
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for malformed JSON")
	}

	future := writeFixture(t, dir, "future.rtune", `{"version": 99, "metadata": {"name": "x"}}`)
	if _, err := Load(future); err == nil {
		t.Error("Expected error for a newer format version")
	}
}

func TestRemoveAssetKeepsFile(t *testing.T) {
	dir := t.TempDir()
	p := New("assets")
	media := writeFixture(t, dir, "demo.png", "fake")

	a, err := p.AddAsset(media)
	if err != nil {
		t.Fatalf("AddAsset failed: %v", err)
	}

	if !p.RemoveAsset(a.ID) {
		t.Error("RemoveAsset should succeed")
	}
	if p.RemoveAsset(a.ID) {
		t.Error("Second remove should fail")
	}
	if _, err := os.Stat(media); err != nil {
		t.Error("Removing a reference must not delete the file")
	}
}

func TestExportAIDocument(t *testing.T) {
	dir := t.TempDir()
	p := New("Euclyd Launch")

	adsp := writeFixture(t, dir, "euclyd.adsp", `{
		"pluginName": "Euclyd",
		"pluginTitle": "Euclyd Sequencer",
		"pluginSize": [700, 400],
		"short_description": "Euclidean sequencing"
	}`)
	if _, err := p.Plugins.Import(adsp); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	p.Schedule.Add(&ScheduledPost{
		Date:        time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		ContentType: model.ContentReel,
		Title:       "Launch reel",
	})

	out := filepath.Join(dir, "export.json")
	if err := ExportAIDocument(p, "Euclyd", out); err != nil {
		t.Fatalf("ExportAIDocument failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}

	pluginBlock, ok := doc["plugin"].(map[string]any)
	if !ok {
		t.Fatal("Expected plugin block in export")
	}
	info, _ := pluginBlock["plugin_info"].(map[string]any)
	if info["title"] != "Euclyd Sequencer" {
		t.Errorf("Unexpected plugin title: %v", info["title"])
	}

	schedule, ok := doc["schedule"].([]any)
	if !ok || len(schedule) != 1 {
		t.Fatalf("Expected 1 schedule entry, got %v", doc["schedule"])
	}
	entry := schedule[0].(map[string]any)
	if entry["date"] != "2026-09-01" || entry["content_type"] != "reel" {
		t.Errorf("Schedule entry drifted: %v", entry)
	}

	if err := ExportAIDocument(p, "Unknown", out); err == nil {
		t.Error("Expected error for unknown plugin")
	}
}

func TestExportSkipsHiddenElements(t *testing.T) {
	dir := t.TempDir()
	p := New("Visibility Test")

	adsp := writeFixture(t, dir, "euclyd.adsp", `{
		"pluginName": "Euclyd",
		"pluginSize": [700, 400]
	}`)
	if _, err := p.Plugins.Import(adsp); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	c := geometry.NewController()
	c.Resize(450, 800)
	c.SetElementVisible(geometry.ElementSubtitle, false)
	p.CaptureTemplates(c)

	doc, err := BuildAIExport(p, "Euclyd")
	if err != nil {
		t.Fatalf("BuildAIExport failed: %v", err)
	}

	templates := doc["templates"].(map[string]any)
	reel := templates[model.ContentReel.String()].(map[string]any)
	zones := reel["zones"].(map[string]any)

	if _, ok := zones[geometry.ElementSubtitle]; ok {
		t.Error("Hidden subtitle should be excluded from the export")
	}
	if _, ok := zones[geometry.ElementTitle]; !ok {
		t.Error("Visible title should be exported")
	}
	if _, ok := zones[geometry.ElementPiP]; !ok {
		t.Error("Visible media window should be exported")
	}
}

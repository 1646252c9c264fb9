package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/reeltune/reeltune/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestProjectsDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetProjectsDirectory()
	if dir == "" {
		t.Error("Projects directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/projects"
	settings.SetProjectsDirectory(customDir)

	retrievedDir := settings.GetProjectsDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected projects directory %s, got %s", customDir, retrievedDir)
	}
}

func TestAutosaveMinutes(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	minutes := settings.GetAutosaveMinutes()
	if minutes != DefaultAutosaveMinutes {
		t.Errorf("Expected default autosave %d, got %d", DefaultAutosaveMinutes, minutes)
	}

	// Test setting custom value
	settings.SetAutosaveMinutes(15)
	if settings.GetAutosaveMinutes() != 15 {
		t.Errorf("Expected autosave 15, got %d", settings.GetAutosaveMinutes())
	}

	// Zero disables autosave and is preserved
	settings.SetAutosaveMinutes(0)
	if settings.GetAutosaveMinutes() != 0 {
		t.Error("Autosave 0 (disabled) should be preserved")
	}

	// Test boundary values
	settings.SetAutosaveMinutes(-5) // Should be clamped to 0
	if settings.GetAutosaveMinutes() != 0 {
		t.Error("Negative autosave should be clamped to 0")
	}

	settings.SetAutosaveMinutes(500) // Should be clamped to 60
	if settings.GetAutosaveMinutes() != MaxAutosaveMinutes {
		t.Errorf("Autosave should be clamped to %d", MaxAutosaveMinutes)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}
}

func TestLastProject(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastProject() != "" {
		t.Error("Last project should start empty")
	}

	settings.SetLastProject("/projects/euclyd.rtune")
	if settings.GetLastProject() != "/projects/euclyd.rtune" {
		t.Errorf("Unexpected last project %s", settings.GetLastProject())
	}
}

func TestRecentProjects(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.AddRecentProject("/p/a.rtune")
	settings.AddRecentProject("/p/b.rtune")
	settings.AddRecentProject("/p/a.rtune") // moves to front, no duplicate

	recent := settings.GetRecentProjects()
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent projects, got %d", len(recent))
	}
	if recent[0] != "/p/a.rtune" || recent[1] != "/p/b.rtune" {
		t.Errorf("Unexpected recent order: %v", recent)
	}

	// Empty paths are ignored
	settings.AddRecentProject("")
	if len(settings.GetRecentProjects()) != 2 {
		t.Error("Empty path should not be recorded")
	}
}

func TestRecentProjectsTrimmed(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	for i := 0; i < MaxRecentProjects+5; i++ {
		settings.AddRecentProject("/p/" + string(rune('a'+i)) + ".rtune")
	}

	if len(settings.GetRecentProjects()) != MaxRecentProjects {
		t.Errorf("Expected recent list trimmed to %d, got %d",
			MaxRecentProjects, len(settings.GetRecentProjects()))
	}
}

func TestDefaultContentType(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	ct := settings.GetDefaultContentType()
	if ct != model.ContentReel {
		t.Errorf("Expected default content type reel, got %s", ct)
	}

	// Test setting custom value
	settings.SetDefaultContentType(model.ContentTutorial)
	if settings.GetDefaultContentType() != model.ContentTutorial {
		t.Errorf("Expected tutorial, got %s", settings.GetDefaultContentType())
	}

	// Garbage stored values fall back to reel via parsing
	app.Preferences().SetString(KeyDefaultContentType, "hologram")
	if settings.GetDefaultContentType() != model.ContentReel {
		t.Error("Unknown stored content type should fall back to reel")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

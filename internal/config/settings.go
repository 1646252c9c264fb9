package config

import (
	"fyne.io/fyne/v2"

	"github.com/reeltune/reeltune/internal/model"
	"github.com/reeltune/reeltune/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyProjectsDir        = "projects_directory"
	KeyLanguage           = "app_language"
	KeyAutosaveMinutes    = "autosave_minutes"
	KeyLastProject        = "last_project"
	KeyRecentProjects     = "recent_projects"
	KeyDefaultContentType = "default_content_type"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultAutosaveMinutes = 5
	MaxAutosaveMinutes     = 60
	MaxRecentProjects      = 10
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetProjectsDirectory returns the configured projects directory
func (s *Settings) GetProjectsDirectory() string {
	dir := s.app.Preferences().String(KeyProjectsDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultProjectsDir()
		if err != nil {
			defaultDir = "/tmp/reeltune"
		}
		s.SetProjectsDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetProjectsDirectory sets the projects directory
func (s *Settings) SetProjectsDirectory(dir string) {
	s.app.Preferences().SetString(KeyProjectsDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutosaveMinutes returns the autosave interval in minutes. Zero disables
// autosave; negative stored values fall back to the default.
func (s *Settings) GetAutosaveMinutes() int {
	value := s.app.Preferences().IntWithFallback(KeyAutosaveMinutes, DefaultAutosaveMinutes)
	if value < 0 {
		s.SetAutosaveMinutes(DefaultAutosaveMinutes)
		return DefaultAutosaveMinutes
	}
	return value
}

// SetAutosaveMinutes sets the autosave interval, clamped to 0-60
func (s *Settings) SetAutosaveMinutes(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > MaxAutosaveMinutes {
		minutes = MaxAutosaveMinutes
	}
	s.app.Preferences().SetInt(KeyAutosaveMinutes, minutes)
}

// GetLastProject returns the path of the most recently open project
func (s *Settings) GetLastProject() string {
	return s.app.Preferences().String(KeyLastProject)
}

// SetLastProject records the path of the most recently open project
func (s *Settings) SetLastProject(path string) {
	s.app.Preferences().SetString(KeyLastProject, path)
}

// GetRecentProjects returns the recent project paths, most recent first
func (s *Settings) GetRecentProjects() []string {
	return s.app.Preferences().StringList(KeyRecentProjects)
}

// AddRecentProject pushes a project path to the front of the recent list,
// deduplicating and trimming to the maximum length.
func (s *Settings) AddRecentProject(path string) {
	if path == "" {
		return
	}

	recent := []string{path}
	for _, p := range s.GetRecentProjects() {
		if p == path {
			continue
		}
		recent = append(recent, p)
		if len(recent) >= MaxRecentProjects {
			break
		}
	}
	s.app.Preferences().SetStringList(KeyRecentProjects, recent)
}

// GetDefaultContentType returns the content type a new project opens with
func (s *Settings) GetDefaultContentType() model.ContentType {
	value := s.app.Preferences().String(KeyDefaultContentType)
	if value == "" {
		s.SetDefaultContentType(model.ContentReel)
		return model.ContentReel
	}
	return model.ParseContentType(value)
}

// SetDefaultContentType sets the content type a new project opens with
func (s *Settings) SetDefaultContentType(ct model.ContentType) {
	s.app.Preferences().SetString(KeyDefaultContentType, ct.String())
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

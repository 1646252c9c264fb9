package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/reeltune/reeltune/internal/geometry"
	"github.com/reeltune/reeltune/internal/model"
	"github.com/reeltune/reeltune/internal/plugin"
)

// ProjectExt is the file extension of project files
const ProjectExt = ".rtune"

// formatVersion is bumped when the project JSON layout changes incompatibly
const formatVersion = 1

// Metadata describes the project itself
type Metadata struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PluginName  string    `json:"plugin_name,omitempty"`
	Format      string    `json:"format,omitempty"`
	FPS         int       `json:"fps,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// Project is the in-memory model of one .rtune file
type Project struct {
	Metadata Metadata
	Plugins  *plugin.Registry
	Schedule *Schedule

	assets    map[string]*Asset
	sessions  map[string]*XplainPack
	templates map[model.ContentType]*geometry.StateSnapshot

	path     string
	modified bool
}

// projectFile is the on-disk JSON layout
type projectFile struct {
	Version   int                                           `json:"version"`
	Metadata  Metadata                                      `json:"metadata"`
	Assets    []*Asset                                      `json:"assets"`
	Sessions  []*XplainPack                                 `json:"sessions,omitempty"`
	Schedule  []*ScheduledPost                              `json:"schedule"`
	Templates map[model.ContentType]*geometry.StateSnapshot `json:"templates"`
	Plugins   map[string]*plugin.Descriptor                 `json:"plugins"`
}

// New creates an empty project
func New(name string) *Project {
	now := time.Now()
	return &Project{
		Metadata: Metadata{
			Name:       name,
			CreatedAt:  now,
			ModifiedAt: now,
		},
		Plugins:   plugin.NewRegistry(),
		Schedule:  NewSchedule(),
		assets:    make(map[string]*Asset),
		sessions:  make(map[string]*XplainPack),
		templates: make(map[model.ContentType]*geometry.StateSnapshot),
		modified:  true,
	}
}

// Path returns the file the project was loaded from or last saved to
func (p *Project) Path() string {
	return p.path
}

// Modified reports whether there are unsaved changes
func (p *Project) Modified() bool {
	return p.modified
}

// MarkModified flags the project as having unsaved changes
func (p *Project) MarkModified() {
	p.modified = true
}

// AddAsset probes a file and adds it to the project's asset references
func (p *Project) AddAsset(path string) (*Asset, error) {
	a, err := ProbeAsset(path)
	if err != nil {
		return nil, err
	}
	p.assets[a.ID] = a
	p.MarkModified()
	return a, nil
}

// ImportAsset copies a media file into assetsDir and registers the copy, so
// the project stays self-contained when the source file later moves.
func (p *Project) ImportAsset(srcPath, assetsDir string) (*Asset, error) {
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}
	dest, err := CopyIntoDir(srcPath, assetsDir)
	if err != nil {
		return nil, err
	}
	return p.AddAsset(dest)
}

// Asset returns an asset reference by ID
func (p *Project) Asset(id string) (*Asset, bool) {
	a, ok := p.assets[id]
	return a, ok
}

// RemoveAsset deletes an asset reference. The file on disk is untouched.
func (p *Project) RemoveAsset(id string) bool {
	if _, ok := p.assets[id]; !ok {
		return false
	}
	delete(p.assets, id)
	p.MarkModified()
	return true
}

// Assets returns the asset references sorted by name, then ID
func (p *Project) Assets() []*Asset {
	out := make([]*Asset, 0, len(p.assets))
	for _, a := range p.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CaptureTemplates stores the canvas controller's current per-content-type
// layouts on the project.
func (p *Project) CaptureTemplates(c *geometry.Controller) {
	p.templates = c.SnapshotAll()
	p.MarkModified()
}

// ApplyTemplates restores the stored layouts onto a canvas controller
func (p *Project) ApplyTemplates(c *geometry.Controller) {
	for _, snap := range p.templates {
		c.Restore(snap)
	}
}

// Template returns the stored layout for a content type
func (p *Project) Template(ct model.ContentType) (*geometry.StateSnapshot, bool) {
	snap, ok := p.templates[ct]
	return snap, ok
}

// Save writes the project as pretty-printed JSON. The file is written to a
// temporary sibling first and renamed into place, so a failed save never
// truncates an existing project.
func (p *Project) Save(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ProjectExt) {
		path += ProjectExt
	}

	p.Metadata.ModifiedAt = time.Now()
	file := projectFile{
		Version:   formatVersion,
		Metadata:  p.Metadata,
		Assets:    p.Assets(),
		Sessions:  p.Sessions(),
		Schedule:  p.Schedule.All(),
		Templates: p.templates,
		Plugins:   p.Plugins.Descriptors(),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace project file: %w", err)
	}

	p.path = path
	p.modified = false
	return nil
}

// Load reads a project file from disk
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}

	var file projectFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse project %s: %w", filepath.Base(path), err)
	}
	if file.Version > formatVersion {
		return nil, fmt.Errorf("project %s uses format version %d, this build supports up to %d",
			filepath.Base(path), file.Version, formatVersion)
	}

	p := New(file.Metadata.Name)
	p.Metadata = file.Metadata
	p.Plugins.Load(file.Plugins)
	p.Schedule.load(file.Schedule)
	for _, a := range file.Assets {
		if a == nil || a.ID == "" {
			continue
		}
		p.assets[a.ID] = a
	}
	for _, s := range file.Sessions {
		if s == nil || s.ID == "" {
			continue
		}
		p.sessions[s.ID] = s
	}
	if file.Templates != nil {
		p.templates = file.Templates
	}

	p.path = path
	p.modified = false
	return p, nil
}

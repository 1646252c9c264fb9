package project

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// XplainPack folder content tables. A pack folder carries one video/audio
// pair; extra files are ignored.
var (
	packVideoExtensions = []string{".mov", ".mp4", ".avi", ".mkv", ".m4v"}
	packAudioExtensions = []string{".mp3", ".wav", ".aac", ".m4a", ".flac"}
)

// packMetadataName is the optional metadata file inside a pack folder
const packMetadataName = "metadata.json"

// XplainPack is a session folder holding a synchronized video/audio pair
// plus optional metadata (transcript, transient markers) that feeds the AI
// content-generation export.
type XplainPack struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	FolderPath   string    `json:"folder_path"`
	VideoFile    string    `json:"video_file"`
	AudioFile    string    `json:"audio_file"`
	MetadataFile string    `json:"metadata_file,omitempty"`
	Duration     float64   `json:"duration,omitempty"`
	Transcript   string    `json:"transcript,omitempty"`
	Transients   []float64 `json:"transients,omitempty"`
	ImportedAt   time.Time `json:"imported_at"`
}

// packMetadata is the metadata.json layout inside a pack folder
type packMetadata struct {
	Transcript string    `json:"transcript"`
	Transients []float64 `json:"transients"`
	Duration   float64   `json:"duration"`
}

// ValidateXplainPack checks that a folder is a usable session: it must be a
// directory containing at least one video file and one audio file.
func ValidateXplainPack(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to read pack folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("pack path is not a directory: %s", dir)
	}
	if _, err := findPackFile(dir, packVideoExtensions, "video"); err != nil {
		return err
	}
	if _, err := findPackFile(dir, packAudioExtensions, "audio"); err != nil {
		return err
	}
	return nil
}

// findPackFile returns the alphabetically first file in dir matching one of
// the extensions, case-insensitively.
func findPackFile(dir string, exts []string, kind string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read pack folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if containsExt(exts, strings.ToLower(filepath.Ext(entry.Name()))) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no %s file found in %s", kind, dir)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}

// ImportXplainPack validates a pack folder and builds its session record.
// A malformed metadata.json is tolerated with a logged warning; the session
// then imports without transcript data.
func ImportXplainPack(dir string) (*XplainPack, error) {
	if err := ValidateXplainPack(dir); err != nil {
		return nil, err
	}

	video, _ := findPackFile(dir, packVideoExtensions, "video")
	audio, _ := findPackFile(dir, packAudioExtensions, "audio")

	pack := &XplainPack{
		ID:          newAssetID(),
		Name:        filepath.Base(dir),
		Description: fmt.Sprintf("XplainPack session from %s", filepath.Base(dir)),
		FolderPath:  dir,
		VideoFile:   video,
		AudioFile:   audio,
		ImportedAt:  time.Now(),
	}

	metaPath := filepath.Join(dir, packMetadataName)
	if data, err := os.ReadFile(metaPath); err == nil {
		var meta packMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			log.Printf("Warning: ignoring malformed %s in %s: %v", packMetadataName, dir, err)
		} else {
			pack.MetadataFile = metaPath
			pack.Transcript = meta.Transcript
			pack.Transients = meta.Transients
			pack.Duration = meta.Duration
		}
	}

	return pack, nil
}

// ImportSession imports an XplainPack folder and registers the session
func (p *Project) ImportSession(dir string) (*XplainPack, error) {
	pack, err := ImportXplainPack(dir)
	if err != nil {
		return nil, err
	}
	p.sessions[pack.ID] = pack
	p.MarkModified()
	log.Printf("Imported XplainPack session %s (%s)", pack.Name, pack.ID)
	return pack, nil
}

// Session returns a session by ID
func (p *Project) Session(id string) (*XplainPack, bool) {
	s, ok := p.sessions[id]
	return s, ok
}

// RemoveSession deletes a session record. The folder on disk is untouched.
func (p *Project) RemoveSession(id string) bool {
	if _, ok := p.sessions[id]; !ok {
		return false
	}
	delete(p.sessions, id)
	p.MarkModified()
	return true
}

// Sessions returns the sessions sorted by name, then ID
func (p *Project) Sessions() []*XplainPack {
	out := make([]*XplainPack, 0, len(p.sessions))
	for _, s := range p.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

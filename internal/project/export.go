package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// BuildAIExport assembles the structured document handed to external AI
// content-generation tools: plugin marketing and technical data, the canvas
// templates per content type, and the upcoming schedule.
func BuildAIExport(p *Project, pluginName string) (map[string]any, error) {
	pluginData, err := p.Plugins.GenerationData(pluginName)
	if err != nil {
		return nil, fmt.Errorf("failed to build export: %w", err)
	}

	// Templates export only the visible elements' zones; hidden elements are
	// layout state, not content the generation pipeline should fill.
	templates := make(map[string]any, len(p.templates))
	for ct, snap := range p.templates {
		zones := make(map[string]any, len(snap.Elements))
		for name, es := range snap.Elements {
			if !es.Visible {
				continue
			}
			zones[name] = map[string]any{
				"rect":        es.Rect,
				"enabled":     es.Enabled,
				"type_fields": es.TypeFields,
			}
		}
		templates[ct.String()] = map[string]any{
			"frame": snap.Frame,
			"zones": zones,
		}
	}

	// Session transcripts and transient markers give the generation pipeline
	// timing context for cut points.
	sessions := make([]map[string]any, 0, len(p.sessions))
	for _, s := range p.Sessions() {
		sessions = append(sessions, map[string]any{
			"name":       s.Name,
			"video_file": s.VideoFile,
			"audio_file": s.AudioFile,
			"transcript": s.Transcript,
			"transients": s.Transients,
			"duration":   s.Duration,
		})
	}

	schedule := make([]map[string]any, 0, p.Schedule.Len())
	for _, post := range p.Schedule.All() {
		schedule = append(schedule, map[string]any{
			"date":         post.Date.Format("2006-01-02"),
			"content_type": post.ContentType.String(),
			"title":        post.Title,
			"status":       string(post.Status),
			"notes":        post.Notes,
		})
	}

	return map[string]any{
		"generated_at": time.Now().Format(time.RFC3339),
		"project": map[string]any{
			"name":        p.Metadata.Name,
			"description": p.Metadata.Description,
			"plugin_name": pluginName,
		},
		"plugin":    pluginData,
		"templates": templates,
		"sessions":  sessions,
		"schedule":  schedule,
	}, nil
}

// ExportAIDocument writes the AI export document as pretty-printed JSON
func ExportAIDocument(p *Project, pluginName, path string) error {
	doc, err := BuildAIExport(p, pluginName)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/bhilliardga/canvex"
)

// Defaults mirroring the chat subsystem's token-safety caps.
const (
	defaultSummaryLimit = 10
	summaryDescChars    = 150
)

// DocSource is a directory of documents read through an external
// text-extraction capability.
type DocSource struct {
	Dir       string
	Glob      string // e.g. "*.pdf"
	Extractor canvex.TextExtractor
	Limit     int // max documents taken, 0 means all
}

// ContextBuilder assembles the immutable course-material context at startup
// from exported course JSON files and any configured document sources.
// Unreadable files are skipped; the context is built from whatever loads.
type ContextBuilder struct {
	// JSONDir holds exported course aggregates (one JSON file per course).
	JSONDir string

	// SummaryLimit caps the number of course summary blocks taken.
	// Defaults to 10.
	SummaryLimit int

	// Converter flattens assignment description HTML for the summaries.
	Converter canvex.Converter

	// Sources are read in order after the course summaries.
	Sources []DocSource
}

// Build loads and combines all configured material.
func (b *ContextBuilder) Build() (canvex.CourseContext, error) {
	var parts []string

	parts = append(parts, b.courseSummaries()...)

	for _, src := range b.Sources {
		parts = append(parts, loadDocuments(src)...)
	}

	return canvex.NewCourseContext(strings.TrimSpace(strings.Join(parts, "\n"))), nil
}

// courseSummaries renders one block per exported course: the course name
// followed by a line per assignment with its description reduced to plain
// text and truncated.
func (b *ContextBuilder) courseSummaries() []string {
	if b.JSONDir == "" {
		return nil
	}

	paths, err := filepath.Glob(filepath.Join(b.JSONDir, "*.json"))
	if err != nil {
		return nil
	}

	limit := b.SummaryLimit
	if limit <= 0 {
		limit = defaultSummaryLimit
	}

	var blocks []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var course canvex.Resource
		if err := json.Unmarshal(data, &course); err != nil {
			continue
		}

		name := course.Str("name")
		if name == "" {
			name = "Unknown Course"
		}
		blocks = append(blocks, name)

		assignments, _ := course["assignments"].([]any)
		for _, el := range assignments {
			m, ok := el.(map[string]any)
			if !ok {
				continue
			}
			a := canvex.Resource(m)

			title := a.Str("name")
			if title == "" {
				title = "Untitled Assignment"
			}

			if desc := b.flatten(a.Str("description")); desc != "" {
				blocks = append(blocks, "- "+title+": "+desc)
			} else {
				blocks = append(blocks, "- "+title)
			}
		}

		if len(blocks) >= limit {
			blocks = blocks[:limit]
			break
		}
	}
	return blocks
}

// flatten reduces description HTML to a single truncated line.
func (b *ContextBuilder) flatten(html string) string {
	if html == "" {
		return ""
	}
	text := html
	if b.Converter != nil {
		converted, err := b.Converter.Convert(html)
		if err == nil {
			text = converted
		}
	}
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > summaryDescChars {
		text = text[:summaryDescChars]
	}
	return text
}

// loadDocuments extracts text from up to src.Limit documents matching the
// source's glob. Extraction failures skip the document.
func loadDocuments(src DocSource) []string {
	if src.Dir == "" || src.Extractor == nil {
		return nil
	}

	glob := src.Glob
	if glob == "" {
		glob = "*"
	}
	paths, err := filepath.Glob(filepath.Join(src.Dir, glob))
	if err != nil {
		return nil
	}

	var texts []string
	for _, path := range paths {
		if src.Limit > 0 && len(texts) >= src.Limit {
			break
		}
		text, err := src.Extractor.ExtractText(path)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		texts = append(texts, strings.TrimSpace(text))
	}
	return texts
}

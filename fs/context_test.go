package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bhilliardga/canvex/fs"
	"github.com/bhilliardga/canvex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func passthroughConverter() *mock.Converter {
	return &mock.Converter{
		ConvertFn: func(html string) (string, error) { return html, nil },
	}
}

func TestContextBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("summarizes exported courses with assignment lines", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeJSONFile(t, dir, "1_Biology.json", `{
			"name": "Biology",
			"assignments": [
				{"name": "Essay", "description": "<p>Write   about cells</p>"},
				{"name": "", "description": ""}
			]
		}`)

		b := &fs.ContextBuilder{
			JSONDir: dir,
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "Write about cells", nil
				},
			},
		}

		cctx, err := b.Build()
		require.NoError(t, err)
		text := cctx.Text(0)
		assert.Contains(t, text, "Biology")
		assert.Contains(t, text, "- Essay: Write about cells")
		assert.Contains(t, text, "- Untitled Assignment")
	})

	t.Run("long descriptions truncate to 150 characters", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		long := strings.Repeat("x", 400)
		writeJSONFile(t, dir, "1_a.json", `{
			"name": "A",
			"assignments": [{"name": "Big", "description": "`+long+`"}]
		}`)

		b := &fs.ContextBuilder{JSONDir: dir, Converter: passthroughConverter()}
		cctx, err := b.Build()
		require.NoError(t, err)

		assert.Contains(t, cctx.Text(0), "- Big: "+strings.Repeat("x", 150))
		assert.NotContains(t, cctx.Text(0), strings.Repeat("x", 151))
	})

	t.Run("summary lines are capped", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		var sb strings.Builder
		sb.WriteString(`{"name": "Crowded", "assignments": [`)
		for i := 0; i < 30; i++ {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(`{"name": "HW"}`)
		}
		sb.WriteString(`]}`)
		writeJSONFile(t, dir, "1_c.json", sb.String())

		b := &fs.ContextBuilder{JSONDir: dir, SummaryLimit: 5, Converter: passthroughConverter()}
		cctx, err := b.Build()
		require.NoError(t, err)

		lines := strings.Split(cctx.Text(0), "\n")
		assert.Len(t, lines, 5)
	})

	t.Run("a converter failure falls back to the raw description", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeJSONFile(t, dir, "1_a.json", `{
			"name": "A",
			"assignments": [{"name": "HW", "description": "raw   words"}]
		}`)

		b := &fs.ContextBuilder{
			JSONDir: dir,
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return "", errors.New("broken") },
			},
		}
		cctx, err := b.Build()
		require.NoError(t, err)
		assert.Contains(t, cctx.Text(0), "- HW: raw words")
	})

	t.Run("unreadable and malformed JSON files are skipped", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeJSONFile(t, dir, "1_bad.json", `{not json`)
		writeJSONFile(t, dir, "2_good.json", `{"name": "Good"}`)

		b := &fs.ContextBuilder{JSONDir: dir, Converter: passthroughConverter()}
		cctx, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, "Good", cctx.Text(0))
	})

	t.Run("a course without a name is labeled Unknown Course", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeJSONFile(t, dir, "1_x.json", `{"id": 1}`)

		b := &fs.ContextBuilder{JSONDir: dir}
		cctx, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, "Unknown Course", cctx.Text(0))
	})

	t.Run("document sources follow the summaries in order", func(t *testing.T) {
		t.Parallel()
		jsonDir := t.TempDir()
		writeJSONFile(t, jsonDir, "1_a.json", `{"name": "A"}`)

		docDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(docDir, "slides.pdf"), []byte("%PDF"), 0644))

		b := &fs.ContextBuilder{
			JSONDir: jsonDir,
			Sources: []fs.DocSource{{
				Dir:  docDir,
				Glob: "*.pdf",
				Extractor: &mock.TextExtractor{
					ExtractTextFn: func(path string) (string, error) {
						return "  lecture text  ", nil
					},
				},
			}},
		}

		cctx, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, "A\nlecture text", cctx.Text(0))
	})

	t.Run("a document source honors its limit and skips failing extractions", func(t *testing.T) {
		t.Parallel()
		docDir := t.TempDir()
		for _, name := range []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"} {
			require.NoError(t, os.WriteFile(filepath.Join(docDir, name), []byte("x"), 0644))
		}

		b := &fs.ContextBuilder{
			Sources: []fs.DocSource{{
				Dir:   docDir,
				Glob:  "*.pdf",
				Limit: 2,
				Extractor: &mock.TextExtractor{
					ExtractTextFn: func(path string) (string, error) {
						if filepath.Base(path) == "a.pdf" {
							return "", errors.New("unreadable")
						}
						return filepath.Base(path), nil
					},
				},
			}},
		}

		cctx, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, "b.pdf\nc.pdf", cctx.Text(0))
	})

	t.Run("nothing configured yields an empty context", func(t *testing.T) {
		t.Parallel()
		cctx, err := (&fs.ContextBuilder{}).Build()
		require.NoError(t, err)
		assert.Empty(t, cctx.Text(0))
	})
}

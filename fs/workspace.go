package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bhilliardga/canvex"
	"github.com/google/uuid"
)

// manifestName is the filename of the archive's index.
const manifestName = "courses_index.json"

// Workspace is the temporary directory tree one export is assembled in.
// It exists for the duration of a single request and is removed by Close
// regardless of how the export ended.
type Workspace struct {
	dir string
}

// NewWorkspace creates a fresh workspace under the system temp directory.
func NewWorkspace() (*Workspace, error) {
	dir := filepath.Join(os.TempDir(), "canvas_export_"+uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace root.
func (w *Workspace) Dir() string { return w.dir }

// WriteCourseJSON writes one course aggregate as pretty-printed JSON with
// non-ASCII preserved, named <id>_<sanitized-name>.json. Returns the
// relative filename for the manifest.
func (w *Workspace) WriteCourseJSON(course *canvex.CourseExport) (string, error) {
	name := course.Name
	if name == "" {
		name = fmt.Sprintf("course_%d", course.ID)
	}
	filename := fmt.Sprintf("%d_%s.json", course.ID, SanitizeName(name))

	if err := writeJSON(filepath.Join(w.dir, filename), course); err != nil {
		return "", err
	}
	return filename, nil
}

// FilesDir returns the path of the course's attachment directory,
// <id>_<sanitized-name>_files. The directory is not created; the download
// strategies create it only when there is something to put in it.
func (w *Workspace) FilesDir(course *canvex.CourseExport) string {
	name := course.Name
	if name == "" {
		name = fmt.Sprintf("course_%d", course.ID)
	}
	return filepath.Join(w.dir, fmt.Sprintf("%d_%s_files", course.ID, SanitizeName(name)))
}

// WriteManifest writes the courses_index.json manifest.
func (w *Workspace) WriteManifest(entries []canvex.ManifestEntry) error {
	return writeJSON(filepath.Join(w.dir, manifestName), entries)
}

// Zip builds the deflate-compressed archive of the whole workspace tree.
func (w *Workspace) Zip() ([]byte, error) {
	return ZipDir(w.dir)
}

// Close removes the workspace and everything in it.
func (w *Workspace) Close() error {
	return os.RemoveAll(w.dir)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

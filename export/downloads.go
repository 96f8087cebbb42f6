package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bhilliardga/canvex"
	"github.com/bhilliardga/canvex/fs"
)

// Downloader implements the two attachment download strategies. Per-file
// failures never abort a batch; each attempt yields an explicit result so
// callers can inspect what was saved, skipped, or lost.
type Downloader struct {
	svc  canvex.CourseService
	refs canvex.FileRefExtractor
}

// NewDownloader creates a Downloader.
func NewDownloader(svc canvex.CourseService, refs canvex.FileRefExtractor) *Downloader {
	return &Downloader{svc: svc, refs: refs}
}

// PageLinkedFiles scans every fetched page body of the course for file
// references, deduplicates them across pages, resolves each id to its
// metadata (seeded from the course's file list, fetching on miss), and
// downloads into dir. Returns a non-nil error only when dir cannot be
// created.
func (d *Downloader) PageLinkedFiles(ctx context.Context, course *canvex.CourseExport, dir string) ([]canvex.DownloadResult, error) {
	if len(course.Pages) == 0 {
		return nil, nil
	}

	seen := make(map[int64]bool)
	var refs []canvex.FileRef
	for _, page := range course.Pages {
		for _, ref := range d.refs.ExtractFileRefs(page.Str("body")) {
			if seen[ref.ID] {
				continue
			}
			seen[ref.ID] = true
			refs = append(refs, ref)
		}
	}
	if len(refs) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	cache := fileIndex(course.Files)
	results := make([]canvex.DownloadResult, 0, len(refs))
	for _, ref := range refs {
		meta, ok := cache[ref.ID]
		if !ok {
			var err error
			meta, err = d.svc.FileByID(ctx, ref.ID)
			if err != nil {
				results = append(results, failed(ref.ID, "", err.Error()))
				continue
			}
			cache[ref.ID] = meta
		}
		results = append(results, d.downloadOne(ctx, ref.ID, meta, dir))
	}
	return results, nil
}

// AllCourseFiles downloads the course's full file list into dir, no HTML
// scan involved. File metadata missing a download URL is refetched by id
// once before the file is reported as failed.
func (d *Downloader) AllCourseFiles(ctx context.Context, course *canvex.CourseExport, dir string) ([]canvex.DownloadResult, error) {
	if len(course.Files) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	results := make([]canvex.DownloadResult, 0, len(course.Files))
	for _, meta := range course.Files {
		id, _ := meta.Int64("id")

		if downloadURL(meta) == "" {
			fresh, err := d.svc.FileByID(ctx, id)
			if err != nil {
				results = append(results, failed(id, "", err.Error()))
				continue
			}
			meta = fresh
		}

		results = append(results, d.downloadOne(ctx, id, meta, dir))
	}
	return results, nil
}

// downloadOne resolves the destination and URL for one file and downloads
// it, skipping destinations that already exist.
func (d *Downloader) downloadOne(ctx context.Context, id int64, meta canvex.Resource, dir string) canvex.DownloadResult {
	path := filepath.Join(dir, fs.SanitizeFileName(displayName(id, meta)))

	if _, err := os.Stat(path); err == nil {
		return canvex.DownloadResult{FileID: id, Path: path, Status: canvex.DownloadSkipped}
	}

	url := downloadURL(meta)
	if url == "" {
		return failed(id, path, "no download url in file metadata")
	}

	if err := d.svc.DownloadFile(ctx, path, url); err != nil {
		return failed(id, path, err.Error())
	}
	return canvex.DownloadResult{FileID: id, Path: path, Status: canvex.DownloadSaved}
}

func failed(id int64, path, reason string) canvex.DownloadResult {
	return canvex.DownloadResult{FileID: id, Path: path, Status: canvex.DownloadFailed, Reason: reason}
}

// downloadURL returns the first available of url, download_url, public_url.
func downloadURL(meta canvex.Resource) string {
	for _, key := range []string{"url", "download_url", "public_url"} {
		if u := meta.Str(key); u != "" {
			return u
		}
	}
	return ""
}

func displayName(id int64, meta canvex.Resource) string {
	if name := meta.Str("display_name"); name != "" {
		return name
	}
	if name := meta.Str("filename"); name != "" {
		return name
	}
	return fmt.Sprintf("file_%d", id)
}

func fileIndex(files []canvex.Resource) map[int64]canvex.Resource {
	idx := make(map[int64]canvex.Resource, len(files))
	for _, f := range files {
		if id, ok := f.Int64("id"); ok {
			idx[id] = f
		}
	}
	return idx
}

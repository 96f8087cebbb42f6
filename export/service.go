package export

import (
	"context"
	"fmt"

	"github.com/bhilliardga/canvex"
	"github.com/bhilliardga/canvex/fs"
)

// Ensure Service implements canvex.ExportService at compile time.
var _ canvex.ExportService = (*Service)(nil)

// Service runs full course exports. Each request gets its own CourseService
// (credentials arrive with the request) and its own temporary workspace,
// which is removed before Export returns.
type Service struct {
	factory canvex.CourseServiceFactory
	refs    canvex.FileRefExtractor
}

// NewService creates an export Service.
func NewService(factory canvex.CourseServiceFactory, refs canvex.FileRefExtractor) *Service {
	return &Service{factory: factory, refs: refs}
}

// Export pulls all of the caller's courses, writes one JSON aggregate per
// course plus the manifest into a temporary workspace, optionally downloads
// attachments, and returns the zipped workspace. Only the course-list fetch
// and archive assembly can fail; everything below them is captured inside
// the aggregates.
func (s *Service) Export(ctx context.Context, req canvex.ExportRequest) (*canvex.ExportResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc := s.factory(req.APIBase, req.Token)

	courses, err := svc.Courses(ctx, req.IncludeConcluded)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	ws, err := fs.NewWorkspace()
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	defer ws.Close()

	agg := NewAggregator(svc)
	dl := NewDownloader(svc, s.refs)

	manifest := []canvex.ManifestEntry{}
	var downloads []canvex.DownloadResult

	for _, c := range courses {
		course := agg.Collect(ctx, c)

		filename, err := ws.WriteCourseJSON(course)
		if err != nil {
			return nil, fmt.Errorf("writing course %d: %w", course.ID, err)
		}
		manifest = append(manifest, canvex.ManifestEntry{
			ID:   course.ID,
			Name: course.Name,
			File: filename,
		})

		if !req.DownloadPageLinkedFiles && !req.DownloadAllFiles {
			continue
		}

		dir := ws.FilesDir(course)
		if req.DownloadPageLinkedFiles {
			results, err := dl.PageLinkedFiles(ctx, course, dir)
			if err != nil {
				return nil, fmt.Errorf("preparing download dir for course %d: %w", course.ID, err)
			}
			downloads = append(downloads, results...)
		}
		if req.DownloadAllFiles {
			results, err := dl.AllCourseFiles(ctx, course, dir)
			if err != nil {
				return nil, fmt.Errorf("preparing download dir for course %d: %w", course.ID, err)
			}
			downloads = append(downloads, results...)
		}
	}

	if err := ws.WriteManifest(manifest); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	archive, err := ws.Zip()
	if err != nil {
		return nil, fmt.Errorf("building archive: %w", err)
	}

	return &canvex.ExportResult{
		Archive:   archive,
		Manifest:  manifest,
		Downloads: downloads,
	}, nil
}

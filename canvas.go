package canvex

import "context"

// CourseService retrieves course resources from a Canvas-compatible API.
// List methods follow pagination to exhaustion; all methods authenticate
// with a bearer credential.
type CourseService interface {
	// Courses lists the caller's courses. Unless includeConcluded is set,
	// only courses with an active enrollment are returned.
	Courses(ctx context.Context, includeConcluded bool) ([]Resource, error)

	// CourseDetail fetches extended metadata for one course.
	CourseDetail(ctx context.Context, courseID int64) (Resource, error)

	Assignments(ctx context.Context, courseID int64) ([]Resource, error)

	// Pages fetches a course's pages with bodies included.
	Pages(ctx context.Context, courseID int64) ([]Resource, error)

	// PageByURL fetches a single page by its URL slug.
	PageByURL(ctx context.Context, courseID int64, pageURL string) (Resource, error)

	Modules(ctx context.Context, courseID int64) ([]Resource, error)

	// ModuleItems fetches one module's items with content details included.
	ModuleItems(ctx context.Context, courseID, moduleID int64) ([]Resource, error)

	Files(ctx context.Context, courseID int64) ([]Resource, error)
	FileByID(ctx context.Context, fileID int64) (Resource, error)

	Discussions(ctx context.Context, courseID int64) ([]Resource, error)
	Discussion(ctx context.Context, courseID, topicID int64) (Resource, error)

	Quizzes(ctx context.Context, courseID int64) ([]Resource, error)
	Quiz(ctx context.Context, courseID, quizID int64) (Resource, error)

	// DownloadFile streams the file at url to path. The first attempt is
	// unauthenticated (file URLs are frequently pre-signed); a 401/403
	// response triggers one authenticated retry. The file is written via a
	// temporary sibling and renamed into place, so no partial file is ever
	// left at path.
	DownloadFile(ctx context.Context, path, url string) error
}

// CourseServiceFactory builds a CourseService for one export request's
// credentials. Each export carries its own API base and token, so the
// service cannot be constructed at startup.
type CourseServiceFactory func(apiBase, token string) CourseService

// Package mock provides struct-of-funcs test doubles for the domain
// interfaces.
package mock

import (
	"context"

	"github.com/bhilliardga/canvex"
)

var _ canvex.CourseService = (*CourseService)(nil)

// CourseService is a mock implementation of canvex.CourseService.
type CourseService struct {
	CoursesFn      func(ctx context.Context, includeConcluded bool) ([]canvex.Resource, error)
	CourseDetailFn func(ctx context.Context, courseID int64) (canvex.Resource, error)
	AssignmentsFn  func(ctx context.Context, courseID int64) ([]canvex.Resource, error)
	PagesFn        func(ctx context.Context, courseID int64) ([]canvex.Resource, error)
	PageByURLFn    func(ctx context.Context, courseID int64, pageURL string) (canvex.Resource, error)
	ModulesFn      func(ctx context.Context, courseID int64) ([]canvex.Resource, error)
	ModuleItemsFn  func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error)
	FilesFn        func(ctx context.Context, courseID int64) ([]canvex.Resource, error)
	FileByIDFn     func(ctx context.Context, fileID int64) (canvex.Resource, error)
	DiscussionsFn  func(ctx context.Context, courseID int64) ([]canvex.Resource, error)
	DiscussionFn   func(ctx context.Context, courseID, topicID int64) (canvex.Resource, error)
	QuizzesFn      func(ctx context.Context, courseID int64) ([]canvex.Resource, error)
	QuizFn         func(ctx context.Context, courseID, quizID int64) (canvex.Resource, error)
	DownloadFileFn func(ctx context.Context, path, url string) error
}

func (s *CourseService) Courses(ctx context.Context, includeConcluded bool) ([]canvex.Resource, error) {
	return s.CoursesFn(ctx, includeConcluded)
}

func (s *CourseService) CourseDetail(ctx context.Context, courseID int64) (canvex.Resource, error) {
	return s.CourseDetailFn(ctx, courseID)
}

func (s *CourseService) Assignments(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return s.AssignmentsFn(ctx, courseID)
}

func (s *CourseService) Pages(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return s.PagesFn(ctx, courseID)
}

func (s *CourseService) PageByURL(ctx context.Context, courseID int64, pageURL string) (canvex.Resource, error) {
	return s.PageByURLFn(ctx, courseID, pageURL)
}

func (s *CourseService) Modules(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return s.ModulesFn(ctx, courseID)
}

func (s *CourseService) ModuleItems(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
	return s.ModuleItemsFn(ctx, courseID, moduleID)
}

func (s *CourseService) Files(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return s.FilesFn(ctx, courseID)
}

func (s *CourseService) FileByID(ctx context.Context, fileID int64) (canvex.Resource, error) {
	return s.FileByIDFn(ctx, fileID)
}

func (s *CourseService) Discussions(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return s.DiscussionsFn(ctx, courseID)
}

func (s *CourseService) Discussion(ctx context.Context, courseID, topicID int64) (canvex.Resource, error) {
	return s.DiscussionFn(ctx, courseID, topicID)
}

func (s *CourseService) Quizzes(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return s.QuizzesFn(ctx, courseID)
}

func (s *CourseService) Quiz(ctx context.Context, courseID, quizID int64) (canvex.Resource, error) {
	return s.QuizFn(ctx, courseID, quizID)
}

func (s *CourseService) DownloadFile(ctx context.Context, path, url string) error {
	return s.DownloadFileFn(ctx, path, url)
}

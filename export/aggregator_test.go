package export_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/bhilliardga/canvex"
	"github.com/bhilliardga/canvex/export"
	"github.com/bhilliardga/canvex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyCourseService returns a mock whose fetches all succeed with empty
// results. Tests override the methods they care about.
func emptyCourseService() *mock.CourseService {
	noList := func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
		return []canvex.Resource{}, nil
	}
	return &mock.CourseService{
		CoursesFn: func(ctx context.Context, includeConcluded bool) ([]canvex.Resource, error) {
			return []canvex.Resource{}, nil
		},
		CourseDetailFn: func(ctx context.Context, courseID int64) (canvex.Resource, error) {
			return canvex.Resource{"id": float64(courseID)}, nil
		},
		AssignmentsFn: noList,
		PagesFn:       noList,
		FilesFn:       noList,
		DiscussionsFn: noList,
		QuizzesFn:     noList,
		ModulesFn:     noList,
		ModuleItemsFn: func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{}, nil
		},
	}
}

func TestAggregator_Collect(t *testing.T) {
	t.Parallel()

	course := canvex.Resource{"id": float64(42), "name": "Biology", "course_code": "BIO-101"}

	t.Run("captures identity and detail", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.CourseDetailFn = func(ctx context.Context, courseID int64) (canvex.Resource, error) {
			return canvex.Resource{"id": float64(courseID), "term": "Fall"}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		assert.Equal(t, int64(42), out.ID)
		assert.Equal(t, "Biology", out.Name)
		assert.Equal(t, "BIO-101", out.CourseCode)
		assert.Equal(t, "Fall", out.Detail.Str("term"))
		assert.Empty(t, out.DetailError)
	})

	t.Run("a failing resource leaves its list empty and records the error without aborting siblings", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.AssignmentsFn = func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
			return nil, canvex.Errorf(canvex.EUNAVAILABLE, "assignments down")
		}
		svc.PagesFn = func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"url": "welcome", "title": "Welcome"}}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		assert.Empty(t, out.Assignments)
		assert.NotEmpty(t, out.AssignmentsError)
		require.Len(t, out.Pages, 1)
		assert.Empty(t, out.PagesError)
	})

	t.Run("a modules fetch failure records modules_error with an empty list", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.ModulesFn = func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
			return nil, canvex.Errorf(canvex.EUNAVAILABLE, "modules down")
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		assert.Empty(t, out.Modules)
		assert.NotEmpty(t, out.ModulesError)
	})

	t.Run("a per-module items failure is recorded on that module only", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.ModulesFn = func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"id": float64(1)}, {"id": float64(2)}}, nil
		}
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			if moduleID == 1 {
				return nil, canvex.Errorf(canvex.EUNAVAILABLE, "items down")
			}
			return []canvex.Resource{{"type": "ExternalUrl", "title": "link"}}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		require.Len(t, out.Modules, 2)
		assert.NotEmpty(t, out.Modules[0]["_items_error"])
		assert.Empty(t, out.Modules[0]["items"])
		assert.Nil(t, out.Modules[1]["_items_error"])
		assert.Len(t, out.Modules[1]["items"], 1)
	})

	t.Run("a module record without an id is recorded on that module only", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.ModulesFn = func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"name": "orphan module"}, {"id": float64(2)}}, nil
		}
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			assert.Equal(t, int64(2), moduleID)
			return []canvex.Resource{{"type": "ExternalUrl", "title": "link"}}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		require.Len(t, out.Modules, 2)
		assert.Empty(t, out.ModulesError)
		assert.NotEmpty(t, out.Modules[0]["_items_error"])
		assert.Empty(t, out.Modules[0]["items"])
		assert.Nil(t, out.Modules[1]["_items_error"])
		assert.Len(t, out.Modules[1]["items"], 1)
	})
}

func TestAggregator_Enrichment(t *testing.T) {
	t.Parallel()

	course := canvex.Resource{"id": float64(42), "name": "Biology"}

	oneModule := func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
		return []canvex.Resource{{"id": float64(1)}}, nil
	}

	t.Run("page items resolve from the pages index", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.PagesFn = func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"url": "welcome", "body": "<p>hi</p>"}}, nil
		}
		svc.ModulesFn = oneModule
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"type": "Page", "page_url": "welcome"}}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		require.Len(t, out.Modules, 1)
		items, ok := out.Modules[0]["items"].([]canvex.Resource)
		require.True(t, ok)
		require.Len(t, items, 1)
		page, ok := items[0]["page"].(canvex.Resource)
		require.True(t, ok)
		assert.Equal(t, "<p>hi</p>", page.Str("body"))
	})

	t.Run("page items missing from the index are fetched by url", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.ModulesFn = oneModule
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"type": "Page", "content_details": map[string]any{"page_url": "hidden-page"}}}, nil
		}
		svc.PageByURLFn = func(ctx context.Context, courseID int64, pageURL string) (canvex.Resource, error) {
			assert.Equal(t, "hidden-page", pageURL)
			return canvex.Resource{"url": pageURL, "body": "found"}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		items := out.Modules[0]["items"].([]canvex.Resource)
		page := items[0]["page"].(canvex.Resource)
		assert.Equal(t, "found", page.Str("body"))
	})

	t.Run("page url falls back to the trailing segment of the item url", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.ModulesFn = oneModule
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"type": "Page", "url": "https://canvas.test/api/v1/courses/42/pages/deep-page"}}, nil
		}
		svc.PageByURLFn = func(ctx context.Context, courseID int64, pageURL string) (canvex.Resource, error) {
			return canvex.Resource{"url": pageURL}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		items := out.Modules[0]["items"].([]canvex.Resource)
		page := items[0]["page"].(canvex.Resource)
		assert.Equal(t, "deep-page", page.Str("url"))
	})

	t.Run("assignment items resolve from the index only", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.AssignmentsFn = func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"id": float64(10), "name": "Essay"}}, nil
		}
		svc.ModulesFn = oneModule
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{
				{"type": "Assignment", "content_id": float64(10)},
				{"type": "Assignment", "content_id": float64(999)}, // not indexed, no fetch fallback
			}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		items := out.Modules[0]["items"].([]canvex.Resource)
		assignment, ok := items[0]["assignment"].(canvex.Resource)
		require.True(t, ok)
		assert.Equal(t, "Essay", assignment.Str("name"))
		assert.Nil(t, items[1]["assignment"])
	})

	t.Run("file fetched once for enrichment is reused across modules", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int64
		svc := emptyCourseService()
		svc.ModulesFn = func(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"id": float64(1)}, {"id": float64(2)}}, nil
		}
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"type": "File", "content_id": float64(77)}}, nil
		}
		svc.FileByIDFn = func(ctx context.Context, fileID int64) (canvex.Resource, error) {
			fetches.Add(1)
			return canvex.Resource{"id": float64(fileID), "display_name": "notes.pdf"}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		require.Len(t, out.Modules, 2)
		assert.Equal(t, int64(1), fetches.Load())
		for _, m := range out.Modules {
			items := m["items"].([]canvex.Resource)
			file := items[0]["file"].(canvex.Resource)
			assert.Equal(t, "notes.pdf", file.Str("display_name"))
		}
	})

	t.Run("unrecognized item types pass through unmodified", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.ModulesFn = oneModule
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"type": "SubHeader", "title": "Week 1"}}, nil
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		items := out.Modules[0]["items"].([]canvex.Resource)
		assert.Equal(t, canvex.Resource{"type": "SubHeader", "title": "Week 1"}, items[0])
	})

	t.Run("an enrichment fetch failure empties the modules section", func(t *testing.T) {
		t.Parallel()

		svc := emptyCourseService()
		svc.ModulesFn = oneModule
		svc.ModuleItemsFn = func(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
			return []canvex.Resource{{"type": "Quiz", "content_id": float64(5)}}, nil
		}
		svc.QuizFn = func(ctx context.Context, courseID, quizID int64) (canvex.Resource, error) {
			return nil, canvex.Errorf(canvex.EUNAVAILABLE, "quiz down")
		}

		out := export.NewAggregator(svc).Collect(context.Background(), course)

		assert.Empty(t, out.Modules)
		assert.NotEmpty(t, out.ModulesError)
	})
}

// Package export provides the course export orchestration: per-course
// aggregation with partial-failure capture, module-item enrichment, and the
// attachment download strategies. Everything here is request-scoped and
// strictly sequential; the only state shared between steps is the in-memory
// resource indexes of a single course.
package export

import (
	"context"

	"github.com/bhilliardga/canvex"
)

// Aggregator fetches all resource kinds for one course and assembles the
// aggregate record.
type Aggregator struct {
	svc canvex.CourseService
}

// NewAggregator creates an Aggregator backed by svc.
func NewAggregator(svc canvex.CourseService) *Aggregator {
	return &Aggregator{svc: svc}
}

// Collect builds the aggregate for one course record from the course list.
// It never fails: every resource fetch is independently wrapped, and a
// failure records the resource's error field while leaving its list empty.
// Sibling resources and sibling courses are unaffected.
func (a *Aggregator) Collect(ctx context.Context, course canvex.Resource) *canvex.CourseExport {
	id, _ := course.Int64("id")
	out := &canvex.CourseExport{
		ID:          id,
		Name:        course.Str("name"),
		CourseCode:  course.Str("course_code"),
		Assignments: []canvex.Resource{},
		Pages:       []canvex.Resource{},
		Files:       []canvex.Resource{},
		Discussions: []canvex.Resource{},
		Quizzes:     []canvex.Resource{},
		Modules:     []canvex.Resource{},
	}

	if detail, err := a.svc.CourseDetail(ctx, id); err != nil {
		out.DetailError = err.Error()
	} else {
		out.Detail = detail
	}

	if assignments, err := a.svc.Assignments(ctx, id); err != nil {
		out.AssignmentsError = err.Error()
	} else if assignments != nil {
		out.Assignments = assignments
	}

	if pages, err := a.svc.Pages(ctx, id); err != nil {
		out.PagesError = err.Error()
	} else if pages != nil {
		out.Pages = pages
	}

	if files, err := a.svc.Files(ctx, id); err != nil {
		out.FilesError = err.Error()
	} else if files != nil {
		out.Files = files
	}

	if discussions, err := a.svc.Discussions(ctx, id); err != nil {
		out.DiscussionsError = err.Error()
	} else if discussions != nil {
		out.Discussions = discussions
	}

	if quizzes, err := a.svc.Quizzes(ctx, id); err != nil {
		out.QuizzesError = err.Error()
	} else if quizzes != nil {
		out.Quizzes = quizzes
	}

	a.collectModules(ctx, out)

	return out
}

// collectModules fetches the course's modules and their items, enriching
// each item against the indexes built from the already-fetched collections.
// A per-module item fetch failure, or a module record missing an id, is
// recorded on that module only; a modules list fetch failure, or an
// enrichment fetch failure, empties the modules section and records
// modules_error at the course level.
func (a *Aggregator) collectModules(ctx context.Context, out *canvex.CourseExport) {
	modules, err := a.svc.Modules(ctx, out.ID)
	if err != nil {
		out.ModulesError = err.Error()
		return
	}
	if modules == nil {
		modules = []canvex.Resource{}
	}

	idx := buildIndexes(out)

	for _, m := range modules {
		mid, ok := m.Int64("id")
		if !ok {
			m["items"] = []canvex.Resource{}
			m["_items_error"] = "module record missing id"
			continue
		}

		items, err := a.svc.ModuleItems(ctx, out.ID, mid)
		if err != nil {
			m["items"] = []canvex.Resource{}
			m["_items_error"] = err.Error()
			continue
		}
		if items == nil {
			items = []canvex.Resource{}
		}

		if err := a.enrichItems(ctx, out.ID, items, idx); err != nil {
			out.Modules = []canvex.Resource{}
			out.ModulesError = err.Error()
			return
		}
		m["items"] = items
	}

	out.Modules = modules
}

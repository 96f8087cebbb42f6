package export

import (
	"context"
	"strings"

	"github.com/bhilliardga/canvex"
)

// indexes hold the per-course resource lookups used during enrichment.
// The files, discussions, and quizzes maps double as fetch caches shared
// across all modules of one course: a resource fetched once for enrichment
// is reused for every later reference to the same id.
type indexes struct {
	assignments map[int64]canvex.Resource
	pages       map[string]canvex.Resource
	files       map[int64]canvex.Resource
	discussions map[int64]canvex.Resource
	quizzes     map[int64]canvex.Resource
}

func buildIndexes(c *canvex.CourseExport) *indexes {
	idx := &indexes{
		assignments: make(map[int64]canvex.Resource, len(c.Assignments)),
		pages:       make(map[string]canvex.Resource, len(c.Pages)),
		files:       make(map[int64]canvex.Resource, len(c.Files)),
		discussions: make(map[int64]canvex.Resource, len(c.Discussions)),
		quizzes:     make(map[int64]canvex.Resource, len(c.Quizzes)),
	}
	for _, a := range c.Assignments {
		if id, ok := a.Int64("id"); ok {
			idx.assignments[id] = a
		}
	}
	for _, p := range c.Pages {
		if u := p.Str("url"); u != "" {
			idx.pages[u] = p
		}
	}
	for _, f := range c.Files {
		if id, ok := f.Int64("id"); ok {
			idx.files[id] = f
		}
	}
	for _, d := range c.Discussions {
		if id, ok := d.Int64("id"); ok {
			idx.discussions[id] = d
		}
	}
	for _, q := range c.Quizzes {
		if id, ok := q.Int64("id"); ok {
			idx.quizzes[id] = q
		}
	}
	return idx
}

// enrichItems resolves each module item's lightweight reference into its
// full resource body, attaching it under a type-specific key. Items are
// mutated in place; unrecognized types pass through unmodified. A fetch
// failure propagates to the caller, which records it as a modules error.
func (a *Aggregator) enrichItems(ctx context.Context, courseID int64, items []canvex.Resource, idx *indexes) error {
	for _, it := range items {
		switch it.Str("type") {
		case "Page":
			pageURL := pageURLForItem(it)
			if pageURL == "" {
				continue
			}
			page, ok := idx.pages[pageURL]
			if !ok {
				var err error
				page, err = a.svc.PageByURL(ctx, courseID, pageURL)
				if err != nil {
					return err
				}
			}
			it["page"] = page

		case "Assignment":
			// No direct fetch fallback: the course's assignment list is
			// assumed to cover every referenced assignment.
			if id, ok := it.Int64("content_id"); ok {
				if assignment, ok := idx.assignments[id]; ok {
					it["assignment"] = assignment
				}
			}

		case "File":
			id, ok := it.Int64("content_id")
			if !ok {
				continue
			}
			meta, ok := idx.files[id]
			if !ok {
				var err error
				meta, err = a.svc.FileByID(ctx, id)
				if err != nil {
					return err
				}
				idx.files[id] = meta
			}
			it["file"] = meta

		case "Discussion":
			id, ok := it.Int64("content_id")
			if !ok {
				continue
			}
			topic, ok := idx.discussions[id]
			if !ok {
				var err error
				topic, err = a.svc.Discussion(ctx, courseID, id)
				if err != nil {
					return err
				}
				idx.discussions[id] = topic
			}
			it["discussion"] = topic

		case "Quiz":
			id, ok := it.Int64("content_id")
			if !ok {
				continue
			}
			quiz, ok := idx.quizzes[id]
			if !ok {
				var err error
				quiz, err = a.svc.Quiz(ctx, courseID, id)
				if err != nil {
					return err
				}
				idx.quizzes[id] = quiz
			}
			it["quiz"] = quiz
		}
	}
	return nil
}

// pageURLForItem resolves a Page item's URL slug: the item's own page_url
// field, then content_details.page_url, then the trailing path segment of
// the generic url field.
func pageURLForItem(it canvex.Resource) string {
	if u := it.Str("page_url"); u != "" {
		return u
	}
	if u := it.Sub("content_details").Str("page_url"); u != "" {
		return u
	}
	u := it.Str("url")
	if i := strings.LastIndex(u, "/"); i >= 0 {
		return u[i+1:]
	}
	return u
}

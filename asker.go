package canvex

import "context"

// CourseContext is the immutable course-material context assembled once at
// startup and injected into each question-answering call.
type CourseContext struct {
	text string
}

// NewCourseContext creates a CourseContext from the combined material text.
func NewCourseContext(text string) CourseContext {
	return CourseContext{text: text}
}

// Text returns the combined material, truncated to at most limit bytes when
// limit is positive.
func (c CourseContext) Text(limit int) string {
	if limit > 0 && len(c.text) > limit {
		return c.text[:limit]
	}
	return c.text
}

// Len returns the length of the combined material.
func (c CourseContext) Len() int { return len(c.text) }

// Asker answers natural language questions about exported course material.
type Asker interface {
	// Ask answers a question using the course context the Asker was
	// constructed with. Returns EINVALID if the question is empty.
	Ask(ctx context.Context, question string) (string, error)
}

package canvas

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bhilliardga/canvex"
)

// perPage is the page size requested from every list endpoint.
const perPage = "100"

func listParams() url.Values {
	return url.Values{"per_page": {perPage}}
}

// Courses lists the caller's courses. Unless includeConcluded is set, the
// list is filtered to active enrollments.
func (c *Client) Courses(ctx context.Context, includeConcluded bool) ([]canvex.Resource, error) {
	p := listParams()
	if !includeConcluded {
		p.Set("enrollment_state", "active")
	}
	return c.fetchAll(ctx, c.baseURL+"/users/self/courses", p)
}

// CourseDetail fetches extended metadata for one course.
func (c *Client) CourseDetail(ctx context.Context, courseID int64) (canvex.Resource, error) {
	return c.getOne(ctx, fmt.Sprintf("%s/courses/%d", c.baseURL, courseID), nil)
}

// Assignments lists a course's assignments.
func (c *Client) Assignments(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return c.fetchAll(ctx, fmt.Sprintf("%s/courses/%d/assignments", c.baseURL, courseID), listParams())
}

// Pages lists a course's pages with bodies included.
func (c *Client) Pages(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	p := listParams()
	p.Set("include[]", "body")
	return c.fetchAll(ctx, fmt.Sprintf("%s/courses/%d/pages", c.baseURL, courseID), p)
}

// PageByURL fetches a single page by its URL slug.
func (c *Client) PageByURL(ctx context.Context, courseID int64, pageURL string) (canvex.Resource, error) {
	return c.getOne(ctx, fmt.Sprintf("%s/courses/%d/pages/%s", c.baseURL, courseID, url.PathEscape(pageURL)), nil)
}

// Modules lists a course's modules.
func (c *Client) Modules(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return c.fetchAll(ctx, fmt.Sprintf("%s/courses/%d/modules", c.baseURL, courseID), listParams())
}

// ModuleItems lists one module's items with content details included.
func (c *Client) ModuleItems(ctx context.Context, courseID, moduleID int64) ([]canvex.Resource, error) {
	p := listParams()
	p.Set("include[]", "content_details")
	return c.fetchAll(ctx, fmt.Sprintf("%s/courses/%d/modules/%d/items", c.baseURL, courseID, moduleID), p)
}

// Files lists a course's files.
func (c *Client) Files(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return c.fetchAll(ctx, fmt.Sprintf("%s/courses/%d/files", c.baseURL, courseID), listParams())
}

// FileByID fetches one file's metadata.
func (c *Client) FileByID(ctx context.Context, fileID int64) (canvex.Resource, error) {
	return c.getOne(ctx, fmt.Sprintf("%s/files/%d", c.baseURL, fileID), nil)
}

// Discussions lists a course's discussion topics.
func (c *Client) Discussions(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return c.fetchAll(ctx, fmt.Sprintf("%s/courses/%d/discussion_topics", c.baseURL, courseID), listParams())
}

// Discussion fetches one discussion topic.
func (c *Client) Discussion(ctx context.Context, courseID, topicID int64) (canvex.Resource, error) {
	return c.getOne(ctx, fmt.Sprintf("%s/courses/%d/discussion_topics/%d", c.baseURL, courseID, topicID), nil)
}

// Quizzes lists a course's quizzes.
func (c *Client) Quizzes(ctx context.Context, courseID int64) ([]canvex.Resource, error) {
	return c.fetchAll(ctx, fmt.Sprintf("%s/courses/%d/quizzes", c.baseURL, courseID), listParams())
}

// Quiz fetches one quiz.
func (c *Client) Quiz(ctx context.Context, courseID, quizID int64) (canvex.Resource, error) {
	return c.getOne(ctx, fmt.Sprintf("%s/courses/%d/quizzes/%d", c.baseURL, courseID, quizID), nil)
}

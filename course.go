package canvex

// CourseExport is the aggregate produced for one course: the fetched
// resource collections plus sibling error fields recording which fetches
// failed. A collection and its error field are mutually exclusive: the
// list is empty whenever the error is set.
type CourseExport struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code,omitempty"`

	Detail      Resource `json:"detail,omitempty"`
	DetailError string   `json:"detail_error,omitempty"`

	Assignments      []Resource `json:"assignments"`
	AssignmentsError string     `json:"assignments_error,omitempty"`

	Pages      []Resource `json:"pages"`
	PagesError string     `json:"pages_error,omitempty"`

	Files      []Resource `json:"files"`
	FilesError string     `json:"files_error,omitempty"`

	Discussions      []Resource `json:"discussions"`
	DiscussionsError string     `json:"discussions_error,omitempty"`

	Quizzes      []Resource `json:"quizzes"`
	QuizzesError string     `json:"quizzes_error,omitempty"`

	// Modules are opaque records; each carries an "items" list after
	// aggregation, or "_items_error" when its items fetch failed.
	Modules      []Resource `json:"modules"`
	ModulesError string     `json:"modules_error,omitempty"`
}

// ManifestEntry is one row of the archive's courses_index.json.
type ManifestEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	File string `json:"file"`
}

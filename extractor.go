package canvex

// TextExtractor extracts plain text from a document on disk (PDF, slide
// deck). Implementations are external collaborators; the core only consumes
// the capability.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

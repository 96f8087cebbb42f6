package mock

import "github.com/bhilliardga/canvex"

var _ canvex.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of canvex.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(path string) (string, error)
}

func (e *TextExtractor) ExtractText(path string) (string, error) {
	return e.ExtractTextFn(path)
}

var _ canvex.FileRefExtractor = (*FileRefExtractor)(nil)

// FileRefExtractor is a mock implementation of canvex.FileRefExtractor.
type FileRefExtractor struct {
	ExtractFileRefsFn func(html string) []canvex.FileRef
}

func (e *FileRefExtractor) ExtractFileRefs(html string) []canvex.FileRef {
	return e.ExtractFileRefsFn(html)
}

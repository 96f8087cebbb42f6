// Package goquery provides HTML parsing implementations built on
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bhilliardga/canvex"
)

// Anchor class tokens that mark a Canvas file attachment link.
var fileLinkClasses = map[string]bool{
	"instructure_file_link":   true,
	"instructure_scribd_file": true,
}

var (
	fileIDFromHref = regexp.MustCompile(`/files/(\d+)\b`)
	fileIDFallback = regexp.MustCompile(`/(?:courses/\d+/)?files/(\d+)`)
)

// Ensure FileRefExtractor implements canvex.FileRefExtractor at compile time.
var _ canvex.FileRefExtractor = (*FileRefExtractor)(nil)

// FileRefExtractor discovers file attachment references in Canvas page HTML.
type FileRefExtractor struct{}

// NewFileRefExtractor creates a new FileRefExtractor.
func NewFileRefExtractor() *FileRefExtractor {
	return &FileRefExtractor{}
}

// ExtractFileRefs returns the file references found in html, in document
// order, deduplicated by file id with the first occurrence's href kept.
//
// The primary pass inspects every anchor whose class tokens include one of
// the known file-link markers and pulls the id from a /files/<id> segment of
// its href. When that pass yields nothing, a raw-text scan collects any
// /files/<digits> or /courses/<id>/files/<digits> substring with an empty
// href. The fallback can over-match ids inside unrelated URLs; it runs only
// when no marked anchors were found at all.
func (e *FileRefExtractor) ExtractFileRefs(html string) []canvex.FileRef {
	refs := []canvex.FileRef{}
	if html == "" {
		return refs
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		doc.Find("a[class]").Each(func(_ int, sel *goquery.Selection) {
			class, _ := sel.Attr("class")
			if !hasFileLinkClass(class) {
				return
			}
			href, _ := sel.Attr("href")
			if href == "" {
				return
			}
			m := fileIDFromHref.FindStringSubmatch(href)
			if m == nil {
				return
			}
			id, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return
			}
			refs = append(refs, canvex.FileRef{ID: id, Href: href})
		})
	}

	if len(refs) == 0 {
		for _, m := range fileIDFallback.FindAllStringSubmatch(html, -1) {
			id, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				continue
			}
			refs = append(refs, canvex.FileRef{ID: id})
		}
	}

	return DedupeFileRefs(refs)
}

// DedupeFileRefs removes duplicate ids, keeping the first occurrence.
func DedupeFileRefs(refs []canvex.FileRef) []canvex.FileRef {
	seen := make(map[int64]bool, len(refs))
	out := refs[:0]
	for _, ref := range refs {
		if seen[ref.ID] {
			continue
		}
		seen[ref.ID] = true
		out = append(out, ref)
	}
	return out
}

// hasFileLinkClass reports whether any whitespace-separated class token
// matches a known file-link marker, case-insensitively.
func hasFileLinkClass(class string) bool {
	for _, tok := range strings.Fields(class) {
		if fileLinkClasses[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}

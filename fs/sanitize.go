// Package fs provides the on-disk export workspace and the course-context
// loader for the chat subsystem.
package fs

import "regexp"

// maxNameLen bounds sanitized course names used in filenames.
const maxNameLen = 120

var (
	illegalNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// SanitizeName makes a course name safe for use in a filename: characters
// illegal in filesystem names become underscores, whitespace runs collapse
// to a single underscore, and the result is truncated to 120 characters.
// Truncation counts runes, never splitting a multi-byte character.
func SanitizeName(name string) string {
	s := illegalNameChars.ReplaceAllString(name, "_")
	s = whitespaceRun.ReplaceAllString(s, "_")
	if r := []rune(s); len(r) > maxNameLen {
		s = string(r[:maxNameLen])
	}
	return s
}

// SanitizeFileName strips characters illegal in filesystem names from a
// file's display name. Whitespace is preserved.
func SanitizeFileName(name string) string {
	return illegalNameChars.ReplaceAllString(name, "_")
}

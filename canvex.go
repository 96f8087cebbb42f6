// Package canvex exports a user's Canvas LMS course data into a portable
// zip archive and answers questions about the exported material using a
// language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., canvas/, goquery/, gemini/).
package canvex

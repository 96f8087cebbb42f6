package canvex

// Converter reduces HTML to plain readable text.
// Used when flattening assignment descriptions for the chat context.
type Converter interface {
	// Convert transforms HTML content into plain text or Markdown.
	Convert(html string) (string, error)
}

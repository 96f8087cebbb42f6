// Package htmltomarkdown converts HTML to Markdown for the chat context.
package htmltomarkdown

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/bhilliardga/canvex"
)

// Ensure Converter implements canvex.Converter at compile time.
var _ canvex.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to flatten HTML into readable text.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Empty input is fine here:
// assignment descriptions are frequently blank.
func (c *Converter) Convert(html string) (string, error) {
	if html == "" {
		return "", nil
	}
	return c.conv.ConvertString(html)
}

package mock

import "github.com/bhilliardga/canvex"

var _ canvex.Converter = (*Converter)(nil)

// Converter is a mock implementation of canvex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

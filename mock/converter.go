package mock

import "github.com/fwojciec/artext"

var _ artext.Converter = (*Converter)(nil)

// Converter is a mock implementation of artext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

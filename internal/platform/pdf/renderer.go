package pdf

import (
	"context"
	"errors"
)

// ErrDisabled is returned when PDF export is switched off.
var ErrDisabled = errors.New("pdf export is disabled")

// Renderer turns a complete HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// DisabledRenderer is used when PDF_ENABLED is false.
type DisabledRenderer struct{}

// Render always fails with ErrDisabled.
func (DisabledRenderer) Render(context.Context, string) ([]byte, error) {
	return nil, ErrDisabled
}

var _ Renderer = DisabledRenderer{}

package pdf_test

import (
	"context"
	"testing"

	"github.com/SscSPs/notion_quote_viewer/internal/platform/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledRenderer(t *testing.T) {
	out, err := pdf.DisabledRenderer{}.Render(context.Background(), "<p>hi</p>")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, pdf.ErrDisabled)
}

func TestChromedpRenderer_RejectsEmptyHTML(t *testing.T) {
	r := pdf.NewChromedpRenderer(pdf.ChromedpConfig{})
	defer r.Close()

	_, err := r.Render(context.Background(), "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

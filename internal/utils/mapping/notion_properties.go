package mapping

import (
	"strings"
	"time"

	"github.com/jomei/notionapi"
)

// Properties is the property bag of a page, keyed by property name.
type Properties = notionapi.Properties

// The extractors below never fail. Absent, wrong-typed and empty properties all
// read as the zero value, so callers must treat "" and 0 as unknown.

// GetTextProperty concatenates the text runs of a title or rich_text property.
func GetTextProperty(props Properties, key string) string {
	switch p := props[key].(type) {
	case *notionapi.TitleProperty:
		if p != nil {
			return richTextContent(p.Title)
		}
	case *notionapi.RichTextProperty:
		if p != nil {
			return richTextContent(p.RichText)
		}
	}
	return ""
}

// GetNumberProperty returns the value of a number property, or 0.
func GetNumberProperty(props Properties, key string) float64 {
	if p, ok := props[key].(*notionapi.NumberProperty); ok && p != nil {
		return p.Number
	}
	return 0
}

// GetDateProperty returns the start of a date property, or "".
// Midnight starts print as YYYY-MM-DD, anything else as RFC 3339.
func GetDateProperty(props Properties, key string) string {
	p, ok := props[key].(*notionapi.DateProperty)
	if !ok || p == nil || p.Date == nil || p.Date.Start == nil {
		return ""
	}
	t := time.Time(*p.Date.Start)
	if t.IsZero() {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// GetSelectProperty returns the selected option label, or "".
func GetSelectProperty(props Properties, key string) string {
	if p, ok := props[key].(*notionapi.SelectProperty); ok && p != nil {
		return p.Select.Name
	}
	return ""
}

// GetRelationProperty returns the related page ids in order. Entries without an id are dropped.
func GetRelationProperty(props Properties, key string) []string {
	p, ok := props[key].(*notionapi.RelationProperty)
	if !ok || p == nil {
		return []string{}
	}
	ids := make([]string, 0, len(p.Relation))
	for _, ref := range p.Relation {
		if ref.ID != "" {
			ids = append(ids, string(ref.ID))
		}
	}
	return ids
}

// richTextContent joins only "text" runs; mentions and equations are skipped.
func richTextContent(runs []notionapi.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		if run.Type == "text" && run.Text != nil {
			b.WriteString(run.Text.Content)
		}
	}
	return b.String()
}

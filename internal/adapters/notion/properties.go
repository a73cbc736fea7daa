package notion

import (
	"time"

	"github.com/jomei/notionapi"
)

// SelectEquals builds a select equality filter.
func SelectEquals(property, value string) notionapi.Filter {
	return &notionapi.PropertyFilter{
		Property: property,
		Select:   &notionapi.SelectFilterCondition{Equals: value},
	}
}

// RichTextEquals builds a rich text equality filter.
func RichTextEquals(property, value string) notionapi.Filter {
	return &notionapi.PropertyFilter{
		Property: property,
		RichText: &notionapi.TextFilterCondition{Equals: value},
	}
}

// The builders below produce property values for page creation.

// Title builds a title property value from plain text.
func Title(content string) notionapi.Property {
	return &notionapi.TitleProperty{Type: notionapi.PropertyTypeTitle, Title: []notionapi.RichText{textRun(content)}}
}

// Text builds a rich text property value from plain text.
func Text(content string) notionapi.Property {
	return &notionapi.RichTextProperty{Type: notionapi.PropertyTypeRichText, RichText: []notionapi.RichText{textRun(content)}}
}

// Number builds a number property value.
func Number(n float64) notionapi.Property {
	return &notionapi.NumberProperty{Type: notionapi.PropertyTypeNumber, Number: n}
}

// Date builds a date property value from a YYYY-MM-DD or RFC 3339 string.
// An unparseable start leaves the date empty.
func Date(start string) notionapi.Property {
	prop := &notionapi.DateProperty{Type: notionapi.PropertyTypeDate}
	t, err := time.Parse(time.DateOnly, start)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, start); err != nil {
			return prop
		}
	}
	d := notionapi.Date(t)
	prop.Date = &notionapi.DateObject{Start: &d}
	return prop
}

// Select builds a select property value.
func Select(name string) notionapi.Property {
	return &notionapi.SelectProperty{Type: notionapi.PropertyTypeSelect, Select: notionapi.Option{Name: name}}
}

// Relation builds a relation property value.
func Relation(ids ...string) notionapi.Property {
	refs := make([]notionapi.Relation, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, notionapi.Relation{ID: notionapi.PageID(id)})
	}
	return &notionapi.RelationProperty{Type: notionapi.PropertyTypeRelation, Relation: refs}
}

func textRun(content string) notionapi.RichText {
	return notionapi.RichText{
		Type:      "text",
		Text:      &notionapi.Text{Content: content},
		PlainText: content,
	}
}

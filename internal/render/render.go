// Package render turns ordered record lists into ordered HTML fragments.
package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// Entry executes the named template against one record.
func Entry[T any](tmpl *template.Template, name string, item T) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, item); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// List renders every item with Entry, preserving order.
func List[T any](tmpl *template.Template, name string, items []T) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(items))
	for i, item := range items {
		html, err := Entry(tmpl, name, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, html)
	}
	return out, nil
}

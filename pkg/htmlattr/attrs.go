// Package htmlattr serializes HTML attribute maps into tag fragments. It is
// the escaping seam for view helpers: helpers hand it merged attribute maps
// and embed the returned fragment verbatim.
package htmlattr

import (
	"html"
	"slices"
	"strings"
)

// Attrs holds the attribute name/value pairs for a single HTML tag.
type Attrs map[string]string

// Clone returns a shallow copy, or nil when attrs is empty.
func Clone(attrs Attrs) Attrs {
	if len(attrs) == 0 {
		return nil
	}
	out := make(Attrs, len(attrs))
	for name, value := range attrs {
		out[name] = value
	}
	return out
}

// Merge combines base and override into a new map. Entries from override win
// on name collisions; neither input is mutated.
func Merge(base, override Attrs) Attrs {
	if len(base) == 0 {
		return Clone(override)
	}
	out := Clone(base)
	for name, value := range override {
		out[name] = value
	}
	return out
}

// String serializes attrs as `name="value"` pairs separated by single spaces.
// Values are HTML-escaped; names that are empty after trimming are skipped.
// Names are emitted in sorted order so output is deterministic.
func String(attrs Attrs) string {
	if len(attrs) == 0 {
		return ""
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	var builder strings.Builder
	for i, name := range names {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(strings.TrimSpace(name))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attrs[name]))
		builder.WriteByte('"')
	}
	return builder.String()
}

package render

import (
	"github.com/goliatone/go-formview/pkg/element"
	"github.com/goliatone/go-formview/pkg/htmlattr"
	"github.com/goliatone/go-formview/pkg/render/template"
)

// DefaultSummaryTemplate renders one labelled section per element with
// messages. Group markup comes pre-escaped from the list helper, hence the
// safe filters.
const DefaultSummaryTemplate = `<div{{ attributes|safe }}>{% for group in groups %}<section data-element="{{ group.name }}"><h4>{{ group.label }}</h4>{{ group.markup|safe }}</section>{% endfor %}</div>`

// SummaryOption configures an ErrorSummary at construction.
type SummaryOption func(*ErrorSummary)

// WithSummaryTemplate overrides the summary template. The template receives
// `groups` (name, label, markup per element) and `attributes` (pre-serialized
// container attributes fragment).
func WithSummaryTemplate(tmpl string) SummaryOption {
	return func(s *ErrorSummary) {
		if tmpl != "" {
			s.tmpl = tmpl
		}
	}
}

// WithSummaryEngine injects a custom template engine.
func WithSummaryEngine(engine template.Renderer) SummaryOption {
	return func(s *ErrorSummary) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithSummaryList injects the list helper used for each element's messages,
// letting callers share translator and markup configuration with inline
// rendering.
func WithSummaryList(list *FormErrors) SummaryOption {
	return func(s *ErrorSummary) {
		if list != nil {
			s.list = list
		}
	}
}

// WithSummaryAttributes seeds default attributes for the summary container.
func WithSummaryAttributes(attrs htmlattr.Attrs) SummaryOption {
	return func(s *ErrorSummary) {
		s.attributes = htmlattr.Clone(attrs)
	}
}

// ErrorSummary renders a form-level summary block: one labelled error list per
// element that has messages. Elements without messages are skipped; when every
// element is clean the summary renders nothing.
type ErrorSummary struct {
	engine     template.Renderer
	tmpl       string
	list       *FormErrors
	attributes htmlattr.Attrs
}

// NewErrorSummary constructs the helper with the default template and a
// default FormErrors list helper.
func NewErrorSummary(options ...SummaryOption) (*ErrorSummary, error) {
	summary := &ErrorSummary{tmpl: DefaultSummaryTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(summary)
	}

	if summary.engine == nil {
		engine, err := template.New()
		if err != nil {
			return nil, err
		}
		summary.engine = engine
	}
	if summary.list == nil {
		summary.list = NewFormErrors()
	}
	return summary, nil
}

// Render produces the summary markup for the given elements. Call-site
// attributes override the configured container attributes name by name.
func (s *ErrorSummary) Render(elements []element.Element, attrs htmlattr.Attrs) (string, error) {
	groups := make([]map[string]any, 0, len(elements))
	for _, el := range elements {
		if el == nil {
			continue
		}
		markup, err := s.list.Render(el, nil)
		if err != nil {
			return "", err
		}
		if markup == "" {
			continue
		}
		groups = append(groups, map[string]any{
			"name":   el.Name(),
			"label":  element.LabelFor(el),
			"markup": markup,
		})
	}
	if len(groups) == 0 {
		return "", nil
	}

	fragment := htmlattr.String(htmlattr.Merge(s.attributes, attrs))
	if fragment != "" {
		fragment = " " + fragment
	}

	return s.engine.RenderString(s.tmpl, map[string]any{
		"groups":     groups,
		"attributes": fragment,
	})
}

// Package formview provides view helpers that render form-element validation
// feedback as HTML fragments. The top-level package re-exports the common
// types and offers one-call entry points; pkg/render holds the configurable
// helpers.
package formview

import (
	"github.com/goliatone/go-formview/pkg/element"
	"github.com/goliatone/go-formview/pkg/htmlattr"
	"github.com/goliatone/go-formview/pkg/message"
	"github.com/goliatone/go-formview/pkg/render"
)

// Element is the form-field surface helpers consume.
type Element = element.Element

// Attrs holds HTML attribute name/value pairs.
type Attrs = htmlattr.Attrs

// MessageTree is an ordered, nested collection of validation messages.
type MessageTree = message.Tree

// Translator resolves messages through a translation catalog.
type Translator = render.Translator

// NewRegistry returns a helper registry pre-populated with the built-in
// formErrors helper.
func NewRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(render.NewFormErrors())
	return registry
}

// RenderErrors renders the element's validation messages as an unordered
// list, applying any provided helper options. It is the simplest entry point
// for callers that do not hold a configured helper.
func RenderErrors(el Element, attrs Attrs, options ...render.FormErrorsOption) (string, error) {
	return render.NewFormErrors(options...).Render(el, attrs)
}

// RenderErrorSummary renders a form-level summary for the given elements,
// one labelled list per element with messages.
func RenderErrorSummary(elements []Element, attrs Attrs, options ...render.SummaryOption) (string, error) {
	summary, err := render.NewErrorSummary(options...)
	if err != nil {
		return "", err
	}
	return summary.Render(elements, attrs)
}

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formview/pkg/element"
	"github.com/goliatone/go-formview/pkg/htmlattr"
	"github.com/goliatone/go-formview/pkg/message"
)

// Default markup configuration for FormErrors. The open format carries a
// single %s slot that receives the serialized attributes fragment.
const (
	DefaultMessageOpenFormat      = "<ul%s><li>"
	DefaultMessageCloseString     = "</li></ul>"
	DefaultMessageSeparatorString = "</li><li>"
)

// FormErrorsOption configures a FormErrors helper at construction.
type FormErrorsOption func(*FormErrors)

// WithAttributes seeds default attributes applied to every rendered list.
// Call-site attributes passed to Render override them name by name.
func WithAttributes(attrs htmlattr.Attrs) FormErrorsOption {
	return func(h *FormErrors) {
		h.attributes = htmlattr.Clone(attrs)
	}
}

// WithMessageOpenFormat overrides the opening markup format. The format must
// contain exactly one %s slot for the attributes fragment; leaving the slot
// out is a caller configuration error.
func WithMessageOpenFormat(format string) FormErrorsOption {
	return func(h *FormErrors) {
		h.openFormat = format
	}
}

// WithMessageCloseString overrides the closing markup.
func WithMessageCloseString(close string) FormErrorsOption {
	return func(h *FormErrors) {
		h.closeString = close
	}
}

// WithMessageSeparator overrides the markup placed between messages.
func WithMessageSeparator(separator string) FormErrorsOption {
	return func(h *FormErrors) {
		h.separator = separator
	}
}

// WithTranslator injects the translator used for message translation.
func WithTranslator(t Translator) FormErrorsOption {
	return func(h *FormErrors) {
		h.translator = t
	}
}

// WithTextDomain selects the translation-catalog namespace passed to the
// translator alongside each message.
func WithTextDomain(domain string) FormErrorsOption {
	return func(h *FormErrors) {
		h.textDomain = domain
	}
}

// WithoutTranslation renders messages verbatim even when a translator is
// configured.
func WithoutTranslation() FormErrorsOption {
	return func(h *FormErrors) {
		h.translateMessages = false
	}
}

// WithRequiredTranslation makes Render fail with ErrMissingTranslator when
// translation is enabled but no translator has been configured, instead of
// silently emitting untranslated messages.
func WithRequiredTranslation() FormErrorsOption {
	return func(h *FormErrors) {
		h.requireTranslator = true
	}
}

// WithMessageSanitizer routes every rendered message through a bluemonday
// policy. Messages are embedded verbatim by default, so callers rendering
// messages sourced from user input should configure one.
func WithMessageSanitizer(policy *bluemonday.Policy) FormErrorsOption {
	return func(h *FormErrors) {
		h.sanitizer = policy
	}
}

// FormErrors renders the validation messages attached to a form element as a
// single markup fragment, or nothing at all when the element is clean.
//
// The zero configuration produces an unordered list:
//
//	<ul><li>first</li><li>second</li></ul>
//
// Configuration setters return the receiver so call sites can chain them.
// Render only reads configuration; callers must not reconfigure the helper
// concurrently with Render.
type FormErrors struct {
	attributes        htmlattr.Attrs
	openFormat        string
	closeString       string
	separator         string
	translateMessages bool
	requireTranslator bool
	translator        Translator
	textDomain        string
	sanitizer         *bluemonday.Policy
}

// NewFormErrors constructs the helper with default markup and translation
// enabled.
func NewFormErrors(options ...FormErrorsOption) *FormErrors {
	helper := &FormErrors{
		openFormat:        DefaultMessageOpenFormat,
		closeString:       DefaultMessageCloseString,
		separator:         DefaultMessageSeparatorString,
		translateMessages: true,
		textDomain:        DefaultTextDomain,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(helper)
	}
	return helper
}

// Name identifies the helper in registries.
func (h *FormErrors) Name() string {
	return "formErrors"
}

// Attributes returns a copy of the helper's default attributes.
func (h *FormErrors) Attributes() htmlattr.Attrs {
	return htmlattr.Clone(h.attributes)
}

// SetAttributes replaces the helper's default attributes.
func (h *FormErrors) SetAttributes(attrs htmlattr.Attrs) *FormErrors {
	h.attributes = htmlattr.Clone(attrs)
	return h
}

// MessageOpenFormat returns the opening markup format.
func (h *FormErrors) MessageOpenFormat() string {
	return h.openFormat
}

// SetMessageOpenFormat replaces the opening markup format.
func (h *FormErrors) SetMessageOpenFormat(format string) *FormErrors {
	h.openFormat = format
	return h
}

// MessageCloseString returns the closing markup.
func (h *FormErrors) MessageCloseString() string {
	return h.closeString
}

// SetMessageCloseString replaces the closing markup.
func (h *FormErrors) SetMessageCloseString(close string) *FormErrors {
	h.closeString = close
	return h
}

// MessageSeparatorString returns the markup placed between messages.
func (h *FormErrors) MessageSeparatorString() string {
	return h.separator
}

// SetMessageSeparatorString replaces the markup placed between messages.
func (h *FormErrors) SetMessageSeparatorString(separator string) *FormErrors {
	h.separator = separator
	return h
}

// TranslateErrorMessages reports whether messages are translated when a
// translator is configured.
func (h *FormErrors) TranslateErrorMessages() bool {
	return h.translateMessages
}

// SetTranslateErrorMessages toggles message translation.
func (h *FormErrors) SetTranslateErrorMessages(enabled bool) *FormErrors {
	h.translateMessages = enabled
	return h
}

// Translator returns the configured translator, or nil.
func (h *FormErrors) Translator() Translator {
	return h.translator
}

// SetTranslator replaces the configured translator.
func (h *FormErrors) SetTranslator(t Translator) *FormErrors {
	h.translator = t
	return h
}

// TranslatorTextDomain returns the translation-catalog namespace.
func (h *FormErrors) TranslatorTextDomain() string {
	return h.textDomain
}

// SetTranslatorTextDomain replaces the translation-catalog namespace.
func (h *FormErrors) SetTranslatorTextDomain(domain string) *FormErrors {
	h.textDomain = domain
	return h
}

// Render produces the markup for the element's validation messages. Elements
// without messages yield an empty string, not an empty tag pair. Call-site
// attributes override the helper's defaults name by name. Translator failures
// propagate unwrapped.
func (h *FormErrors) Render(el element.Element, attrs htmlattr.Attrs) (string, error) {
	if el == nil {
		return "", errors.New("render: element is required")
	}
	if h.translateMessages && h.requireTranslator && h.translator == nil {
		return "", ErrMissingTranslator
	}

	messages := el.Messages()
	if messages.IsEmpty() {
		return "", nil
	}

	flattened, err := h.flatten(messages)
	if err != nil {
		return "", err
	}
	if len(flattened) == 0 {
		return "", nil
	}

	fragment := htmlattr.String(htmlattr.Merge(h.attributes, attrs))
	if fragment != "" {
		fragment = " " + fragment
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(h.openFormat, fragment))
	builder.WriteString(strings.Join(flattened, h.separator))
	builder.WriteString(h.closeString)
	return builder.String(), nil
}

func (h *FormErrors) flatten(messages message.Tree) ([]string, error) {
	translate := h.translateMessages && h.translator != nil

	out := make([]string, 0, messages.Len())
	err := messages.Walk(func(msg string) error {
		if translate {
			translated, err := h.translator.Translate(msg, h.textDomain)
			if err != nil {
				return err
			}
			msg = translated
		}
		if h.sanitizer != nil {
			msg = h.sanitizer.Sanitize(msg)
		}
		out = append(out, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

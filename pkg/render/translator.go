// Package render provides view helpers that turn form-element validation
// state into HTML fragments.
package render

import "errors"

// ErrMissingTranslator is reported when a helper requires translation but no
// translator has been configured.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// DefaultTextDomain is the translation-catalog namespace used when callers do
// not configure one.
const DefaultTextDomain = "default"

// Translator resolves a validation message through a translation catalog.
// textDomain selects the catalog namespace; implementations that keep a single
// catalog may ignore it.
type Translator interface {
	Translate(message, textDomain string) (string, error)
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(message, textDomain string) (string, error)

func (f TranslatorFunc) Translate(message, textDomain string) (string, error) {
	return f(message, textDomain)
}

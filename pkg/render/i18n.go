package render

import (
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// I18nTranslator adapts a go-i18n bundle to the Translator interface. The
// validation message is used as the message ID. go-i18n keeps one catalog per
// bundle, so the text domain argument is accepted for interface compatibility
// and ignored; callers needing separate domains construct one translator per
// bundle.
type I18nTranslator struct {
	bundle  *i18n.Bundle
	locales []string
	strict  bool
}

// I18nOption configures an I18nTranslator.
type I18nOption func(*I18nTranslator)

// WithLocales sets the locale lookup order (e.g. "es", "en"). The bundle's
// default language is always the final fallback.
func WithLocales(locales ...string) I18nOption {
	return func(t *I18nTranslator) {
		t.locales = append([]string(nil), locales...)
	}
}

// Strict makes untranslatable messages surface as errors instead of passing
// through verbatim.
func Strict() I18nOption {
	return func(t *I18nTranslator) {
		t.strict = true
	}
}

// NewI18nTranslator wraps a go-i18n bundle. By default messages without a
// catalog entry pass through untranslated.
func NewI18nTranslator(bundle *i18n.Bundle, options ...I18nOption) (*I18nTranslator, error) {
	if bundle == nil {
		return nil, errors.New("render: i18n bundle is required")
	}
	translator := &I18nTranslator{bundle: bundle}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(translator)
	}
	return translator, nil
}

// Translate resolves the message through the bundle's catalog.
func (t *I18nTranslator) Translate(message, _ string) (string, error) {
	localizer := i18n.NewLocalizer(t.bundle, t.locales...)
	translated, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: message})
	if err != nil {
		if t.strict {
			return "", fmt.Errorf("render: translate %q: %w", message, err)
		}
		return message, nil
	}
	return translated, nil
}

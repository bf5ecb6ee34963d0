package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formview/pkg/htmlattr"
)

// Theme token keys error helpers understand. Themes publish the CSS classes
// their stylesheets expect on validation feedback markup.
const (
	ThemeTokenErrorsClass  = "errors.class"
	ThemeTokenSummaryClass = "errors.summaryClass"
)

// ThemeAttributes resolves a theme/variant selection and returns the
// attributes a themed error list should carry. Selections that publish no
// error tokens yield nil attributes without error.
func ThemeAttributes(selector theme.ThemeSelector, name, variant string) (htmlattr.Attrs, error) {
	return themeClassAttrs(selector, name, variant, ThemeTokenErrorsClass)
}

// ThemeSummaryAttributes resolves the attributes a themed summary container
// should carry.
func ThemeSummaryAttributes(selector theme.ThemeSelector, name, variant string) (htmlattr.Attrs, error) {
	return themeClassAttrs(selector, name, variant, ThemeTokenSummaryClass)
}

func themeClassAttrs(selector theme.ThemeSelector, name, variant, token string) (htmlattr.Attrs, error) {
	if selector == nil {
		return nil, fmt.Errorf("render: theme selector is required")
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	class := strings.TrimSpace(selection.Manifest.Tokens[token])
	if class == "" {
		return nil, nil
	}
	return htmlattr.Attrs{"class": class}, nil
}

// WithThemedAttributes resolves error-list attributes from a theme selection
// and seeds them as the helper's defaults. Resolution failures surface through
// the returned error before any helper is constructed.
func WithThemedAttributes(selector theme.ThemeSelector, name, variant string) (FormErrorsOption, error) {
	attrs, err := ThemeAttributes(selector, name, variant)
	if err != nil {
		return nil, err
	}
	return WithAttributes(attrs), nil
}

// WithThemedSummaryAttributes resolves summary-container attributes from a
// theme selection and seeds them as the summary's defaults.
func WithThemedSummaryAttributes(selector theme.ThemeSelector, name, variant string) (SummaryOption, error) {
	attrs, err := ThemeSummaryAttributes(selector, name, variant)
	if err != nil {
		return nil, err
	}
	return WithSummaryAttributes(attrs), nil
}

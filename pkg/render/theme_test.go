package render_test

import (
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formview/pkg/element"
	"github.com/goliatone/go-formview/pkg/render"
)

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
}

func (s *stubThemeSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.selection, nil
}

func TestThemeAttributes_ResolvesErrorClass(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name: "acme",
			Tokens: map[string]string{
				render.ThemeTokenErrorsClass: "acme-errors",
			},
		},
	}}

	attrs, err := render.ThemeAttributes(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("theme attributes: %v", err)
	}
	if attrs["class"] != "acme-errors" {
		t.Fatalf("unexpected attributes: %v", attrs)
	}
}

func TestThemeAttributes_NoTokensYieldsNil(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Manifest: &theme.Manifest{Name: "bare"},
	}}

	attrs, err := render.ThemeAttributes(selector, "bare", "")
	if err != nil {
		t.Fatalf("theme attributes: %v", err)
	}
	if attrs != nil {
		t.Fatalf("expected nil attributes, got %v", attrs)
	}
}

func TestThemeAttributes_SelectorErrorPropagates(t *testing.T) {
	boom := errors.New("unknown theme")
	if _, err := render.ThemeAttributes(&stubThemeSelector{err: boom}, "missing", ""); !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestWithThemedSummaryAttributes_SeedsContainerDefaults(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Manifest: &theme.Manifest{
			Tokens: map[string]string{render.ThemeTokenSummaryClass: "acme-summary"},
		},
	}}

	opt, err := render.WithThemedSummaryAttributes(selector, "acme", "")
	if err != nil {
		t.Fatalf("themed summary attributes option: %v", err)
	}

	summary, err := render.NewErrorSummary(opt)
	if err != nil {
		t.Fatalf("new summary: %v", err)
	}

	got, err := summary.Render([]element.Element{element.New("email").AddMessage("Required")}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(got, `<div class="acme-summary">`) {
		t.Fatalf("unexpected container open tag: %q", got)
	}
}

func TestWithThemedAttributes_SeedsHelperDefaults(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Manifest: &theme.Manifest{
			Tokens: map[string]string{render.ThemeTokenErrorsClass: "themed"},
		},
	}}

	opt, err := render.WithThemedAttributes(selector, "acme", "")
	if err != nil {
		t.Fatalf("themed attributes option: %v", err)
	}

	helper := render.NewFormErrors(opt)
	got, err := helper.Render(element.New("title").AddMessage("Required"), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<ul class="themed"><li>Required</li></ul>`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

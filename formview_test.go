package formview_test

import (
	"strings"
	"testing"

	formview "github.com/goliatone/go-formview"
	"github.com/goliatone/go-formview/pkg/element"
	"github.com/goliatone/go-formview/pkg/render"
)

func TestRenderErrors(t *testing.T) {
	field := element.New("title").AddMessage("Required")

	got, err := formview.RenderErrors(field, formview.Attrs{"class": "errors"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<ul class="errors"><li>Required</li></ul>`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRenderErrors_WithOptions(t *testing.T) {
	field := element.New("title").AddMessage("Required")

	got, err := formview.RenderErrors(field, nil,
		render.WithMessageOpenFormat("<div%s><span>"),
		render.WithMessageCloseString("</span></div>"),
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<div><span>Required</span></div>"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRenderErrorSummary(t *testing.T) {
	elements := []formview.Element{
		element.New("email").AddMessage("Invalid address"),
		element.New("name"),
	}

	got, err := formview.RenderErrorSummary(elements, nil)
	if err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(got, `data-element="email"`) {
		t.Fatalf("expected email section in %q", got)
	}
	if strings.Contains(got, `data-element="name"`) {
		t.Fatalf("clean element should be skipped: %q", got)
	}
}

func TestNewRegistry(t *testing.T) {
	registry := formview.NewRegistry()

	helper, err := registry.Get("formErrors")
	if err != nil {
		t.Fatalf("get helper: %v", err)
	}
	if helper.Name() != "formErrors" {
		t.Fatalf("unexpected helper name %q", helper.Name())
	}
}

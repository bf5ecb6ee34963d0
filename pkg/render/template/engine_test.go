package template_test

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formview/pkg/render/template"
)

func TestEngine_NoSourceConfigured(t *testing.T) {
	// Constructing without options must yield a usable inline engine, not a
	// panic from the underlying template set.
	engine, err := template.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("{{ count }} errors", map[string]any{"count": 2})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "2 errors" {
		t.Fatalf("want %q, got %q", "2 errors", got)
	}

	if _, err := engine.RenderTemplate("missing.tpl", nil); err == nil {
		t.Fatal("expected load error for named template without a source")
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := template.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("Hello {{ name }}!", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Hello World!" {
		t.Fatalf("want %q, got %q", "Hello World!", got)
	}
}

func TestEngine_RenderString_Loop(t *testing.T) {
	engine, err := template.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString(
		`{% for item in items %}[{{ item }}]{% endfor %}`,
		map[string]any{"items": []any{"a", "b"}},
	)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "[a][b]" {
		t.Fatalf("want %q, got %q", "[a][b]", got)
	}
}

func TestEngine_RenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tpl": &fstest.MapFile{Data: []byte("Hi {{ who }}")},
	}

	engine, err := template.New(template.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("greeting.tpl", map[string]any{"who": "there"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if got != "Hi there" {
		t.Fatalf("want %q, got %q", "Hi there", got)
	}

	// The second render hits the parsed-template cache.
	if _, err := engine.RenderTemplate("greeting.tpl", map[string]any{"who": "again"}); err != nil {
		t.Fatalf("render cached template: %v", err)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := template.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("absent.tpl", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestEngine_ParseError(t *testing.T) {
	engine, err := template.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderString("{% for %}", nil); err == nil {
		t.Fatal("expected parse error")
	}
}

package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/render"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	helper := render.NewFormErrors()

	if err := registry.Register(helper); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := registry.Get("formErrors")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != render.Helper(helper) {
		t.Fatal("expected registered helper instance")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(render.NewFormErrors())

	if err := registry.Register(render.NewFormErrors()); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistry_MissingHelper(t *testing.T) {
	if _, err := render.NewRegistry().Get("nope"); err == nil {
		t.Fatal("expected lookup error")
	}
}

func TestRegistry_NilHelper(t *testing.T) {
	if err := render.NewRegistry().Register(nil); err == nil {
		t.Fatal("expected error for nil helper")
	}
}

func TestRegistry_List(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(render.NewFormErrors())

	if diff := cmp.Diff([]string{"formErrors"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

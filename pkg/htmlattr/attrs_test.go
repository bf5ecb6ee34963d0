package htmlattr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/htmlattr"
)

func TestMerge_OverrideWins(t *testing.T) {
	base := htmlattr.Attrs{"class": "a", "data-role": "errors"}
	override := htmlattr.Attrs{"class": "b", "id": "x"}

	merged := htmlattr.Merge(base, override)

	want := htmlattr.Attrs{"class": "b", "data-role": "errors", "id": "x"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}

	// Inputs stay untouched.
	if base["class"] != "a" {
		t.Fatalf("base mutated: %v", base)
	}
}

func TestMerge_EmptyInputs(t *testing.T) {
	if got := htmlattr.Merge(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := htmlattr.Merge(nil, htmlattr.Attrs{"id": "x"}); got["id"] != "x" {
		t.Fatalf("expected override to pass through, got %v", got)
	}
}

func TestString_EscapesAndSorts(t *testing.T) {
	cases := []struct {
		name  string
		attrs htmlattr.Attrs
		want  string
	}{
		{name: "empty", attrs: nil, want: ""},
		{name: "single", attrs: htmlattr.Attrs{"class": "errors"}, want: `class="errors"`},
		{
			name:  "sorted pairs",
			attrs: htmlattr.Attrs{"id": "x", "class": "b"},
			want:  `class="b" id="x"`,
		},
		{
			name:  "escaped value",
			attrs: htmlattr.Attrs{"title": `say "hi" & <bye>`},
			want:  `title="say &#34;hi&#34; &amp; &lt;bye&gt;"`,
		},
		{
			name:  "blank name skipped",
			attrs: htmlattr.Attrs{"": "nope", "class": "kept"},
			want:  `class="kept"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := htmlattr.String(tc.attrs); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

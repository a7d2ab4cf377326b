package weft

import (
	"errors"
	"testing"

	"github.com/weft-dev/weft/el"
	"github.com/weft-dev/weft/pkg/ht"
)

// =============================================================================
// Render callback dispatch
// =============================================================================

func TestRenderCallbackSignatures(t *testing.T) {
	want := "<div><h1>Hello</h1><p>World</p></div>"

	tests := []struct {
		name     string
		callback any
	}{
		{
			"func() any",
			func() any {
				return el.Div(el.H1("Hello"), el.P("World"))
			},
		},
		{
			"func(el.Builder) any",
			func(b el.Builder) any {
				return b.Div(b.H1("Hello"), b.P("World"))
			},
		},
		{
			"func() *ht.Element",
			func() *ht.Element {
				return el.Div(el.H1("Hello"), el.P("World"))
			},
		},
		{
			"func(el.Builder) *ht.Element",
			func(b el.Builder) *ht.Element {
				return b.Div(b.H1("Hello"), b.P("World"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.callback)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestRenderReturnInterpretation(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   string
	}{
		{"element", el.Span("hi"), "<span>hi</span>"},
		{"raw unwrapped", Raw("<b>verbatim</b>"), "<b>verbatim</b>"},
		{"nil empty", nil, ""},
		{"string as-is", "<not>escaped", "<not>escaped"},
		{"int stringified", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(func() any { return tt.result })
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTypedNilElement(t *testing.T) {
	got, err := Render(func() *ht.Element { return nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestRenderUnsupportedCallback(t *testing.T) {
	if _, err := Render(func(n int) any { return n }); err == nil {
		t.Error("expected error for unsupported callback signature")
	}
	if _, err := Render("not a function"); err == nil {
		t.Error("expected error for non-function callback")
	}
}

func TestRenderSurfacesElementError(t *testing.T) {
	_, err := Render(func() any {
		return el.Div(el.El("not a tag"))
	})
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("expected ErrInvalidTag, got %v", err)
	}
}

// =============================================================================
// Construction re-exports
// =============================================================================

func TestNewReturnsError(t *testing.T) {
	node, err := New("div", Attr{Key: "onclick", Value: "boom()"})
	if node != nil {
		t.Errorf("expected nil node on error, got %v", node)
	}
	if !errors.Is(err, ErrForbiddenEventHandler) {
		t.Errorf("expected ErrForbiddenEventHandler, got %v", err)
	}
}

func TestElCarriesError(t *testing.T) {
	node := El("div", Attrs{"onclick": "boom()"})
	if node == nil {
		t.Fatal("El should never return nil")
	}
	if !errors.Is(node.Err(), ErrForbiddenEventHandler) {
		t.Errorf("expected ErrForbiddenEventHandler, got %v", node.Err())
	}
}

func TestTextAndGroup(t *testing.T) {
	got, err := Group(Text("a & b"), Textf("%d", 7)).Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a &amp; b7"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// =============================================================================
// Document and fragment
// =============================================================================

func TestDocument(t *testing.T) {
	got, err := Document(el.Html(el.Body(el.P("hi"))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<!DOCTYPE html>\n<html><body><p>hi</p></body></html>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFragment(t *testing.T) {
	got, err := Fragment(el.Span("a"), " & ", el.Span("b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<span>a</span> &amp; <span>b</span>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// =============================================================================
// Type aliases
// =============================================================================

func TestAliasedTypesAreInterchangeable(t *testing.T) {
	var a Attr = el.ID("x")
	var hta ht.Attr = a
	_ = hta

	var r Raw = ht.Raw("<hr>")
	var elr el.Raw = r
	_ = elr

	var b Builder
	node := b.Div(a)
	if node.Tag() != "div" {
		t.Errorf("got tag %q, want %q", node.Tag(), "div")
	}
}

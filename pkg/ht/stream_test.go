package ht

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func collect(s *Stream) []string {
	var frags []string
	for s.Next() {
		frags = append(frags, s.Fragment())
	}
	return frags
}

func TestStreamMatchesRender(t *testing.T) {
	node := El("article",
		Attr{Key: "class", Value: "post"},
		El("h1", "Title & more"),
		El("p", "Body ", El("em", "text")),
		Raw("<hr>"),
	)

	want, err := node.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := node.Stream()
	got := strings.Join(collect(s), "")
	if err := s.Err(); err != nil {
		t.Fatalf("unexpected stream error: %v", err)
	}
	if got != want {
		t.Errorf("stream output differs from render:\n got %q\nwant %q", got, want)
	}
}

func TestStreamFragmentBoundaries(t *testing.T) {
	node := El("div", Attr{Key: "id", Value: "a"}, "x", El("br"), Raw("<!--c-->"))

	s := node.Stream()
	got := collect(s)
	if err := s.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{`<div id="a">`, "x", "<br>", "<!--c-->", "</div>"}
	if len(got) != len(want) {
		t.Fatalf("got %d fragments %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStreamSinglePass(t *testing.T) {
	node := El("p", "once")
	s := node.Stream()
	collect(s)

	if s.Next() {
		t.Error("exhausted stream must stay exhausted")
	}
	if s.Fragment() != "" {
		t.Errorf("exhausted stream fragment should be empty, got %q", s.Fragment())
	}
}

func TestStreamIndependentTraversals(t *testing.T) {
	node := El("p", "same & again")

	first := strings.Join(collect(node.Stream()), "")
	second := strings.Join(collect(node.Stream()), "")
	if first != second {
		t.Errorf("traversals differ: %q vs %q", first, second)
	}
	if first != "<p>same &amp; again</p>" {
		t.Errorf("got %q", first)
	}
}

func TestStreamDoesNotPopulateCache(t *testing.T) {
	node := El("p", "lazy")
	collect(node.Stream())

	if node.rendered.Load() != nil {
		t.Error("streaming must not populate the render cache")
	}
}

func TestStreamStopsOnDangerousURL(t *testing.T) {
	node := El("div", "pre", El("a", Attr{Key: "href", Value: "javascript:x()"}, "link"), "post")

	s := node.Stream()
	got := collect(s)

	if err := s.Err(); !errors.Is(err, ErrDangerousURLScheme) {
		t.Fatalf("got %v, want DangerousURLScheme", err)
	}
	joined := strings.Join(got, "")
	if joined != "<div>pre" {
		t.Errorf("stream should stop before the failing element, got %q", joined)
	}
	if strings.Contains(joined, "<a") || strings.Contains(joined, "post") {
		t.Errorf("failing element must contribute nothing, got %q", joined)
	}
	if s.Next() {
		t.Error("failed stream must not resume")
	}
}

func TestStreamPoisonedNode(t *testing.T) {
	s := El("no way").Stream()
	if s.Next() {
		t.Errorf("poisoned node must yield nothing, got %q", s.Fragment())
	}
	if !errors.Is(s.Err(), ErrInvalidTag) {
		t.Errorf("got %v, want InvalidTag", s.Err())
	}
}

func TestStreamNilElement(t *testing.T) {
	var node *Element
	s := node.Stream()
	if s.Next() {
		t.Error("nil element must yield nothing")
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestStreamVoidElement(t *testing.T) {
	s := El("img", Attr{Key: "src", Value: "/x.png"}, "ignored").Stream()
	got := collect(s)
	if err := s.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != `<img src="/x.png">` {
		t.Errorf("got %v, want single void fragment", got)
	}
}

func TestStreamGroup(t *testing.T) {
	s := Group("a", El("b", "c")).Stream()
	got := strings.Join(collect(s), "")
	if s.Err() != nil {
		t.Fatalf("unexpected error: %v", s.Err())
	}
	if got != "a<b>c</b>" {
		t.Errorf("got %q, want %q", got, "a<b>c</b>")
	}
}

func TestWriteTo(t *testing.T) {
	node := El("div", El("p", "hello"))

	var buf bytes.Buffer
	n, err := node.WriteTo(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div><p>hello</p></div>"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("got %d bytes, want %d", n, len(want))
	}
}

func TestWriteToPropagatesError(t *testing.T) {
	node := El("a", Attr{Key: "href", Value: "vbscript:x"})

	var buf bytes.Buffer
	_, err := node.WriteTo(&buf)
	if !errors.Is(err, ErrDangerousURLScheme) {
		t.Errorf("got %v, want DangerousURLScheme", err)
	}
	if buf.Len() != 0 {
		t.Errorf("failing element must write nothing, got %q", buf.String())
	}
}

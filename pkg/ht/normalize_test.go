package ht

import (
	"testing"
)

type ipish struct{ a, b byte }

func (p ipish) String() string { return "stringer" }

func TestNormalizeInputs(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		want string
	}{
		{"string", "hi", "<div>hi</div>"},
		{"int", 42, "<div>42</div>"},
		{"int64", int64(-7), "<div>-7</div>"},
		{"float", 1.25, "<div>1.25</div>"},
		{"true becomes text", true, "<div>true</div>"},
		{"false vanishes", false, "<div></div>"},
		{"nil vanishes", nil, "<div></div>"},
		{"element", El("span", "x"), "<div><span>x</span></div>"},
		{"raw", Raw("<b>r</b>"), "<div><b>r</b></div>"},
		{"string slice", []string{"a", "b"}, "<div>ab</div>"},
		{"element slice", []*Element{El("i", "x"), nil, El("i", "y")}, "<div><i>x</i><i>y</i></div>"},
		{"child value", Child{Kind: KindText, Text: "c"}, "<div>c</div>"},
		{"child slice", []Child{{Kind: KindText, Text: "a"}, {Kind: KindRaw, Text: "<b>"}}, "<div>a<b></div>"},
		{"nested any slice", []any{"a", []any{"b", []any{"c"}}}, "<div>abc</div>"},
		{"mixed slice", []any{nil, false, "a", El("br")}, "<div>a<br></div>"},
		{"stringer", ipish{}, "<div>stringer</div>"},
		{"typed nil element", (*Element)(nil), "<div></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := El("div", tt.arg).Render()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestNormalizeOrderPreserved(t *testing.T) {
	node := El("div", "a", El("b", "1"), "c", Raw("<!--x-->"), "d")
	html, err := node.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>a<b>1</b>c<!--x-->d</div>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestNormalizeEscapesLateNotEarly(t *testing.T) {
	// The child sequence stores the raw text; escaping happens at render.
	node := El("div", "a<b")
	kids := node.Children()
	if kids[0].Text != "a<b" {
		t.Errorf("normalization must not escape, got %q", kids[0].Text)
	}
	html, _ := node.Render()
	if html != "<div>a&lt;b</div>" {
		t.Errorf("render must escape, got %q", html)
	}
}

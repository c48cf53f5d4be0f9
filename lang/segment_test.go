package lang

import (
	"errors"
	"reflect"
	"testing"
)

func TestSegmentPlainTextRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "plain prose", input: "Hello, world.\nSecond line.\n"},
		{name: "single open brace", input: "a { b"},
		{name: "single close brace", input: "a } b"},
		{name: "brace at end", input: "trailing {"},
		{name: "unicode text", input: "héllo wörld — ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Segment(tt.input, "doc.md")
			if err != nil {
				t.Fatalf("segment error: %v", err)
			}

			if got := Render(doc); got != tt.input {
				t.Errorf("round trip = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestSegmentCallExtraction(t *testing.T) {
	doc, err := Segment("Hello {{include(#name.md#)}} world", "doc.md")
	if err != nil {
		t.Fatalf("segment error: %v", err)
	}

	want := Document{
		TextNode{Content: "Hello ", Source: "doc.md"},
		CallNode{
			Function:  "include",
			Arguments: []Value{NewPath("name.md")},
			Source:    "doc.md",
		},
		TextNode{Content: " world", Source: "doc.md"},
	}

	if !reflect.DeepEqual(doc, want) {
		t.Errorf("segment = %#v, want %#v", doc, want)
	}
}

func TestSegmentUnterminatedOpen(t *testing.T) {
	// A lone "{{" starts a call that never closes; the leftover call
	// body degrades to a trailing text node.
	doc, err := Segment("{{", "doc.md")
	if err != nil {
		t.Fatalf("segment error: %v", err)
	}

	want := Document{
		TextNode{Content: "", Source: "doc.md"},
		TextNode{Content: "", Source: "doc.md"},
	}

	if !reflect.DeepEqual(doc, want) {
		t.Errorf("segment = %#v, want %#v", doc, want)
	}
}

func TestSegmentSingleBraceIsNotDelimiter(t *testing.T) {
	doc, err := Segment("{ not a call }", "doc.md")
	if err != nil {
		t.Fatalf("segment error: %v", err)
	}

	if doc.Calls() != 0 {
		t.Errorf("found %d calls in text with single braces", doc.Calls())
	}
}

func TestSegmentTrailingTextAlwaysEmitted(t *testing.T) {
	doc, err := Segment("x{{f(1)}}", "doc.md")
	if err != nil {
		t.Fatalf("segment error: %v", err)
	}

	// Text, Call, and the empty trailing Text.
	if len(doc) != 3 {
		t.Fatalf("len(doc) = %d, want 3", len(doc))
	}

	last, ok := doc[2].(TextNode)
	if !ok || last.Content != "" {
		t.Errorf("trailing node = %#v, want empty TextNode", doc[2])
	}
}

func TestSegmentMultipleCalls(t *testing.T) {
	doc, err := Segment("a{{f(1)}}b{{g(2)}}c", "doc.md")
	if err != nil {
		t.Fatalf("segment error: %v", err)
	}

	if doc.Calls() != 2 {
		t.Fatalf("Calls() = %d, want 2", doc.Calls())
	}

	first, ok := doc[1].(CallNode)
	if !ok || first.Function != "f" {
		t.Errorf("doc[1] = %#v, want call to f", doc[1])
	}

	second, ok := doc[3].(CallNode)
	if !ok || second.Function != "g" {
		t.Errorf("doc[3] = %#v, want call to g", doc[3])
	}
}

func TestSegmentPropagatesCallParseError(t *testing.T) {
	_, err := Segment("before {{f(xyz)}} after", "doc.md")
	if !errors.Is(err, ErrInvalidInteger) {
		t.Errorf("err = %v, want ErrInvalidInteger", err)
	}
}

func TestSegmentOriginRecordedOnAllNodes(t *testing.T) {
	doc, err := Segment("a{{f(1)}}b", "nested/dir/doc.md")
	if err != nil {
		t.Fatalf("segment error: %v", err)
	}

	for i, n := range doc {
		if n.Origin() != "nested/dir/doc.md" {
			t.Errorf("doc[%d].Origin() = %q", i, n.Origin())
		}
	}
}

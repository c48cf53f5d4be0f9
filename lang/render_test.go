package lang

import "testing"

func TestRenderConcatenatesInOrder(t *testing.T) {
	doc := Document{
		TextNode{Content: "one ", Source: "a.md"},
		TextNode{Content: "two ", Source: "b.md"},
		TextNode{Content: "three", Source: "a.md"},
	}

	if got := Render(doc); got != "one two three" {
		t.Errorf("render = %q, want %q", got, "one two three")
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("render = %q, want empty", got)
	}
}

func TestRenderPanicsOnCallNode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("render did not panic on unevaluated call node")
		}
	}()

	Render(Document{
		CallNode{Function: "include", Source: "doc.md"},
	})
}

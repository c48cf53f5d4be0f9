package lang

import "log/slog"

// Node is one segment of a parsed document: either literal text or an
// unresolved macro call. The set of implementations is closed.
type Node interface {
	// Origin returns the path of the source document this node was
	// produced from. It is never empty, which is what makes relative
	// path resolution work at arbitrary include depth.
	Origin() string

	node()
}

// TextNode is literal output text.
type TextNode struct {
	Content string
	Source  string
}

// Origin implements [Node].
func (n TextNode) Origin() string { return n.Source }

func (TextNode) node() {}

// CallNode is a parsed macro invocation awaiting evaluation.
type CallNode struct {
	Function  string
	Arguments []Value
	Source    string
}

// Origin implements [Node].
func (n CallNode) Origin() string { return n.Source }

func (CallNode) node() {}

// LogValue implements slog.LogValuer.
func (n CallNode) LogValue() slog.Value {
	args := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = a.String()
	}

	return slog.GroupValue(
		slog.String("function", n.Function),
		slog.Any("arguments", args),
		slog.String("origin", n.Source),
	)
}

// Document is an ordered sequence of nodes. Each processing stage fully
// owns and consumes its input sequence, producing a new owned sequence.
type Document []Node

// Calls returns the number of unresolved call nodes in the document.
func (d Document) Calls() int {
	n := 0

	for _, node := range d {
		if _, ok := node.(CallNode); ok {
			n++
		}
	}

	return n
}

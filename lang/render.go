package lang

import (
	"fmt"
	"strings"
)

// Render flattens a fully evaluated document into its final text by
// concatenating the content of every text node in order.
//
// A call node surviving to this point means the evaluator did not fully
// reduce the document, which is a programming-contract violation, not a
// recoverable user error: Render panics.
func Render(doc Document) string {
	var sb strings.Builder

	for _, n := range doc {
		text, ok := n.(TextNode)
		if !ok {
			panic(fmt.Sprintf(
				"lang: unevaluated call node in render: %v", n,
			))
		}

		sb.WriteString(text.Content)
	}

	return sb.String()
}

// Package lang implements the macro language at the heart of markc.
//
// A source document is plain text interleaved with macro calls written as
//
//	{{ function(arg, ...) }}
//
// where arguments are path literals (#docs/intro.md#), string literals
// ("hello, world"), or signed integers. [Segment] tokenizes a document into
// an ordered [Document] of [TextNode] and [CallNode] values. [Evaluate]
// dispatches each call through an ordered [Registry] of [Plugin]
// implementations, recursively expanding any calls contained in plugin
// output, until only text remains. [Render] flattens the fully evaluated
// document back into a string.
//
// Every node records the path of the document it was produced from, which
// is how relative path arguments resolve correctly at arbitrary include
// depth: a path inside an included file is resolved against that file's
// directory, not the top-level document's.
//
// The call delimiters are the literal two-character sequences "{{" and
// "}}". There is no escaping mechanism; a literal "{{" cannot appear in
// output text.
package lang

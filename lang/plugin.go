package lang

import (
	"log/slog"

	"github.com/sahilm/fuzzy"
)

// Context carries the per-call state passed to a plugin. It is derived
// from the invoking call node and never shared or mutated across calls.
type Context struct {
	// BaseDir is the directory of the document containing the call.
	// Plugins resolve relative path arguments against it.
	BaseDir string

	// Origin is the path of the document containing the call. Plugins
	// that synthesize text nodes use it as the source of those nodes.
	Origin string
}

// Plugin is a capability provider callable from macro syntax.
//
// Call returns a fresh document which may itself contain further call
// nodes; the evaluator expands those recursively before splicing the
// result into the output stream.
type Plugin interface {
	// ExposedFunctions returns the static set of functions this plugin
	// handles. It is queried once per dispatch decision.
	ExposedFunctions() []FunctionDescriptor

	// Call executes the named function with the given arguments.
	Call(function string, arguments []Value, ctx Context) (Document, error)
}

// Registry is an ordered sequence of plugins. Dispatch picks the first
// plugin, in registration order, whose exposed functions include the
// requested name. Overlapping names across plugins are legal; the first
// match wins silently.
type Registry []Plugin

// Lookup returns the first plugin exposing the named function.
func (r Registry) Lookup(function string) (Plugin, bool) {
	for _, p := range r {
		for _, f := range p.ExposedFunctions() {
			if f.Name == function {
				return p, true
			}
		}
	}

	return nil, false
}

// Names returns the names of all functions exposed across the registry,
// in registration order.
func (r Registry) Names() []string {
	var names []string

	for _, p := range r {
		for _, f := range p.ExposedFunctions() {
			names = append(names, f.Name)
		}
	}

	return names
}

// notFound builds the dispatch failure for an unknown function name,
// attaching the closest known name as a suggestion when one exists.
func (r Registry) notFound(function string) error {
	err := ErrFunctionNotFound.
		With(slog.String("function", function))

	matches := fuzzy.Find(function, r.Names())
	if len(matches) > 0 {
		err = err.With(slog.String("suggestion", matches[0].Str))
	}

	return err
}

package lang

import (
	"errors"
	"reflect"
	"testing"
)

// stubPlugin is a configurable test double for the Plugin interface.
type stubPlugin struct {
	functions []FunctionDescriptor
	call      func(string, []Value, Context) (Document, error)
}

func (p *stubPlugin) ExposedFunctions() []FunctionDescriptor {
	return p.functions
}

func (p *stubPlugin) Call(
	function string,
	arguments []Value,
	ctx Context,
) (Document, error) {
	return p.call(function, arguments, ctx)
}

func descriptors(names ...string) []FunctionDescriptor {
	fns := make([]FunctionDescriptor, len(names))
	for i, name := range names {
		fns[i] = FunctionDescriptor{Name: name}
	}

	return fns
}

func TestEvaluateTextPassthrough(t *testing.T) {
	doc := Document{
		TextNode{Content: "a", Source: "doc.md"},
		TextNode{Content: "b", Source: "doc.md"},
	}

	got, err := Evaluate(doc, nil)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if !reflect.DeepEqual(got, doc) {
		t.Errorf("evaluate = %#v, want unchanged %#v", got, doc)
	}
}

func TestEvaluateSplicesPluginOutput(t *testing.T) {
	greet := &stubPlugin{
		functions: descriptors("greet"),
		call: func(_ string, _ []Value, ctx Context) (Document, error) {
			return Document{
				TextNode{Content: "Bob", Source: ctx.Origin},
			}, nil
		},
	}

	doc := Document{
		TextNode{Content: "Hello ", Source: "doc.md"},
		CallNode{Function: "greet", Source: "doc.md"},
		TextNode{Content: " world", Source: "doc.md"},
	}

	got, err := Evaluate(doc, Registry{greet})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if Render(got) != "Hello Bob world" {
		t.Errorf("render = %q, want %q", Render(got), "Hello Bob world")
	}
}

func TestEvaluateRecursesIntoPluginOutput(t *testing.T) {
	// outer produces a call to inner, which must be expanded before
	// splicing.
	plugin := &stubPlugin{
		functions: descriptors("outer", "inner"),
	}
	plugin.call = func(
		function string,
		_ []Value,
		ctx Context,
	) (Document, error) {
		switch function {
		case "outer":
			return Document{
				CallNode{Function: "inner", Source: ctx.Origin},
			}, nil
		default:
			return Document{
				TextNode{Content: "deep", Source: ctx.Origin},
			}, nil
		}
	}

	doc := Document{CallNode{Function: "outer", Source: "doc.md"}}

	got, err := Evaluate(doc, Registry{plugin})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if Render(got) != "deep" {
		t.Errorf("render = %q, want %q", Render(got), "deep")
	}
}

func TestEvaluateFunctionNotFound(t *testing.T) {
	doc := Document{CallNode{Function: "nope", Source: "doc.md"}}

	_, err := Evaluate(doc, nil)
	if !errors.Is(err, ErrFunctionNotFound) {
		t.Errorf("err = %v, want ErrFunctionNotFound", err)
	}
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	first := &stubPlugin{
		functions: descriptors("f"),
		call: func(_ string, _ []Value, ctx Context) (Document, error) {
			return Document{
				TextNode{Content: "first", Source: ctx.Origin},
			}, nil
		},
	}
	second := &stubPlugin{
		functions: descriptors("f"),
		call: func(_ string, _ []Value, ctx Context) (Document, error) {
			return Document{
				TextNode{Content: "second", Source: ctx.Origin},
			}, nil
		},
	}

	doc := Document{CallNode{Function: "f", Source: "doc.md"}}

	got, err := Evaluate(doc, Registry{first, second})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if Render(got) != "first" {
		t.Errorf("render = %q, want %q", Render(got), "first")
	}
}

func TestEvaluateContextDerivedFromOrigin(t *testing.T) {
	var seen Context

	plugin := &stubPlugin{
		functions: descriptors("probe"),
		call: func(_ string, _ []Value, ctx Context) (Document, error) {
			seen = ctx

			return Document{
				TextNode{Content: "", Source: ctx.Origin},
			}, nil
		},
	}

	doc := Document{
		CallNode{Function: "probe", Source: "dir/sub/doc.md"},
	}

	if _, err := Evaluate(doc, Registry{plugin}); err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if seen.BaseDir != "dir/sub" {
		t.Errorf("BaseDir = %q, want %q", seen.BaseDir, "dir/sub")
	}

	if seen.Origin != "dir/sub/doc.md" {
		t.Errorf("Origin = %q, want %q", seen.Origin, "dir/sub/doc.md")
	}
}

func TestEvaluatePluginErrorAbortsRun(t *testing.T) {
	boom := &stubPlugin{
		functions: descriptors("boom"),
		call: func(string, []Value, Context) (Document, error) {
			return nil, ErrExternal.Wrap(errors.New("io failure"))
		},
	}

	doc := Document{
		TextNode{Content: "before", Source: "doc.md"},
		CallNode{Function: "boom", Source: "doc.md"},
	}

	_, err := Evaluate(doc, Registry{boom})
	if !errors.Is(err, ErrExternal) {
		t.Errorf("err = %v, want ErrExternal", err)
	}
}

func TestEvaluateMaxDepth(t *testing.T) {
	// chain: a -> b -> c -> text, nesting plugin output three deep.
	plugin := &stubPlugin{
		functions: descriptors("a", "b", "c"),
	}
	plugin.call = func(
		function string,
		_ []Value,
		ctx Context,
	) (Document, error) {
		switch function {
		case "a":
			return Document{CallNode{Function: "b", Source: ctx.Origin}}, nil
		case "b":
			return Document{CallNode{Function: "c", Source: ctx.Origin}}, nil
		default:
			return Document{
				TextNode{Content: "bottom", Source: ctx.Origin},
			}, nil
		}
	}

	doc := Document{CallNode{Function: "a", Source: "doc.md"}}

	// Unbounded by default.
	got, err := Evaluate(doc, Registry{plugin})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if Render(got) != "bottom" {
		t.Errorf("render = %q, want %q", Render(got), "bottom")
	}

	// Bounded evaluation fails once plugin output nests past the limit.
	_, err = Evaluate(doc, Registry{plugin}, WithMaxDepth(1))
	if !errors.Is(err, ErrMaxDepthExceeded) {
		t.Errorf("err = %v, want ErrMaxDepthExceeded", err)
	}
}

func TestRegistryLookupOrder(t *testing.T) {
	a := &stubPlugin{functions: descriptors("x", "y")}
	b := &stubPlugin{functions: descriptors("y", "z")}

	registry := Registry{a, b}

	plugin, ok := registry.Lookup("y")
	if !ok || plugin != Plugin(a) {
		t.Errorf("Lookup(y) returned wrong plugin")
	}

	if _, ok := registry.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) succeeded")
	}

	want := []string{"x", "y", "y", "z"}
	if !reflect.DeepEqual(registry.Names(), want) {
		t.Errorf("Names() = %v, want %v", registry.Names(), want)
	}
}

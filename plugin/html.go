package plugin

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"

	"github.com/diabloproject/markc/lang"
)

// HTML splices a markdown file rendered to HTML in place of the call:
//
//	{{html(#snippets/table.md#)}}
//
// The rendered output is literal text; it is not re-scanned for macros.
type HTML struct{}

// ExposedFunctions implements [lang.Plugin].
func (HTML) ExposedFunctions() []lang.FunctionDescriptor {
	return []lang.FunctionDescriptor{
		{
			Name: "html",
			Signatures: [][]lang.ParameterType{
				{lang.ParamPath},
			},
		},
	}
}

// Call implements [lang.Plugin].
func (HTML) Call(
	function string,
	arguments []lang.Value,
	ctx lang.Context,
) (lang.Document, error) {
	if function != "html" {
		return nil, lang.ErrFunctionNotFound.
			With(slog.String("function", function))
	}

	if len(arguments) != 1 || arguments[0].Kind != lang.KindPath {
		return nil, lang.ErrInvalidArguments.
			With(slog.String("function", function)).
			With(slog.String("want", "html(path)"))
	}

	path := arguments[0].Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(ctx.BaseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lang.ErrExternal.
			With(slog.String("file", path)).
			Wrap(err)
	}

	var buf bytes.Buffer
	if err := goldmark.New().Convert(data, &buf); err != nil {
		return nil, lang.ErrExternal.
			With(slog.String("file", path)).
			Wrap(err)
	}

	return lang.Document{
		lang.TextNode{
			Content: buf.String(),
			Source:  ctx.Origin,
		},
	}, nil
}

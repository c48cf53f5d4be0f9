package plugin

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/diabloproject/markc/lang"
)

// Include splices the contents of another document in place of the call,
// after recursively expanding any macros the document contains.
type Include struct{}

// ExposedFunctions implements [lang.Plugin].
func (Include) ExposedFunctions() []lang.FunctionDescriptor {
	return []lang.FunctionDescriptor{
		{
			Name: "include",
			Signatures: [][]lang.ParameterType{
				{lang.ParamPath},
			},
		},
	}
}

// Call implements [lang.Plugin]. The path argument resolves against the
// invoking context's base directory; an absolute path is used as-is. The
// included file's own path becomes the origin of every node it produces,
// so its relative includes resolve against its directory rather than the
// top-level document's.
func (Include) Call(
	function string,
	arguments []lang.Value,
	ctx lang.Context,
) (lang.Document, error) {
	if function != "include" {
		return nil, lang.ErrFunctionNotFound.
			With(slog.String("function", function))
	}

	if len(arguments) != 1 || arguments[0].Kind != lang.KindPath {
		return nil, lang.ErrInvalidArguments.
			With(slog.String("function", function)).
			With(slog.String("want", "include(path)"))
	}

	path := arguments[0].Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(ctx.BaseDir, path)
	}

	doc, err := lang.ParseFile(path)
	if err != nil {
		if errors.Is(err, lang.ErrRead) {
			return nil, lang.ErrExternal.
				With(slog.String("file", path)).
				Wrap(err)
		}

		return nil, lang.ErrNested.
			With(slog.String("file", path)).
			Wrap(err)
	}

	return doc, nil
}

package plugin

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/diabloproject/markc/lang"
)

// YAML splices a scalar value from a YAML file in place of the call:
//
//	{{yaml(#project.yaml#, "release.version")}}
//
// The key argument is a dot-separated path through nested mappings.
type YAML struct{}

// ExposedFunctions implements [lang.Plugin].
func (YAML) ExposedFunctions() []lang.FunctionDescriptor {
	return []lang.FunctionDescriptor{
		{
			Name: "yaml",
			Signatures: [][]lang.ParameterType{
				{lang.ParamPath, lang.ParamString},
			},
		},
	}
}

// Call implements [lang.Plugin].
func (YAML) Call(
	function string,
	arguments []lang.Value,
	ctx lang.Context,
) (lang.Document, error) {
	if function != "yaml" {
		return nil, lang.ErrFunctionNotFound.
			With(slog.String("function", function))
	}

	if len(arguments) != 2 ||
		arguments[0].Kind != lang.KindPath ||
		arguments[1].Kind != lang.KindString {
		return nil, lang.ErrInvalidArguments.
			With(slog.String("function", function)).
			With(slog.String("want", "yaml(path, string)"))
	}

	path := arguments[0].Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(ctx.BaseDir, path)
	}

	key := arguments[1].Str

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lang.ErrExternal.
			With(slog.String("file", path)).
			Wrap(err)
	}

	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, lang.ErrExternal.
			With(slog.String("file", path)).
			Wrap(err)
	}

	value, ok := lookupKeyPath(root, key)
	if !ok {
		return nil, lang.ErrInvalidArguments.
			With(
				slog.String("file", path),
				slog.String("key", key),
			)
	}

	return lang.Document{
		lang.TextNode{
			Content: formatResult(value),
			Source:  ctx.Origin,
		},
	}, nil
}

// lookupKeyPath walks a dot-separated key path through nested mappings,
// returning the value found at the leaf.
func lookupKeyPath(root map[string]any, path string) (any, bool) {
	var current any = root

	for _, seg := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

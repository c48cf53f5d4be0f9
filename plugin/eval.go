package plugin

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/diabloproject/markc/lang"
)

// Eval evaluates an expression with expr-lang and splices the formatted
// result in place of the call.
//
// Expressions run against a built-in environment of host information and
// filesystem helpers (see env.go), plus "base" bound to the invoking
// context's base directory:
//
//	{{eval("1 + 2")}}
//	{{eval("env('HOME')")}}
//	{{eval("path.cat(base, 'img')")}}
type Eval struct{}

// ExposedFunctions implements [lang.Plugin].
func (Eval) ExposedFunctions() []lang.FunctionDescriptor {
	return []lang.FunctionDescriptor{
		{
			Name: "eval",
			Signatures: [][]lang.ParameterType{
				{lang.ParamString},
			},
		},
	}
}

// Call implements [lang.Plugin].
func (Eval) Call(
	function string,
	arguments []lang.Value,
	ctx lang.Context,
) (lang.Document, error) {
	if function != "eval" {
		return nil, lang.ErrFunctionNotFound.
			With(slog.String("function", function))
	}

	if len(arguments) != 1 || arguments[0].Kind != lang.KindString {
		return nil, lang.ErrInvalidArguments.
			With(slog.String("function", function)).
			With(slog.String("want", "eval(string)"))
	}

	source := arguments[0].Str

	env := makeEnvCache()
	env["base"] = ctx.BaseDir

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, lang.ErrExternal.
			With(slog.String("expression", source)).
			Wrap(err)
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, lang.ErrExternal.
			With(slog.String("expression", source)).
			Wrap(err)
	}

	return lang.Document{
		lang.TextNode{
			Content: formatResult(result),
			Source:  ctx.Origin,
		},
	}, nil
}

// formatResult renders an expression result as document text.
func formatResult(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

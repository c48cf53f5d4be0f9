package lang

import (
	"log/slog"
	"path/filepath"
)

// EvalOption applies a configuration option to an evaluation run.
type EvalOption func(evalConfig) evalConfig

type evalConfig struct {
	maxDepth int
}

// WithMaxDepth bounds how deeply plugin output may nest before
// evaluation fails with [ErrMaxDepthExceeded]. A value of 0 (the
// default) places no bound, matching the original behavior where a
// cyclic include chain recurses until the stack is exhausted.
func WithMaxDepth(n int) EvalOption {
	return func(cfg evalConfig) evalConfig {
		cfg.maxDepth = n

		return cfg
	}
}

// Evaluate walks doc in order, passing text nodes through unchanged and
// dispatching each call node to the first plugin exposing its function.
// The document a plugin returns is itself evaluated against the same
// registry before its nodes are spliced into the output in place of the
// call, which is how nested and transitive inclusion works. The result
// contains only text nodes.
//
// Any failure aborts the whole run; there is no partial output.
func Evaluate(
	doc Document,
	plugins Registry,
	opts ...EvalOption,
) (Document, error) {
	var cfg evalConfig

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return evaluate(doc, plugins, cfg, 0)
}

func evaluate(
	doc Document,
	plugins Registry,
	cfg evalConfig,
	depth int,
) (Document, error) {
	if cfg.maxDepth > 0 && depth > cfg.maxDepth {
		return nil, ErrMaxDepthExceeded.
			With(slog.Int("max_depth", cfg.maxDepth))
	}

	out := make(Document, 0, len(doc))

	for _, n := range doc {
		call, ok := n.(CallNode)
		if !ok {
			out = append(out, n)

			continue
		}

		plugin, ok := plugins.Lookup(call.Function)
		if !ok {
			return nil, plugins.notFound(call.Function)
		}

		ctx := Context{
			BaseDir: filepath.Dir(call.Source),
			Origin:  call.Source,
		}

		produced, err := plugin.Call(call.Function, call.Arguments, ctx)
		if err != nil {
			return nil, WrapError(err).
				With(
					slog.String("function", call.Function),
					slog.String("origin", call.Source),
				)
		}

		reduced, err := evaluate(produced, plugins, cfg, depth+1)
		if err != nil {
			return nil, err
		}

		out = append(out, reduced...)
	}

	return out, nil
}

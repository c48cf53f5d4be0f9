package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diabloproject/markc/lang"
	"github.com/diabloproject/markc/log"
	"github.com/diabloproject/markc/plugin"
)

// Check parses a document and verifies that every macro call dispatches to
// a registered function, without evaluating anything or writing output.
//
// Included documents are not checked; only calls in the named file are
// visible before evaluation.
type Check struct {
	Input string `arg:"" help:"Input document file" type:"existingfile"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := lang.ParseFile(c.Input)
	if err != nil {
		return err
	}

	plugins := plugin.Standard()

	for _, node := range doc {
		call, ok := node.(lang.CallNode)
		if !ok {
			continue
		}

		if _, ok := plugins.Lookup(call.Function); !ok {
			return lang.ErrFunctionNotFound.
				With(
					slog.String("function", call.Function),
					slog.String("origin", call.Source),
				)
		}
	}

	log.DebugContext(ctx, "checked document",
		slog.String("file", c.Input),
		slog.Int("nodes", len(doc)),
		slog.Int("calls", doc.Calls()),
	)

	fmt.Printf("%s: ok (%d macro calls)\n", c.Input, doc.Calls())

	return nil
}

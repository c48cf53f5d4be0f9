package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/diabloproject/markc/lang"
	"github.com/diabloproject/markc/log"
	"github.com/diabloproject/markc/plugin"
)

// defaultOutputName is the output file written next to the input document
// when no --output flag is given.
const defaultOutputName = "dist.md"

// defaultFileMode is the permission mode for created output files.
var defaultFileMode os.FileMode = 0o644

// Build compiles a document: macro calls are resolved through the standard
// plugin registry, expanded recursively, and the flattened text is written
// to the output file.
type Build struct {
	Input    string `arg:""            help:"Input document file"                                       type:"existingfile"`
	Output   string `default:""        help:"Output file, or '-' for stdout (default: dist.md next to the input)" short:"o"`
	MaxDepth int    `default:"0"       help:"Maximum macro expansion depth (0 = unlimited)"`
}

// Run executes the build command.
func (b *Build) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var opts []lang.EvalOption
	if b.MaxDepth > 0 {
		opts = append(opts, lang.WithMaxDepth(b.MaxDepth))
	}

	// The entire document is compiled before any output is written, so a
	// failed build never leaves a partial output file behind.
	out, err := lang.CompileFile(ctx, b.Input, plugin.Standard(), opts...)
	if err != nil {
		return err
	}

	output := b.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(b.Input), defaultOutputName)
	}

	if output == "-" {
		_, err = os.Stdout.WriteString(out)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	err = os.WriteFile(output, []byte(out), defaultFileMode)
	if err != nil {
		return ErrWriteOutput.
			With(slog.String("file", output)).
			Wrap(err)
	}

	log.DebugContext(ctx, "wrote output",
		slog.String("input", b.Input),
		slog.String("output", output),
		slog.Int("bytes", len(out)),
	)

	return nil
}

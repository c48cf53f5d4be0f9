package lang

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/readahead"

	"github.com/diabloproject/markc/log"
)

// ParseFile reads path as UTF-8 text and segments it, assigning path as
// the origin of every resulting node. Reads go through an asynchronous
// read-ahead buffer so I/O overlaps with tokenization of earlier chunks.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrRead.
			With(slog.String("file", path)).
			Wrap(err)
	}
	defer f.Close()

	ra := readahead.NewReader(f)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrRead.
			With(slog.String("file", path)).
			Wrap(err)
	}

	return SegmentCached(string(data), path)
}

// CompileFile runs the full pipeline on the document at path: parse,
// evaluate against plugins, and render. On any failure no output is
// produced and the error wraps [ErrCompile].
func CompileFile(
	ctx context.Context,
	path string,
	plugins Registry,
	opts ...EvalOption,
) (string, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return "", ErrCompile.
			With(slog.String("file", path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "parsed document",
		slog.String("file", path),
		slog.Int("nodes", len(doc)),
		slog.Int("calls", doc.Calls()),
	)

	doc, err = Evaluate(doc, plugins, opts...)
	if err != nil {
		return "", ErrCompile.
			With(slog.String("file", path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "evaluated document",
		slog.String("file", path),
		slog.Int("nodes", len(doc)),
	)

	return Render(doc), nil
}

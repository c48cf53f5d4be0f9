package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/diabloproject/markc/lang"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}

func TestBuildDefaultOutput(t *testing.T) {
	t.Cleanup(lang.PurgeCache)

	dir := t.TempDir()
	writeFile(t, dir, "name.md", "Bob")
	input := writeFile(t, dir, "doc.md", "Hello {{include(#name.md#)}} world")

	build := Build{Input: input}
	if err := build.Run(context.Background()); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	out := readFile(t, filepath.Join(dir, "dist.md"))
	if out != "Hello Bob world" {
		t.Errorf("output = %q, want %q", out, "Hello Bob world")
	}
}

func TestBuildExplicitOutput(t *testing.T) {
	t.Cleanup(lang.PurgeCache)

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", "plain text")
	output := filepath.Join(dir, "out.md")

	build := Build{Input: input, Output: output}
	if err := build.Run(context.Background()); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if out := readFile(t, output); out != "plain text" {
		t.Errorf("output = %q, want %q", out, "plain text")
	}
}

func TestBuildFailureWritesNoOutput(t *testing.T) {
	t.Cleanup(lang.PurgeCache)

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", "before {{include(#absent.md#)}}")

	build := Build{Input: input}

	err := build.Run(context.Background())
	if !errors.Is(err, lang.ErrCompile) {
		t.Fatalf("err = %v, want ErrCompile", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "dist.md")); !os.IsNotExist(err) {
		t.Error("failed build must not leave a partial output file")
	}
}

func TestBuildMaxDepth(t *testing.T) {
	t.Cleanup(lang.PurgeCache)

	dir := t.TempDir()
	writeFile(t, dir, "loop.md", "{{include(#loop.md#)}}")
	input := writeFile(t, dir, "doc.md", "{{include(#loop.md#)}}")

	build := Build{Input: input, MaxDepth: 4}

	err := build.Run(context.Background())
	if !errors.Is(err, lang.ErrMaxDepthExceeded) {
		t.Errorf("err = %v, want ErrMaxDepthExceeded", err)
	}
}

func TestCheckValidDocument(t *testing.T) {
	t.Cleanup(lang.PurgeCache)

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md",
		`text {{include(#a.md#)}} and {{eval("1")}}`)

	check := Check{Input: input}
	if err := check.Run(context.Background()); err != nil {
		t.Errorf("check failed: %v", err)
	}
}

func TestCheckDoesNotTouchIncludedFiles(t *testing.T) {
	t.Cleanup(lang.PurgeCache)

	// The included file does not exist; check must still pass because it
	// never evaluates anything.
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", "{{include(#absent.md#)}}")

	check := Check{Input: input}
	if err := check.Run(context.Background()); err != nil {
		t.Errorf("check failed: %v", err)
	}
}

func TestCheckUnknownFunction(t *testing.T) {
	t.Cleanup(lang.PurgeCache)

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", "{{frobnicate()}}")

	check := Check{Input: input}

	err := check.Run(context.Background())
	if !errors.Is(err, lang.ErrFunctionNotFound) {
		t.Errorf("err = %v, want ErrFunctionNotFound", err)
	}
}

func TestCheckMalformedDocument(t *testing.T) {
	t.Cleanup(lang.PurgeCache)

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", "{{f(xyz)}}")

	check := Check{Input: input}

	err := check.Run(context.Background())
	if !errors.Is(err, lang.ErrInvalidInteger) {
		t.Errorf("err = %v, want ErrInvalidInteger", err)
	}
}

func TestErrorSentinelMatching(t *testing.T) {
	err := ErrWriteOutput.
		Wrap(os.ErrPermission)

	if !errors.Is(err, ErrWriteOutput) {
		t.Error("wrapped error must match its sentinel")
	}

	if !errors.Is(err, os.ErrPermission) {
		t.Error("wrapped error must expose its cause")
	}

	if errors.Is(err, ErrWriteConfig) {
		t.Error("sentinels must not match each other")
	}
}

package plugin

import (
	"maps"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ardnew/mung"
)

// Private singleton cache.
//
//nolint:gochecknoglobals
var (
	envCacheOnce sync.Once
	envCache     map[string]any
)

// makeEnvCache returns a clone of the lazily-initialized, process-scoped
// environment of built-in variables and functions available to eval()
// expressions. The returned map can be safely mutated by the caller
// without affecting the shared cache.
func makeEnvCache() map[string]any {
	envCacheOnce.Do(func() {
		envCache = map[string]any{
			// Host information.
			"os":       runtime.GOOS,
			"arch":     runtime.GOARCH,
			"hostname": getHostname(),
			"user":     getUsername(),

			// Working directory.
			"cwd": getCwd,

			// Process environment.
			"env": envLookup,

			// Filesystem predicates.
			"file": map[string]any{
				"exists": fileExists,
				"isDir":  fileIsDir,
			},

			// Path manipulation.
			"path": map[string]any{
				"abs":  pathAbs,
				"base": filepath.Base,
				"cat":  pathCat,
				"dir":  filepath.Dir,
				"ext":  filepath.Ext,
				"rel":  pathRel,
			},

			// PATH-like string manipulation via mung.
			"mung": map[string]any{
				"prefix": mungPrefix,
			},
		}
	})

	return maps.Clone(envCache)
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return ""
	}

	return hostname
}

func getUsername() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}

	return u.Username
}

func getCwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return pathAbs(".")
	}

	return cwd
}

func envLookup(key string) string {
	return os.Getenv(key)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return !os.IsNotExist(err)
}

func fileIsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

func pathAbs(path string) string {
	p, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return p
}

func pathCat(elem ...string) string {
	return filepath.Join(elem...)
}

func pathRel(from, to string) string {
	p, err := filepath.Rel(pathAbs(from), pathAbs(to))
	if err != nil {
		return pathCat(from, to)
	}

	return p
}

func mungPrefix(key string, prefix ...string) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()
}

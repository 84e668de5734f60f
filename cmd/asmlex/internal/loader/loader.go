package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Loader resolves a name to the bytes of a source or configuration file.
// The lexer core never opens files itself; everything it reads arrives
// through one of these.
type Loader interface {
	Load(context.Context, string) ([]byte, error)
}

type fileLoader struct {
	cache *memoryCache
	root  string
}

type loaderOption func(*fileLoader)

// RootedAt confines the loader to files under dir. Paths that resolve
// outside it are refused.
func RootedAt(dir string) loaderOption {
	return func(l *fileLoader) {
		l.root = dir
	}
}

// WithMemoryCache reuses loaded bytes across repeated loads of the same name.
func WithMemoryCache() loaderOption {
	return func(l *fileLoader) {
		l.cache = newMemoryCache()
	}
}

func NewLoader(opts ...loaderOption) Loader {
	l := new(fileLoader)
	for i := range opts {
		opts[i](l)
	}
	return l
}

func (l *fileLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if data, has := l.cache.Fetch(path); has {
			return data, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read source %s: %w", name, err)
	}

	if l.cache != nil {
		_ = l.cache.Store(path, data)
	}

	return data, nil
}

func (l *fileLoader) resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("no file specified")
	}

	if l.root == "" {
		return filepath.Clean(name), nil
	}

	if filepath.IsAbs(name) {
		return "", fmt.Errorf("refusing to load %s from outside %s", name, l.root)
	}

	path := filepath.Join(l.root, name)
	rel, err := filepath.Rel(l.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("refusing to load %s from outside %s", name, l.root)
	}

	return path, nil
}

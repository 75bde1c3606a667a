package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
)

// Adapter loads translation catalogs keyed by language code.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads every supported file (yaml, yml, json) in Dir of FS.
// It works with os.DirFS as well as embed.FS.
type FSAdapter struct {
	FS  fs.FS
	Dir string
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	dir := a.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(a.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	out := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}

		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(a.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		catalogs, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		mergeCatalogs(out, catalogs)
	}

	return out, nil
}

// MultiAdapter merges several adapters; later adapters override keys of earlier ones.
type MultiAdapter []Adapter

func (m MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any)
	for _, a := range m {
		if a == nil {
			continue
		}
		catalogs, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeCatalogs(out, catalogs)
	}
	return out, nil
}

//go:embed messages/*.yaml
var defaultMessages embed.FS

// DefaultMessages returns the built-in catalogs for validation and conversion
// messages.
func DefaultMessages() Adapter {
	return &FSAdapter{FS: defaultMessages, Dir: "messages"}
}

func mergeCatalogs(dst, src map[string]map[string]any) {
	for _, lang := range slices.Sorted(maps.Keys(src)) {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any)
		}
		mergeTree(dst[lang], src[lang])
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeTree(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			cp := make(map[string]any, len(srcMap))
			mergeTree(cp, srcMap)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

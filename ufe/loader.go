package ufe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"underdig/graph"
)

// Resolve_save_path maps what the user gave us to an actual save file.
// A file path is used directly; a directory is probed for global.dat and
// then global/global; empty means the current directory.
func Resolve_save_path(path string) (string, error) {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("save path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	for _, candidate := range []string{
		filepath.Join(path, "global.dat"),
		filepath.Join(path, "global", "global"),
	} {
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("save path: no global.dat under %s", path)
}

// Loader caches decoded graphs per save file, so repeated commands against
// the same save don't re-run the converter.
type Loader struct {
	Tool  *Tool
	cache map[string]*graph.Graph
}

func New_loader(tool *Tool) *Loader {
	return &Loader{Tool: tool, cache: map[string]*graph.Graph{}}
}

func cache_key(save_path string) string {
	abs, err := filepath.Abs(save_path)
	if err != nil {
		return filepath.Clean(save_path)
	}
	return abs
}

// Load exports save_path through the converter and builds its graph,
// returning a cached graph when one exists.  The exported JSON is removed
// once it has been read, whether or not decoding succeeds.
func (l *Loader) Load(ctx context.Context, save_path string) (*graph.Graph, error) {
	key := cache_key(save_path)
	if g, ok := l.cache[key]; ok {
		return g, nil
	}

	json_path, err := l.Tool.Export(ctx, save_path)
	if err != nil {
		return nil, err
	}
	defer os.Remove(json_path)

	f, err := os.Open(json_path)
	if err != nil {
		return nil, fmt.Errorf("converter export: %w", err)
	}
	records, err := graph.Decode_records(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	g := graph.Build(records)
	l.cache[key] = g
	return g, nil
}

// Invalidate drops the cached graph for one save.
func (l *Loader) Invalidate(save_path string) {
	delete(l.cache, cache_key(save_path))
}

// Invalidate_all empties the cache.
func (l *Loader) Invalidate_all() {
	l.cache = map[string]*graph.Graph{}
}

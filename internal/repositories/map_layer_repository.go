package repositories

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// data_map.png and visual_map.png are the base layers of the page itself
// and never offered as selectable overlays.
var reservedMapFiles = map[string]struct{}{
	"data_map.png":   {},
	"visual_map.png": {},
}

const mapLayerPattern = "*map*.png"

type MapLayerRepositoryInterface interface {
	ListMapLayers(ctx context.Context) ([]string, error)
}

type MapLayerRepository struct {
	staticDir string
}

func NewMapLayerRepository(staticDir string) MapLayerRepositoryInterface {
	return &MapLayerRepository{staticDir: staticDir}
}

// ListMapLayers returns the overlay image names in staticDir, sorted.
// A missing directory yields an empty list.
func (m *MapLayerRepository) ListMapLayers(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(m.staticDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	layers := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, reserved := reservedMapFiles[name]; reserved {
			continue
		}
		if ok, _ := filepath.Match(mapLayerPattern, name); ok {
			layers = append(layers, name)
		}
	}
	sort.Strings(layers)
	return layers, nil
}

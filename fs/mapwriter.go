// Package fs provides file-based storage for preview maps.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inutamago-dogegg/ogp"
)

// Ensure MapWriter implements ogp.MapWriter at compile time.
var _ ogp.MapWriter = (*MapWriter)(nil)

// MapWriter writes a preview map as a JSON file with atomic update
// semantics. The map is written to path+".tmp", then renamed over path.
type MapWriter struct {
	path string
}

// NewMapWriter creates a new MapWriter for the given file path.
func NewMapWriter(path string) *MapWriter {
	return &MapWriter{path: path}
}

func (w *MapWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteMap writes m as indented JSON with keys in sorted order.
func (w *MapWriter) WriteMap(m ogp.PreviewMap) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preview map: %w", err)
	}
	data = append(data, '\n')

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(w.tempPath(), data, 0644); err != nil {
		return err
	}

	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	return nil
}

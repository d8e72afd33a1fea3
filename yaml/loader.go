// Package yaml loads site content from YAML data files.
package yaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/inutamago-dogegg/ogp"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements ogp.ContentLoader at compile time.
var _ ogp.ContentLoader = (*Loader)(nil)

// Loader reads ogp.Content from YAML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadContent reads and decodes the content file at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is not
// valid YAML for the content shape.
func (l *Loader) LoadContent(path string) (*ogp.Content, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided content path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ogp.Errorf(ogp.ENOTFOUND, "content file %q not found", path)
		}
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Decode(data)
}

// Decode parses content from YAML bytes. Unknown keys are ignored so the
// data file can carry presentation fields.
func Decode(data []byte) (*ogp.Content, error) {
	var c ogp.Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, ogp.Errorf(ogp.EINVALID, "invalid content: %v", err)
	}
	return &c, nil
}

package properties

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/magiconair/properties"
)

// Loader reads a properties resource into a map.
type Loader interface {
	Load(path string) (map[string]string, error)
}

// FileLoader loads resources from the local filesystem.
type FileLoader struct{}

// NewFileLoader returns a Loader backed by the OS filesystem.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads and parses the file at path.
func (l *FileLoader) Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceLoad, path, err)
	}
	return parseResource(path, data)
}

// FSLoader loads resources from an fs.FS, typically an embedded bundle.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader returns a Loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Load reads and parses the named file inside the wrapped filesystem.
func (l *FSLoader) Load(path string) (map[string]string, error) {
	if l == nil || l.fsys == nil {
		return nil, fmt.Errorf("%w: %s: no filesystem configured", ErrResourceLoad, path)
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceLoad, path, err)
	}
	return parseResource(path, data)
}

// Parse decodes UTF-8 properties content. Property references such as
// ${other.key} are kept verbatim.
func Parse(data []byte) (map[string]string, error) {
	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return props.Map(), nil
}

func parseResource(path string, data []byte) (map[string]string, error) {
	values, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

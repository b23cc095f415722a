// Package manifest loads the YAML description of a merge run: the ordered
// list of scene entities plus optional output settings.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Entity is one scene description listed in a manifest.
type Entity struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Manifest lists the scene descriptions to merge, in order.
type Manifest struct {
	Model    string   `yaml:"model,omitempty"`
	Output   string   `yaml:"output,omitempty"`
	Entities []Entity `yaml:"entities"`
}

// Parse decodes and validates a manifest payload.
func Parse(data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("manifest: payload is empty")
	}
	ret := &Manifest{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Validate checks the manifest lists at least one entity, with unique
// non-empty names and non-empty paths.
func (m *Manifest) Validate() error {
	if len(m.Entities) == 0 {
		return fmt.Errorf("manifest: no entities listed")
	}
	seen := map[string]bool{}
	for i, entity := range m.Entities {
		if entity.Name == "" {
			return fmt.Errorf("manifest: entity %d has no name", i)
		}
		if entity.Path == "" {
			return fmt.Errorf("manifest: entity %q has no path", entity.Name)
		}
		if seen[entity.Name] {
			return fmt.Errorf("manifest: duplicate entity name %q", entity.Name)
		}
		seen[entity.Name] = true
	}
	return nil
}

// Load reads a manifest file and anchors relative entity and output paths
// at the manifest's own directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	ret, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", path, err)
	}
	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	for i := range ret.Entities {
		if !filepath.IsAbs(ret.Entities[i].Path) {
			ret.Entities[i].Path = filepath.Join(base, ret.Entities[i].Path)
		}
	}
	if ret.Output != "" && !filepath.IsAbs(ret.Output) {
		ret.Output = filepath.Join(base, ret.Output)
	}
	return ret, nil
}

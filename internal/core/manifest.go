package core

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the package-relative path of the content manifest.
const ManifestFile = "package.yaml"

// Manifest describes the content package being installed.
type Manifest struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
	Author      string `yaml:"author,omitempty"`
}

// LoadManifest reads and validates package.yaml from fsys.
func LoadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s: name is required", ManifestFile)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("manifest %s: version is required", ManifestFile)
	}
	return &m, nil
}

// Package registry resolves crate versions from locally cached registry
// indexes.
package registry

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultRegistry is the registry assumed when a dependency names none.
const DefaultRegistry = "crates-io"

// Registries maps registry names to their index locations, loaded from
// registries.yaml.
type Registries struct {
	Registries map[string]RegistryConfig `yaml:"registries"`
}

// RegistryConfig describes one configured registry.
type RegistryConfig struct {
	// Index is the directory holding the cached index files, one YAML file
	// per crate.
	Index string `yaml:"index"`
}

// LoadRegistries reads the registries configuration. An empty path selects
// the default location under the user config directory; a missing file
// yields the built-in default registry pointed at the default cache
// directory.
func LoadRegistries(path string) (*Registries, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate user config directory")
		}
		path = filepath.Join(dir, "cratectl", "registries.yaml")
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is configuration
	if err != nil {
		if os.IsNotExist(err) {
			return defaultRegistries()
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read registries config"), "path", path)
	}

	var regs Registries
	if err := yaml.Unmarshal(data, &regs); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse registries config"), "path", path)
	}
	if regs.Registries == nil {
		regs.Registries = map[string]RegistryConfig{}
	}
	if _, ok := regs.Registries[DefaultRegistry]; !ok {
		defaults, err := defaultRegistries()
		if err != nil {
			return nil, err
		}
		regs.Registries[DefaultRegistry] = defaults.Registries[DefaultRegistry]
	}
	return &regs, nil
}

func defaultRegistries() (*Registries, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to locate user cache directory")
	}
	return &Registries{
		Registries: map[string]RegistryConfig{
			DefaultRegistry: {Index: filepath.Join(dir, "cratectl", "index")},
		},
	}, nil
}

package registry

import (
	"context"
	"os"
	"path/filepath"

	"cratectl/internal/core/domain"
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Resolver implements ports.VersionResolver against cached index files.
type Resolver struct {
	registries *Registries
}

// NewResolver creates a Resolver backed by the given registries.
func NewResolver(registries *Registries) *Resolver {
	return &Resolver{registries: registries}
}

// indexEntry is the per-crate index file format.
type indexEntry struct {
	Versions []string `yaml:"versions"`
}

// Resolve returns the highest stable version the index lists for name.
func (r *Resolver) Resolve(ctx context.Context, name, registry string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if registry == "" {
		registry = DefaultRegistry
	}

	cfg, ok := r.registries.Registries[registry]
	if !ok {
		return "", zerr.With(domain.ErrUnknownRegistry, "registry", registry)
	}

	path := filepath.Join(cfg.Index, name+".yaml")
	data, err := os.ReadFile(path) //nolint:gosec // index location is configuration
	if err != nil {
		if os.IsNotExist(err) {
			return "", zerr.With(domain.ErrCrateNotFound, "crate", name)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read index entry"), "crate", name)
	}

	var entry indexEntry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to parse index entry"), "crate", name)
	}

	best := highestStable(entry.Versions)
	if best == nil {
		return "", zerr.With(domain.ErrCrateNotFound, "crate", name)
	}
	return best.String(), nil
}

// highestStable picks the highest non-prerelease version. Entries that do
// not parse as semver are skipped rather than failing the lookup.
func highestStable(versions []string) *semver.Version {
	var best *semver.Version
	for _, raw := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil || v.Prerelease() != "" {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	return best
}

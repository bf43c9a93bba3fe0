package registry_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cratectl/internal/adapters/registry"
	"cratectl/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexWith(t *testing.T, name, content string) *registry.Registries {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	return &registry.Registries{
		Registries: map[string]registry.RegistryConfig{
			registry.DefaultRegistry: {Index: dir},
		},
	}
}

func TestResolve_PicksHighestStable(t *testing.T) {
	regs := indexWith(t, "serde", `versions:
  - "1.0.100"
  - "1.0.219"
  - "1.0.9"
`)
	version, err := registry.NewResolver(regs).Resolve(context.Background(), "serde", "")
	require.NoError(t, err)
	assert.Equal(t, "1.0.219", version)
}

func TestResolve_SkipsPrereleasesAndGarbage(t *testing.T) {
	regs := indexWith(t, "tokio", `versions:
  - "not-a-version"
  - "2.0.0-alpha.1"
  - "1.47.1"
`)
	version, err := registry.NewResolver(regs).Resolve(context.Background(), "tokio", "")
	require.NoError(t, err)
	assert.Equal(t, "1.47.1", version)
}

func TestResolve_OnlyPrereleasesMeansNotFound(t *testing.T) {
	regs := indexWith(t, "experimental", `versions:
  - "0.1.0-beta"
`)
	_, err := registry.NewResolver(regs).Resolve(context.Background(), "experimental", "")
	assert.True(t, errors.Is(err, domain.ErrCrateNotFound))
}

func TestResolve_UnknownCrate(t *testing.T) {
	regs := indexWith(t, "serde", "versions: [\"1.0.219\"]\n")
	_, err := registry.NewResolver(regs).Resolve(context.Background(), "no-such-crate", "")
	assert.True(t, errors.Is(err, domain.ErrCrateNotFound))
}

func TestResolve_UnknownRegistry(t *testing.T) {
	regs := indexWith(t, "serde", "versions: [\"1.0.219\"]\n")
	_, err := registry.NewResolver(regs).Resolve(context.Background(), "serde", "internal")
	assert.True(t, errors.Is(err, domain.ErrUnknownRegistry))
}

func TestResolve_NamedRegistry(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corp-util.yaml"),
		[]byte("versions: [\"0.3.2\"]\n"), 0o600))
	regs := &registry.Registries{
		Registries: map[string]registry.RegistryConfig{
			"internal": {Index: dir},
		},
	}

	version, err := registry.NewResolver(regs).Resolve(context.Background(), "corp-util", "internal")
	require.NoError(t, err)
	assert.Equal(t, "0.3.2", version)
}

func TestResolve_CancelledContext(t *testing.T) {
	regs := indexWith(t, "serde", "versions: [\"1.0.219\"]\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registry.NewResolver(regs).Resolve(ctx, "serde", "")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadRegistries_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`registries:
  internal:
    index: /srv/index
`), 0o600))

	regs, err := registry.LoadRegistries(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/index", regs.Registries["internal"].Index)
	// The default registry is always available even if the file omits it.
	assert.Contains(t, regs.Registries, registry.DefaultRegistry)
}

func TestLoadRegistries_MissingFileUsesDefaults(t *testing.T) {
	regs, err := registry.LoadRegistries(filepath.Join(t.TempDir(), "registries.yaml"))
	require.NoError(t, err)
	assert.Contains(t, regs.Registries, registry.DefaultRegistry)
	assert.NotEmpty(t, regs.Registries[registry.DefaultRegistry].Index)
}

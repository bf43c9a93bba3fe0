// Package workspace locates the manifest and enumerates the packages it
// covers.
package workspace

import (
	"os"
	"path/filepath"

	"cratectl/internal/core/domain"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
)

// ManifestName is the file name every package manifest uses.
const ManifestName = "Cargo.toml"

// Loader implements ports.WorkspaceLoader over manifests on disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// manifestFile is the subset of a manifest the loader cares about.
type manifestFile struct {
	Package   *packageTable   `toml:"package"`
	Workspace *workspaceTable `toml:"workspace"`
}

type packageTable struct {
	Name string `toml:"name"`
}

type workspaceTable struct {
	Members []string `toml:"members"`
}

// Load reads the workspace rooted at manifestPath. An empty path triggers
// discovery: the manifest is searched for upward from the working directory.
func (l *Loader) Load(manifestPath string) (*domain.Workspace, error) {
	path := manifestPath
	if path == "" {
		var err error
		path, err = discover(".")
		if err != nil {
			return nil, err
		}
	}

	mf, err := readManifest(path)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(path)
	ws := &domain.Workspace{Root: root}

	if mf.Package != nil && mf.Package.Name != "" {
		ws.Members = append(ws.Members, domain.PackageRef{
			Name:         mf.Package.Name,
			ManifestPath: path,
		})
	}

	if mf.Workspace != nil {
		for _, member := range mf.Workspace.Members {
			memberPath := filepath.Join(root, member, ManifestName)
			memberManifest, err := readManifest(memberPath)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to load workspace member"), "member", member)
			}
			if memberManifest.Package == nil || memberManifest.Package.Name == "" {
				return nil, zerr.With(zerr.New("workspace member has no package name"), "member", member)
			}
			ws.Members = append(ws.Members, domain.PackageRef{
				Name:         memberManifest.Package.Name,
				ManifestPath: memberPath,
			})
		}
	}

	return ws, nil
}

func readManifest(path string) (*manifestFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	var mf manifestFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}
	return &mf, nil
}

// discover walks up from start until it finds a manifest.
func discover(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrManifestNotFound, "start", start)
		}
		dir = parent
	}
}

// Package ports defines the interfaces between the application core and its
// adapters.
package ports

import "cratectl/internal/core/domain"

// WorkspaceLoader locates the root manifest and enumerates its packages.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceLoader interface {
	// Load reads the workspace rooted at manifestPath. An empty path means
	// discovery from the working directory.
	Load(manifestPath string) (*domain.Workspace, error)
}

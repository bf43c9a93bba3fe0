package ports

import "context"

// VersionResolver resolves a bare crate name to a concrete version
// requirement using a registry index.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type VersionResolver interface {
	// Resolve returns the version requirement to use for name. An empty
	// registry means the default registry.
	Resolve(ctx context.Context, name, registry string) (string, error)
}

package ports

import (
	"context"

	"cratectl/internal/core/domain"
)

// ManifestEditor applies dependency-addition requests to a package manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestEditor interface {
	// Apply merges the resolved dependencies into the section table of pkg's
	// manifest and writes the file back, unless dryRun is set. Outcomes are
	// returned in request order. No partial write happens: the document is
	// rewritten once, after every request has been applied in memory.
	Apply(ctx context.Context, pkg domain.PackageRef, deps []domain.ResolvedDep, section domain.Section, dryRun bool) ([]domain.EditOutcome, error)
}

// Package app implements the application layer for cratectl.
package app

import (
	"context"
	"fmt"
	"runtime"

	"cratectl/internal/core/domain"
	"cratectl/internal/core/ports"
	"cratectl/internal/engine/request"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	workspace ports.WorkspaceLoader
	editor    ports.ManifestEditor
	versions  ports.VersionResolver
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	workspace ports.WorkspaceLoader,
	editor ports.ManifestEditor,
	versions ports.VersionResolver,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		workspace: workspace,
		editor:    editor,
		versions:  versions,
		telemetry: telemetry,
		logger:    logger,
	}
}

// AddRequest bundles everything one `add` invocation needs.
type AddRequest struct {
	// ManifestPath is the manifest to edit; empty triggers discovery.
	ManifestPath string

	// Package selects the workspace member to modify. Empty means every
	// member, which is only valid when the workspace has exactly one.
	Package string

	DryRun  bool
	Offline bool

	Section request.SectionInput
	Deps    request.DepInput
}

// Add executes the add flow: select the package, build the dependency
// requests, resolve missing versions and apply the edits. Requests are fully
// built and validated before the manifest is touched.
func (a *App) Add(ctx context.Context, req AddRequest) error {
	section, err := request.BuildSection(req.Section)
	if err != nil {
		return err
	}

	ws, err := a.workspace.Load(req.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace")
	}

	selected := ws.Select(req.Package)
	switch len(selected) {
	case 0:
		return domain.ErrNoPackageSelected
	case 1:
	default:
		return zerr.With(domain.ErrMultiplePackagesSelected, "count", len(selected))
	}
	pkg := selected[0]

	deps, err := request.BuildDeps(req.Deps)
	if err != nil {
		return err
	}

	resolved, err := a.resolveVersions(ctx, deps, req.Offline)
	if err != nil {
		return err
	}

	outcomes, err := a.editor.Apply(ctx, pkg, resolved, section, req.DryRun)
	if err != nil {
		return zerr.Wrap(err, "failed to edit manifest")
	}

	for _, outcome := range outcomes {
		a.logger.Info(formatOutcome(outcome))
	}
	if req.DryRun {
		a.logger.Warn("aborting add due to dry run")
	}
	return nil
}

// resolveVersions fills in a version requirement for every bare crate name.
// Lookups run concurrently; tokens that already carry a version, a path or a
// git source skip the index entirely.
func (a *App) resolveVersions(ctx context.Context, deps []domain.DepOp, offline bool) ([]domain.ResolvedDep, error) {
	resolved := make([]domain.ResolvedDep, len(deps))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, dep := range deps {
		g.Go(func() error {
			spec, err := domain.ParseCrateSpec(dep.CrateSpec)
			if err != nil {
				return err
			}
			rd := domain.ResolvedDep{Op: dep, Spec: spec, Version: spec.VersionReq}

			_, vertex := a.telemetry.Record(groupCtx, "resolve "+spec.Name)
			if rd.Version != "" || spec.IsPath() || dep.Git != "" {
				vertex.Cached()
			} else if offline {
				err := zerr.With(domain.ErrOfflineVersionLookup, "crate", spec.Name)
				vertex.Complete(err)
				return err
			} else {
				version, err := a.versions.Resolve(groupCtx, spec.Name, dep.Registry)
				vertex.Complete(err)
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to resolve latest version"), "crate", spec.Name)
				}
				rd.Version = version
			}

			resolved[i] = rd
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

func formatOutcome(outcome domain.EditOutcome) string {
	msg := "Adding " + outcome.Name
	if outcome.Version != "" {
		msg += " v" + outcome.Version
	}
	msg = fmt.Sprintf("%s to %s", msg, outcome.Section)
	if outcome.Unchanged {
		msg += " (unchanged)"
	}
	return msg
}

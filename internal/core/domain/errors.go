package domain

import "go.trai.ch/zerr"

// Selection errors, surfaced before any dependency token is parsed.
var (
	// ErrNoPackageSelected is returned when the workspace yields no package
	// to modify.
	ErrNoPackageSelected = zerr.New("no packages selected. Please specify one with `-p <PKGID>`")

	// ErrMultiplePackagesSelected is returned when more than one package
	// matches the selection.
	ErrMultiplePackagesSelected = zerr.New("multiple packages selected. Please specify one with `-p <PKGID>`")
)

// Ambiguity errors: modifiers that only make sense for a single crate.
var (
	// ErrMultipleCratesWithGit is returned when several crate tokens share a
	// single git source.
	ErrMultipleCratesWithGit = zerr.New("cannot specify multiple crates with path or git or vers")

	// ErrMultipleCratesWithRename is returned when several crate tokens
	// share a single rename.
	ErrMultipleCratesWithRename = zerr.New("cannot specify multiple crates with rename")

	// ErrMultipleCratesWithFeatures is returned when several crate tokens
	// share one `--features` list.
	ErrMultipleCratesWithFeatures = zerr.New("cannot specify multiple crates with features")
)

// Gating errors: experimental syntax used without `-Z unstable-options`.
var (
	// ErrGitUnstable is returned when a git source is requested without the
	// unstable gate.
	ErrGitUnstable = zerr.New("`--git` is unstable and requires `-Z unstable-options`")

	// ErrFeatureTokenUnstable is returned when a `+<feature>` token is used
	// without the unstable gate.
	ErrFeatureTokenUnstable = zerr.New("`+<feature>` is unstable and requires `-Z unstable-options`")
)

var (
	// ErrDanglingFeatureToken is returned when a `+<feature>` token has no
	// crate token before it.
	ErrDanglingFeatureToken = zerr.New("`+<feature>` must be preceded by a pkgid")

	// ErrEmptyTarget is returned when `--target` is supplied with an empty
	// value.
	ErrEmptyTarget = zerr.New("target specification may not be empty")

	// ErrGitRefWithoutGit is returned when a branch, tag or rev is supplied
	// without a git source.
	ErrGitRefWithoutGit = zerr.New("`--branch`, `--tag` and `--rev` require `--git`")

	// ErrInvalidCrateSpec is returned for crate tokens that name nothing.
	ErrInvalidCrateSpec = zerr.New("invalid crate specification")
)

// Lookup errors from the workspace and registry boundary.
var (
	// ErrManifestNotFound is returned when no manifest is reachable from the
	// working directory.
	ErrManifestNotFound = zerr.New("could not find `Cargo.toml`")

	// ErrUnknownRegistry is returned when `--registry` names a registry that
	// is not configured.
	ErrUnknownRegistry = zerr.New("unknown registry")

	// ErrCrateNotFound is returned when the registry index has no usable
	// version for a crate.
	ErrCrateNotFound = zerr.New("crate not found in registry index")

	// ErrOfflineVersionLookup is returned when a bare crate name needs a
	// version lookup but `--offline` was requested.
	ErrOfflineVersionLookup = zerr.New("cannot resolve latest version while offline; specify `<name>@<version>`")
)

// Package domain contains the core types for dependency-addition requests.
package domain

// DepOp describes a single dependency-addition request built from the
// command line. Empty strings and nil pointers mean "unspecified": the
// manifest editor leaves any existing value untouched for those fields.
type DepOp struct {
	// CrateSpec is the raw user token: a bare name, `name@version-req`, or a
	// filesystem path. It stays uninterpreted until resolution.
	CrateSpec string

	// Rename is the local name to expose the dependency as.
	Rename string

	// Features holds the requested feature names in the order the user
	// supplied them. Nil means no features were requested.
	Features *FeatureSet

	// DefaultFeatures is tri-state: true re-enables default features, false
	// disables them, nil keeps whatever the manifest already says.
	DefaultFeatures *bool

	// Optional is tri-state with the same semantics as DefaultFeatures.
	Optional *bool

	// Registry names an alternate package source.
	Registry string

	// Git describes a version-control source. Branch, Tag and Rev are
	// mutually exclusive and only meaningful when Git is set.
	Git    string
	Branch string
	Tag    string
	Rev    string
}

// ResolvedDep pairs a dependency request with the concrete source the
// resolution step settled on.
type ResolvedDep struct {
	// Op is the original request.
	Op DepOp

	// Spec is the parsed form of Op.CrateSpec.
	Spec CrateSpec

	// Version is the version requirement to write, taken from the crate
	// token itself or looked up in the registry index. Empty for path and
	// git sources.
	Version string
}

// EditOutcome reports what applying one dependency request to the manifest
// did.
type EditOutcome struct {
	// Name is the manifest key the dependency was written under (the rename
	// when one was requested).
	Name string

	// Version is the version requirement that was written, if any.
	Version string

	// Section is the human-readable label of the table that was edited.
	Section string

	// Unchanged is set when the entry already matched the request exactly.
	Unchanged bool
}

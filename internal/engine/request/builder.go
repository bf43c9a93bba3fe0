// Package request builds validated dependency-addition requests from raw
// command-line tokens.
package request

import (
	"strings"

	"cratectl/internal/core/domain"
)

// featureMarker prefixes tokens that attach features to the previous crate
// token instead of naming a new crate.
const featureMarker = "+"

// ResolveBool collapses an enable/disable flag pair into a tri-state value:
// true when only enable is set, false when only disable is set, nil when
// neither is. Both flags set cannot happen; every pair is declared mutually
// exclusive where the flags are registered.
func ResolveBool(enable, disable bool) *bool {
	switch {
	case enable && !disable:
		v := true
		return &v
	case !enable && disable:
		v := false
		return &v
	default:
		return nil
	}
}

// DepInput carries the raw inputs the request builder consumes.
type DepInput struct {
	// Crates is the ordered token list: crate tokens and `+<feature>`
	// tokens, in the order the user typed them.
	Crates []string

	// Features holds the values of the shared `--features` flag, one entry
	// per occurrence. Nil means the flag was absent.
	Features []string

	DefaultFeatures *bool
	Optional        *bool

	Rename   string
	Registry string

	Git    string
	Branch string
	Tag    string
	Rev    string

	// AllowUnstable enables the gated syntax: git sources and `+<feature>`
	// tokens.
	AllowUnstable bool
}

// BuildDeps turns the ordered token list into dependency requests. Shared
// modifiers are copied onto every request; `+<feature>` tokens never produce
// a request of their own, they extend the feature set of the request built
// from the preceding crate token.
//
// All validation is eager and fatal: either the full request list is valid
// or nothing is returned.
func BuildDeps(in DepInput) ([]domain.DepOp, error) {
	crateCount := 0
	for _, tok := range in.Crates {
		if !strings.HasPrefix(tok, featureMarker) {
			crateCount++
		}
	}

	if crateCount > 1 && in.Git != "" {
		return nil, domain.ErrMultipleCratesWithGit
	}
	if crateCount > 1 && in.Rename != "" {
		return nil, domain.ErrMultipleCratesWithRename
	}
	if crateCount > 1 && in.Features != nil {
		return nil, domain.ErrMultipleCratesWithFeatures
	}
	if in.Git != "" && !in.AllowUnstable {
		return nil, domain.ErrGitUnstable
	}

	var shared *domain.FeatureSet
	if in.Features != nil {
		shared = domain.NewFeatureSet(SplitFeatures(in.Features...)...)
	}

	deps := make([]domain.DepOp, 0, crateCount)
	for _, tok := range in.Crates {
		payload, attached := strings.CutPrefix(tok, featureMarker)
		if !attached {
			deps = append(deps, domain.DepOp{
				CrateSpec:       tok,
				Rename:          in.Rename,
				Features:        shared.Clone(),
				DefaultFeatures: in.DefaultFeatures,
				Optional:        in.Optional,
				Registry:        in.Registry,
				Git:             in.Git,
				Branch:          in.Branch,
				Tag:             in.Tag,
				Rev:             in.Rev,
			})
			continue
		}

		if !in.AllowUnstable {
			return nil, domain.ErrFeatureTokenUnstable
		}
		if len(deps) == 0 {
			return nil, domain.ErrDanglingFeatureToken
		}
		prior := &deps[len(deps)-1]
		if prior.Features == nil {
			prior.Features = domain.NewFeatureSet()
		}
		prior.Features.Extend(SplitFeatures(payload))
	}
	return deps, nil
}

// SplitFeatures flattens feature list fragments into individual names: each
// value is split on whitespace runs, every piece on commas, and empty
// fragments are dropped. "a,b c" becomes ["a" "b" "c"].
func SplitFeatures(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, field := range strings.Fields(v) {
			for _, name := range strings.Split(field, ",") {
				if name != "" {
					out = append(out, name)
				}
			}
		}
	}
	return out
}

// SectionInput carries the section-selection flags.
type SectionInput struct {
	Dev   bool
	Build bool

	// Target is non-nil when `--target` was supplied, even with an empty
	// value, so that an explicit empty target can be rejected.
	Target *string
}

// BuildSection determines which dependency table the invocation targets.
// The dev and build flags are mutually exclusive at registration time;
// neither set means the normal dependencies table.
func BuildSection(in SectionInput) (domain.Section, error) {
	kind := domain.SectionNormal
	switch {
	case in.Dev:
		kind = domain.SectionDevelopment
	case in.Build:
		kind = domain.SectionBuild
	}

	section := domain.Section{Kind: kind}
	if in.Target != nil {
		if *in.Target == "" {
			return domain.Section{}, domain.ErrEmptyTarget
		}
		section.Target = *in.Target
	}
	return section, nil
}

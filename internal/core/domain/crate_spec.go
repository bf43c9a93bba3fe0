package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// CrateSpec is the parsed form of a crate token.
type CrateSpec struct {
	// Name is the crate name. For path specs it is derived from the last
	// path component.
	Name string

	// VersionReq is the version requirement from a `name@req` token, if any.
	VersionReq string

	// Path is the filesystem location for path dependencies.
	Path string
}

// IsPath reports whether the spec references a local directory.
func (s CrateSpec) IsPath() bool {
	return s.Path != ""
}

// ParseCrateSpec interprets a raw crate token. Tokens containing a path
// separator or starting with `.` are path references; everything else is
// `name` or `name@version-req`.
func ParseCrateSpec(raw string) (CrateSpec, error) {
	if raw == "" {
		return CrateSpec{}, ErrInvalidCrateSpec
	}
	if strings.ContainsAny(raw, `/\`) || strings.HasPrefix(raw, ".") {
		name := filepath.Base(filepath.Clean(raw))
		if name == "." || name == string(filepath.Separator) {
			return CrateSpec{}, zerr.With(ErrInvalidCrateSpec, "spec", raw)
		}
		return CrateSpec{Name: name, Path: raw}, nil
	}
	name, req, hasReq := strings.Cut(raw, "@")
	if name == "" || (hasReq && req == "") {
		return CrateSpec{}, zerr.With(ErrInvalidCrateSpec, "spec", raw)
	}
	return CrateSpec{Name: name, VersionReq: req}, nil
}

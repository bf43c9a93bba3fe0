package domain

// SectionKind classifies which dependency table an addition targets.
type SectionKind int

const (
	// SectionNormal targets [dependencies]. It is the default and has no
	// explicit flag of its own.
	SectionNormal SectionKind = iota
	// SectionDevelopment targets [dev-dependencies].
	SectionDevelopment
	// SectionBuild targets [build-dependencies].
	SectionBuild
)

// String returns the manifest table name for the kind.
func (k SectionKind) String() string {
	switch k {
	case SectionDevelopment:
		return "dev-dependencies"
	case SectionBuild:
		return "build-dependencies"
	default:
		return "dependencies"
	}
}

// Section identifies the dependency table every request in one invocation
// targets, optionally scoped to a platform target. Target is never empty
// when set.
type Section struct {
	Kind   SectionKind
	Target string
}

// Label returns a human-readable description of the section for output.
func (s Section) Label() string {
	if s.Target == "" {
		return s.Kind.String()
	}
	return s.Kind.String() + " for target `" + s.Target + "`"
}

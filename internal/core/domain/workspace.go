package domain

// PackageRef identifies a workspace member by name and manifest location.
type PackageRef struct {
	Name         string
	ManifestPath string
}

// Workspace is the set of packages reachable from one root manifest.
type Workspace struct {
	// Root is the directory containing the root manifest.
	Root string

	// Members lists every package in the workspace, the root package first
	// when the root manifest declares one.
	Members []PackageRef
}

// Select returns the members matching spec. An empty spec matches every
// member; disambiguation is left to the caller.
func (w *Workspace) Select(spec string) []PackageRef {
	if spec == "" {
		out := make([]PackageRef, len(w.Members))
		copy(out, w.Members)
		return out
	}
	var out []PackageRef
	for _, m := range w.Members {
		if m.Name == spec {
			out = append(out, m)
		}
	}
	return out
}

package domain

// FeatureSet is an insertion-ordered, duplicate-rejecting set of feature
// names. Ordering matters: the manifest output must list features in the
// order the user typed them, so a plain hash set is not an option.
type FeatureSet struct {
	names []string
	seen  map[string]struct{}
}

// NewFeatureSet creates a FeatureSet containing the given names, keeping
// first-seen order and dropping duplicates and empty strings.
func NewFeatureSet(names ...string) *FeatureSet {
	s := &FeatureSet{seen: make(map[string]struct{}, len(names))}
	s.Extend(names)
	return s
}

// Add inserts a feature name and reports whether the set changed. Empty
// names and duplicates are rejected.
func (s *FeatureSet) Add(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Extend adds every name in order.
func (s *FeatureSet) Extend(names []string) {
	for _, name := range names {
		s.Add(name)
	}
}

// Contains reports whether name is in the set.
func (s *FeatureSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[name]
	return ok
}

// Names returns the feature names in insertion order as a copy.
func (s *FeatureSet) Names() []string {
	if s == nil || len(s.names) == 0 {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of features in the set.
func (s *FeatureSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Clone returns an independent copy. Cloning a nil set yields nil, so an
// unspecified feature list stays unspecified.
func (s *FeatureSet) Clone() *FeatureSet {
	if s == nil {
		return nil
	}
	return NewFeatureSet(s.names...)
}

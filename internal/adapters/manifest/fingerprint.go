package manifest

import (
	"github.com/cespare/xxhash/v2"
	"github.com/pelletier/go-toml/v2"
)

// entryFingerprint hashes the canonical TOML form of a dependency entry.
// Comparing fingerprints instead of raw values sidesteps the string-vs-table
// representations the same entry can take.
func entryFingerprint(entry any) uint64 {
	wrapped := map[string]any{"entry": normalizeEntry(entry)}
	data, err := toml.Marshal(wrapped)
	if err != nil {
		// Unmarshalable values can only come from a fresh in-memory entry,
		// which is built from plain strings, bools and slices.
		return 0
	}
	return xxhash.Sum64(data)
}

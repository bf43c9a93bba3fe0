// Package manifest applies dependency-addition requests to a TOML manifest.
package manifest

import (
	"context"
	"os"

	"cratectl/internal/core/domain"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
)

// Editor implements ports.ManifestEditor over a TOML document on disk.
type Editor struct{}

// NewEditor creates a new Editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Apply merges the resolved dependencies into the section table of pkg's
// manifest. The document is modified in memory first and written once at the
// end; with dryRun set the write is skipped entirely.
func (e *Editor) Apply(ctx context.Context, pkg domain.PackageRef, deps []domain.ResolvedDep, section domain.Section, dryRun bool) ([]domain.EditOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(pkg.ManifestPath) //nolint:gosec // path comes from workspace discovery
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", pkg.ManifestPath)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", pkg.ManifestPath)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	table, err := sectionTable(doc, section)
	if err != nil {
		return nil, err
	}

	outcomes := make([]domain.EditOutcome, 0, len(deps))
	changed := false
	for _, dep := range deps {
		key := dep.Spec.Name
		if dep.Op.Rename != "" {
			key = dep.Op.Rename
		}

		old, existed := table[key]
		entry := buildEntry(dep, key, old)
		unchanged := existed && entryFingerprint(old) == entryFingerprint(entry)
		if !unchanged {
			changed = true
		}
		table[key] = entry

		outcomes = append(outcomes, domain.EditOutcome{
			Name:      key,
			Version:   dep.Version,
			Section:   section.Label(),
			Unchanged: unchanged,
		})
	}

	if dryRun || !changed {
		return outcomes, nil
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to serialize manifest")
	}
	if err := os.WriteFile(pkg.ManifestPath, out, 0o644); err != nil { //nolint:gosec // manifest is a world-readable source file
		return nil, zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", pkg.ManifestPath)
	}
	return outcomes, nil
}

// sectionTable walks (and creates) the nested tables leading to the section
// the invocation targets, e.g. target.<platform>.dev-dependencies.
func sectionTable(doc map[string]any, section domain.Section) (map[string]any, error) {
	var keys []string
	if section.Target != "" {
		keys = append(keys, "target", section.Target)
	}
	keys = append(keys, section.Kind.String())

	cur := doc
	for _, key := range keys {
		next, ok := cur[key]
		if !ok {
			m := map[string]any{}
			cur[key] = m
			cur = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, zerr.With(zerr.New("manifest entry is not a table"), "key", key)
		}
		cur = m
	}
	return cur, nil
}

// buildEntry produces the manifest value for one dependency. Fields left
// unspecified in the request keep whatever the existing entry carried;
// tri-state fields matching the manifest default are removed rather than
// written out.
func buildEntry(dep domain.ResolvedDep, key string, old any) any {
	entry := normalizeEntry(old)

	if dep.Version != "" {
		entry["version"] = dep.Version
	}
	if dep.Spec.Path != "" {
		entry["path"] = dep.Spec.Path
	}
	if dep.Op.Registry != "" {
		entry["registry"] = dep.Op.Registry
	}
	if dep.Op.Git != "" {
		entry["git"] = dep.Op.Git
		// A new git ref supersedes whichever ref kind was there before.
		delete(entry, "branch")
		delete(entry, "tag")
		delete(entry, "rev")
		if dep.Op.Branch != "" {
			entry["branch"] = dep.Op.Branch
		}
		if dep.Op.Tag != "" {
			entry["tag"] = dep.Op.Tag
		}
		if dep.Op.Rev != "" {
			entry["rev"] = dep.Op.Rev
		}
	}
	if key != dep.Spec.Name {
		entry["package"] = dep.Spec.Name
	}
	if dep.Op.Features != nil {
		names := dep.Op.Features.Names()
		values := make([]any, len(names))
		for i, n := range names {
			values[i] = n
		}
		entry["features"] = values
	}
	if v := dep.Op.DefaultFeatures; v != nil {
		if *v {
			delete(entry, "default-features")
		} else {
			entry["default-features"] = false
		}
	}
	if v := dep.Op.Optional; v != nil {
		if *v {
			entry["optional"] = true
		} else {
			delete(entry, "optional")
		}
	}

	// A version on its own collapses to the short string form.
	if len(entry) == 1 {
		if version, ok := entry["version"].(string); ok {
			return version
		}
	}
	return entry
}

// normalizeEntry lifts an existing manifest value into table form so new
// fields can be merged into it.
func normalizeEntry(old any) map[string]any {
	switch v := old.(type) {
	case string:
		return map[string]any{"version": v}
	case map[string]any:
		entry := make(map[string]any, len(v))
		for k, val := range v {
			entry[k] = val
		}
		return entry
	default:
		return map[string]any{}
	}
}

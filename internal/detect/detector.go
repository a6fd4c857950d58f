// -----------------------------------------------------------------------
// Detector - Rule-based technology detection over a repository listing
// Evaluates manifest, keyword, and presence rules from the signature catalog
// -----------------------------------------------------------------------

package detect

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/catalog"
	"github.com/ternarybob/gitscribe/internal/models"
)

// ManifestFetcher returns the decoded text content of a repository file.
// It must return the empty string on any failure: missing or unreadable
// manifest content degrades detection quality but never aborts detection.
type ManifestFetcher func(ctx context.Context, path string) string

// Detector builds a technology profile from a repository listing and the
// contents of well-known manifest files, fetched on demand.
type Detector struct {
	logger arbor.ILogger
}

// New creates a Detector.
func New(logger arbor.ILogger) *Detector {
	return &Detector{logger: logger}
}

// listingIndex is the lower-cased view of a listing used for
// case-insensitive matching.
type listingIndex struct {
	entries []models.FileEntry
	names   map[string]models.FileEntry // lower-cased name -> entry
	paths   []string                    // lower-cased paths
}

func indexListing(listing []models.FileEntry) *listingIndex {
	idx := &listingIndex{
		entries: listing,
		names:   make(map[string]models.FileEntry, len(listing)),
		paths:   make([]string, 0, len(listing)),
	}
	for _, e := range listing {
		idx.names[strings.ToLower(e.Name)] = e
		idx.paths = append(idx.paths, strings.ToLower(e.Path))
	}
	return idx
}

func (x *listingIndex) hasName(name string) bool {
	_, ok := x.names[name]
	return ok
}

func (x *listingIndex) entryByName(name string) (models.FileEntry, bool) {
	e, ok := x.names[name]
	return e, ok
}

func (x *listingIndex) hasPathContaining(marker string) bool {
	for _, p := range x.paths {
		if strings.Contains(p, marker) {
			return true
		}
	}
	return false
}

// Detect runs all rule groups against the listing and returns the resulting
// profile. Rules are independent and side-effect-free; each appends to its
// own category list. Multiple ecosystems may coexist in one repository and
// all applicable rule groups run. An empty listing or absent manifests is a
// valid input producing empty lists and the unmodified language map.
func (d *Detector) Detect(ctx context.Context, listing []models.FileEntry, languageBytes map[string]int, fetch ManifestFetcher) *models.TechProfile {
	profile := models.NewTechProfile(languageBytes)
	idx := indexListing(listing)

	d.applyNodeManifestRules(ctx, idx, profile, fetch)
	d.applyPythonKeywordRules(ctx, idx, profile, fetch)
	d.applyMarkerRules(idx, profile)
	d.applyDatabaseFileRules(idx, profile)

	profile.Frameworks = dedupe(profile.Frameworks)
	profile.Tools = dedupe(profile.Tools)
	profile.Databases = dedupe(profile.Databases)
	profile.Deployment = dedupe(profile.Deployment)

	d.logger.Debug().
		Int("frameworks", len(profile.Frameworks)).
		Int("tools", len(profile.Tools)).
		Int("databases", len(profile.Databases)).
		Int("deployment", len(profile.Deployment)).
		Msg("Technology detection complete")

	return profile
}

// nodeManifest is the subset of package.json detection cares about.
type nodeManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// applyNodeManifestRules parses package.json (when present) into a merged
// dependency set and evaluates the dependency rules in catalog order. Rules
// with a Requires label only fire after their base library was detected,
// which the fixed base-before-meta ordering of the table guarantees.
func (d *Detector) applyNodeManifestRules(ctx context.Context, idx *listingIndex, profile *models.TechProfile, fetch ManifestFetcher) {
	entry, ok := idx.entryByName(catalog.NodeManifest)
	if !ok {
		return
	}

	content := fetch(ctx, entry.Path)
	if content == "" {
		return
	}

	var manifest nodeManifest
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		// Malformed manifest content is a warning, never a failure of the
		// detection pass.
		d.logger.Warn().
			Err(err).
			Str("path", entry.Path).
			Msg("Failed to parse package manifest, skipping manifest rules")
		return
	}

	deps := make(map[string]bool, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name := range manifest.Dependencies {
		deps[name] = true
	}
	for name := range manifest.DevDependencies {
		deps[name] = true
	}

	detected := make(map[string]bool)
	for _, rule := range catalog.NodeDependencyRules {
		if !deps[rule.Dependency] {
			continue
		}
		if rule.Requires != "" && !detected[rule.Requires] {
			continue
		}
		detected[rule.Label] = true
		appendLabel(profile, rule.Category, rule.Label)
	}
}

// applyPythonKeywordRules fetches requirements.txt once and tests literal
// case-sensitive substring containment against the keyword table.
func (d *Detector) applyPythonKeywordRules(ctx context.Context, idx *listingIndex, profile *models.TechProfile, fetch ManifestFetcher) {
	entry, ok := idx.entryByName(catalog.PythonRequirements)
	if !ok {
		return
	}

	content := fetch(ctx, entry.Path)
	if content == "" {
		return
	}

	for _, rule := range catalog.PythonKeywordRules {
		if strings.Contains(content, rule.Keyword) {
			appendLabel(profile, rule.Category, rule.Label)
		}
	}
}

// applyMarkerRules fires presence-only rules: no content fetch, just file
// name or path-prefix existence in the listing.
func (d *Detector) applyMarkerRules(idx *listingIndex, profile *models.TechProfile) {
	for _, rule := range catalog.MarkerRules {
		switch {
		case rule.Name != "" && idx.hasName(rule.Name):
			appendLabel(profile, rule.Category, rule.Label)
		case rule.PathPrefix != "" && idx.hasPathContaining(rule.PathPrefix):
			appendLabel(profile, rule.Category, rule.Label)
		}
	}
}

// applyDatabaseFileRules contributes database labels from SQL scripts and
// named schema files, independent of any manifest.
func (d *Detector) applyDatabaseFileRules(idx *listingIndex, profile *models.TechProfile) {
	for name := range idx.names {
		if strings.HasSuffix(name, catalog.SQLExtension) {
			appendLabel(profile, models.CategoryDatabases, catalog.SQLLabel)
			break
		}
	}
	for _, rule := range catalog.DatabaseFileRules {
		if idx.hasName(rule.Name) {
			appendLabel(profile, rule.Category, rule.Label)
		}
	}
}

func appendLabel(profile *models.TechProfile, category models.TechCategory, label string) {
	switch category {
	case models.CategoryFrameworks:
		profile.Frameworks = append(profile.Frameworks, label)
	case models.CategoryTools:
		profile.Tools = append(profile.Tools, label)
	case models.CategoryDatabases:
		profile.Databases = append(profile.Databases, label)
	case models.CategoryDeployment:
		profile.Deployment = append(profile.Deployment, label)
	}
}

// dedupe removes duplicate labels preserving first-seen order. Running it
// twice yields the same list.
func dedupe(labels []string) []string {
	if len(labels) == 0 {
		return labels
	}
	seen := make(map[string]bool, len(labels))
	out := labels[:0]
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

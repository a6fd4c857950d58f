package readme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gitscribe/internal/models"
)

func TestSynthesize_SectionOrder(t *testing.T) {
	meta := createTestMetadata()
	profile := models.NewTechProfile(map[string]int{"Go": 1000})
	listing := []models.FileEntry{
		{Name: "package.json", Path: "package.json", Kind: models.FileKindFile},
		{Name: "src", Path: "src", Kind: models.FileKindDirectory},
	}

	doc := Synthesize(meta, profile, listing)

	headings := []string{
		"# Hello World",
		"## Description",
		"## Table of Contents",
		"## Features",
		"## Technology Stack",
		"## Installation",
		"## Usage",
		"## Project Structure",
		"## Scripts",
		"## Contributing",
		"## License",
		"## Contact",
	}

	last := -1
	for _, h := range headings {
		idx := strings.Index(doc, h)
		require.GreaterOrEqual(t, idx, 0, "missing heading %q", h)
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
}

func TestSynthesize_SectionsJoinedByBlankLine(t *testing.T) {
	meta := createTestMetadata()
	profile := models.NewTechProfile(nil)

	doc := Synthesize(meta, profile, nil)

	assert.NotContains(t, doc, "\n\n\n\n")
	assert.True(t, strings.HasSuffix(doc, "\n"))
}

func TestSynthesize_OmitsEmptySections(t *testing.T) {
	meta := createTestMetadata()
	profile := models.NewTechProfile(nil)

	// No listing: no project structure, no scripts, no API docs.
	doc := Synthesize(meta, profile, nil)

	assert.NotContains(t, doc, "## Project Structure")
	assert.NotContains(t, doc, "## Scripts")
	assert.NotContains(t, doc, "## API Documentation")
	// Static sections are always present.
	assert.Contains(t, doc, "## Contributing")
	assert.Contains(t, doc, "## License")
}

func TestSynthesize_IsDeterministic(t *testing.T) {
	meta := createTestMetadata()
	profile := models.NewTechProfile(map[string]int{"TypeScript": 800, "JavaScript": 200})
	profile.Frameworks = []string{"React"}
	listing := []models.FileEntry{
		{Name: "package.json", Path: "package.json", Kind: models.FileKindFile},
	}

	first := Synthesize(meta, profile, listing)
	second := Synthesize(meta, profile, listing)

	assert.Equal(t, first, second)
}

func TestSynthesize_TotalOnDegradedInput(t *testing.T) {
	// Bare metadata, no description, no license, empty profile and listing
	// still produce a complete document.
	meta := &models.RepoMetadata{
		FullName: "someone/bare-repo",
		Name:     "bare-repo",
		HTMLURL:  "https://github.com/someone/bare-repo",
		CloneURL: "https://github.com/someone/bare-repo.git",
	}
	profile := models.NewTechProfile(nil)

	doc := Synthesize(meta, profile, nil)

	assert.Contains(t, doc, "# Bare Repo")
	assert.Contains(t, doc, "## Installation")
	assert.Contains(t, doc, "MIT License")
}

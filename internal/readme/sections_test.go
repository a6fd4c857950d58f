package readme

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/gitscribe/internal/models"
)

func createTestMetadata() *models.RepoMetadata {
	return &models.RepoMetadata{
		FullName:        "octocat/hello-world",
		Name:            "hello-world",
		Description:     "A sample project",
		HTMLURL:         "https://github.com/octocat/hello-world",
		CloneURL:        "https://github.com/octocat/hello-world.git",
		PrimaryLanguage: "Go",
		CreatedAt:       time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Stars:           42,
		Forks:           7,
		SizeKB:          1536,
	}
}

func TestHeaderSection(t *testing.T) {
	meta := createTestMetadata()

	section := headerSection(meta)

	assert.True(t, strings.HasPrefix(section, "# Hello World"))
	assert.Contains(t, section, "A sample project")
}

func TestHeaderSection_FallbackDescription(t *testing.T) {
	meta := createTestMetadata()
	meta.Description = ""

	section := headerSection(meta)

	assert.Contains(t, section, fallbackDescription)
}

func TestBadgesSection_SkipsUnknownFrameworks(t *testing.T) {
	meta := createTestMetadata()
	profile := models.NewTechProfile(nil)
	profile.Frameworks = []string{"React", "SomethingUnmapped"}

	section := badgesSection(meta, profile)

	assert.Contains(t, section, "img.shields.io/badge/React")
	assert.NotContains(t, section, "SomethingUnmapped")
}

func TestProjectType_SpecificityOrder(t *testing.T) {
	profile := models.NewTechProfile(nil)
	profile.Frameworks = []string{"React", "Next.js"}
	assert.Equal(t, "Next.js application", projectType(profile))

	profile.Frameworks = []string{"React"}
	assert.Equal(t, "React application", projectType(profile))

	profile.Frameworks = nil
	assert.Equal(t, "software project", projectType(profile))
}

func TestDescriptionSection_Size(t *testing.T) {
	meta := createTestMetadata()
	profile := models.NewTechProfile(nil)

	section := descriptionSection(meta, profile)

	assert.Contains(t, section, "1.50 MB")
	assert.Contains(t, section, "January 15, 2020")
	assert.Contains(t, section, "June 1, 2024")
}

func TestTechnologyStackSection_LanguagePercentages(t *testing.T) {
	profile := models.NewTechProfile(map[string]int{
		"TypeScript": 800,
		"JavaScript": 200,
	})

	section := technologyStackSection(profile)

	assert.Contains(t, section, "**TypeScript** (80.0%)")
	assert.Contains(t, section, "**JavaScript** (20.0%)")
	// Sorted by byte count descending.
	assert.Less(t, strings.Index(section, "TypeScript"), strings.Index(section, "JavaScript"))
}

func TestTechnologyStackSection_EmptyCategoriesOmitted(t *testing.T) {
	profile := models.NewTechProfile(nil)
	profile.Frameworks = []string{"React"}

	section := technologyStackSection(profile)

	assert.Contains(t, section, "### Frameworks")
	assert.NotContains(t, section, "### Languages")
	assert.NotContains(t, section, "### Databases")
	assert.NotContains(t, section, "### Deployment")
}

func TestTechnologyStackSection_AllEmpty(t *testing.T) {
	profile := models.NewTechProfile(nil)
	assert.Empty(t, technologyStackSection(profile))
}

func TestInstallationSection_MutuallyExclusive(t *testing.T) {
	listings := map[string][]models.FileEntry{
		"node":    {{Name: "package.json", Path: "package.json", Kind: models.FileKindFile}},
		"python":  {{Name: "requirements.txt", Path: "requirements.txt", Kind: models.FileKindFile}},
		"maven":   {{Name: "pom.xml", Path: "pom.xml", Kind: models.FileKindFile}},
		"generic": {{Name: "main.c", Path: "main.c", Kind: models.FileKindFile}},
	}

	for name, listing := range listings {
		t.Run(name, func(t *testing.T) {
			section := installationSection(listing)
			// Exactly one template: a single "## Installation" heading and
			// a single fenced block.
			assert.Equal(t, 1, strings.Count(section, "## Installation"))
			assert.Equal(t, 1, strings.Count(section, "```bash"))
		})
	}
}

func TestInstallationSection_GenericFallback(t *testing.T) {
	section := installationSection(nil)

	assert.Contains(t, section, "git clone "+PlaceholderRepoURL)
	assert.Contains(t, section, "cd "+PlaceholderRepoName)
	assert.Contains(t, section, "Follow the project-specific setup instructions")
	assert.NotContains(t, section, "npm install")
	assert.NotContains(t, section, "pip install")
}

func TestInstallationSection_NodeTakesPriorityOverPython(t *testing.T) {
	listing := []models.FileEntry{
		{Name: "package.json", Path: "package.json", Kind: models.FileKindFile},
		{Name: "requirements.txt", Path: "requirements.txt", Kind: models.FileKindFile},
	}

	section := installationSection(listing)

	assert.Contains(t, section, "npm install")
	assert.NotContains(t, section, "pip install")
}

func TestPackageManager_Lockfiles(t *testing.T) {
	tests := []struct {
		lockfile string
		expected string
	}{
		{"yarn.lock", "yarn"},
		{"pnpm-lock.yaml", "pnpm"},
		{"bun.lockb", "bun"},
		{"nothing.txt", "npm"},
	}

	for _, tt := range tests {
		listing := []models.FileEntry{
			{Name: "package.json", Path: "package.json", Kind: models.FileKindFile},
			{Name: tt.lockfile, Path: tt.lockfile, Kind: models.FileKindFile},
		}
		assert.Equal(t, tt.expected, packageManager(listing))
	}
}

func TestPackageManager_MultipleLockfilesAreDeterministic(t *testing.T) {
	listing := []models.FileEntry{
		{Name: "package.json", Path: "package.json", Kind: models.FileKindFile},
		{Name: "pnpm-lock.yaml", Path: "pnpm-lock.yaml", Kind: models.FileKindFile},
		{Name: "yarn.lock", Path: "yarn.lock", Kind: models.FileKindFile},
	}

	// yarn.lock outranks pnpm-lock.yaml regardless of listing order, on
	// every run.
	for i := 0; i < 50; i++ {
		assert.Equal(t, "yarn", packageManager(listing))
	}

	reversed := []models.FileEntry{listing[0], listing[2], listing[1]}
	for i := 0; i < 50; i++ {
		assert.Equal(t, "yarn", packageManager(reversed))
	}
}

func TestUsageSection_Templates(t *testing.T) {
	node := []models.FileEntry{{Name: "package.json", Path: "package.json", Kind: models.FileKindFile}}
	python := []models.FileEntry{{Name: "requirements.txt", Path: "requirements.txt", Kind: models.FileKindFile}}

	assert.Contains(t, usageSection(node), "npm run dev")
	assert.Contains(t, usageSection(python), "python main.py")
	assert.Contains(t, usageSection(nil), "Refer to the project documentation")
}

func TestFeaturesSection_FallbackIsExactlyFourItems(t *testing.T) {
	profile := models.NewTechProfile(nil)

	section := featuresSection(profile, nil)

	assert.Equal(t, 4, strings.Count(section, "\n- "))
	for _, item := range fallbackFeatures {
		assert.Contains(t, section, item)
	}
}

func TestFeaturesSection_DerivedNeverMixedWithFallback(t *testing.T) {
	profile := models.NewTechProfile(nil)
	profile.Deployment = []string{"Docker"}

	section := featuresSection(profile, nil)

	assert.Contains(t, section, "Containerized with Docker")
	for _, item := range fallbackFeatures {
		assert.NotContains(t, section, item)
	}
}

func TestProjectStructureSection_DirectoriesFirst(t *testing.T) {
	meta := createTestMetadata()
	listing := []models.FileEntry{
		{Name: "b.txt", Path: "b.txt", Kind: models.FileKindFile},
		{Name: "a", Path: "a", Kind: models.FileKindDirectory},
	}

	section := projectStructureSection(meta, listing)

	assert.Less(t, strings.Index(section, "a/"), strings.Index(section, "b.txt"))
	assert.Contains(t, section, "├── a/")
	assert.Contains(t, section, "└── b.txt")
}

func TestProjectStructureSection_EmptyListing(t *testing.T) {
	assert.Empty(t, projectStructureSection(createTestMetadata(), nil))
}

func TestIsAPIProject(t *testing.T) {
	profile := models.NewTechProfile(nil)
	profile.Frameworks = []string{"Express"}
	assert.True(t, isAPIProject(profile, nil))

	profile = models.NewTechProfile(nil)
	listing := []models.FileEntry{{Name: "routes", Path: "routes", Kind: models.FileKindDirectory}}
	assert.True(t, isAPIProject(profile, listing))

	profile = models.NewTechProfile(nil)
	profile.Frameworks = []string{"React"}
	assert.False(t, isAPIProject(profile, nil))
}

func TestAPIDocumentationSection_Port(t *testing.T) {
	profile := models.NewTechProfile(nil)
	profile.Frameworks = []string{"FastAPI"}
	assert.Contains(t, apiDocumentationSection(profile, nil), "port 8000")

	profile.Frameworks = []string{"Express"}
	assert.Contains(t, apiDocumentationSection(profile, nil), "port 3000")
}

func TestScriptsSection_RequiresPackageManifest(t *testing.T) {
	node := []models.FileEntry{{Name: "package.json", Path: "package.json", Kind: models.FileKindFile}}

	assert.Contains(t, scriptsSection(node), "npm run dev")
	assert.Empty(t, scriptsSection(nil))
}

func TestLicenseSection_Default(t *testing.T) {
	meta := createTestMetadata()
	meta.License = nil

	section := licenseSection(meta)

	assert.Contains(t, section, "MIT License")
	assert.Contains(t, section, "(MIT)")
}

func TestLicenseSection_FromMetadata(t *testing.T) {
	meta := createTestMetadata()
	meta.License = &models.License{Name: "Apache License 2.0", SPDXID: "Apache-2.0"}

	section := licenseSection(meta)

	assert.Contains(t, section, "Apache License 2.0")
}

func TestContactSection_Owner(t *testing.T) {
	section := contactSection(createTestMetadata())

	assert.Contains(t, section, "**octocat**")
	assert.Contains(t, section, "https://github.com/octocat/hello-world")
}

func TestTableOfContents_ConditionalAnchors(t *testing.T) {
	profile := models.NewTechProfile(nil)
	node := []models.FileEntry{{Name: "package.json", Path: "package.json", Kind: models.FileKindFile}}

	withScripts := tableOfContentsSection(profile, node)
	assert.Contains(t, withScripts, "[Scripts](#scripts)")

	bare := tableOfContentsSection(profile, nil)
	assert.NotContains(t, bare, "[Scripts]")
	assert.NotContains(t, bare, "[API Documentation]")

	apiProfile := models.NewTechProfile(nil)
	apiProfile.Frameworks = []string{"Flask"}
	withAPI := tableOfContentsSection(apiProfile, nil)
	assert.Contains(t, withAPI, "[API Documentation](#api-documentation)")
}

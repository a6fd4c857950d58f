package readme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/gitscribe/internal/catalog"
	"github.com/ternarybob/gitscribe/internal/models"
)

// Each section builder is a pure function of its declared inputs and returns
// the empty string when it has nothing to say; empty sections are filtered
// out before the final join.

const fallbackDescription = "A brief description of what this project does and who it's for."

func headerSection(meta *models.RepoMetadata) string {
	description := meta.Description
	if description == "" {
		description = fallbackDescription
	}
	return fmt.Sprintf("# %s\n\n%s", TitleFromName(meta.Name), description)
}

func badgesSection(meta *models.RepoMetadata, profile *models.TechProfile) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("![GitHub stars](https://img.shields.io/github/stars/%s?style=for-the-badge)", meta.FullName),
		fmt.Sprintf("![GitHub forks](https://img.shields.io/github/forks/%s?style=for-the-badge)", meta.FullName),
		fmt.Sprintf("![GitHub issues](https://img.shields.io/github/issues/%s?style=for-the-badge)", meta.FullName),
	)

	if meta.PrimaryLanguage != "" {
		lines = append(lines, fmt.Sprintf("![Top language](https://img.shields.io/github/languages/top/%s?style=for-the-badge)", meta.FullName))
	}

	// Frameworks without a badge mapping are silently skipped.
	for _, framework := range profile.Frameworks {
		if badge, ok := catalog.FrameworkBadges[framework]; ok {
			lines = append(lines, badge)
		}
	}

	if meta.License != nil && meta.License.SPDXID != "" {
		lines = append(lines, fmt.Sprintf("![License](https://img.shields.io/badge/license-%s-blue?style=for-the-badge)", meta.License.SPDXID))
	}

	return strings.Join(lines, "\n")
}

// projectType classifies the repository from its detected frameworks using
// the fixed most-to-least-specific decision table; first match wins.
func projectType(profile *models.TechProfile) string {
	for _, rule := range catalog.ProjectTypeRules {
		matched := true
		for _, framework := range rule.Frameworks {
			if !profile.HasFramework(framework) {
				matched = false
				break
			}
		}
		if matched {
			return rule.Label
		}
	}
	return catalog.DefaultProjectType
}

func descriptionSection(meta *models.RepoMetadata, profile *models.TechProfile) string {
	var b strings.Builder

	b.WriteString("## Description\n\n")
	if meta.Description != "" {
		b.WriteString(meta.Description)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("This repository contains a %s.\n\n", projectType(profile)))
	b.WriteString(fmt.Sprintf("- **Created:** %s\n", FormatDate(meta.CreatedAt)))
	b.WriteString(fmt.Sprintf("- **Last updated:** %s\n", FormatDate(meta.UpdatedAt)))
	b.WriteString(fmt.Sprintf("- **Repository size:** %s", FormatRepoSize(meta.SizeKB)))

	return b.String()
}

func tableOfContentsSection(profile *models.TechProfile, listing []models.FileEntry) string {
	headings := []string{
		"Features",
		"Technology Stack",
		"Installation",
		"Usage",
		"Project Structure",
	}
	if isAPIProject(profile, listing) {
		headings = append(headings, "API Documentation")
	}
	if hasFileNamed(listing, catalog.NodeManifest) {
		headings = append(headings, "Scripts")
	}
	headings = append(headings, "Contributing", "License", "Contact")

	var b strings.Builder
	b.WriteString("## Table of Contents\n")
	for _, h := range headings {
		b.WriteString(fmt.Sprintf("\n- [%s](#%s)", h, anchor(h)))
	}
	return b.String()
}

// fallbackFeatures is used if and only if zero feature signals fire; derived
// and fallback items are never mixed.
var fallbackFeatures = []string{
	"Clean and modular code organization",
	"Easy local setup and configuration",
	"Well-documented project structure",
	"Open to community contributions",
}

func featuresSection(profile *models.TechProfile, listing []models.FileEntry) string {
	var items []string

	if contains(profile.Deployment, "Docker") {
		items = append(items, "Containerized with Docker for reproducible environments")
	}
	if contains(profile.Deployment, "GitHub Actions") {
		items = append(items, "Automated CI/CD pipeline with GitHub Actions")
	}
	if contains(profile.Tools, "TypeScript") || profile.Languages["TypeScript"] > 0 {
		items = append(items, "Type-safe codebase written in TypeScript")
	}
	if len(profile.Databases) > 0 {
		items = append(items, fmt.Sprintf("Persistent data storage backed by %s", profile.Databases[0]))
	}
	if contains(profile.Tools, "Jest") || contains(profile.Tools, "Vitest") || contains(profile.Tools, "pytest") {
		items = append(items, "Automated test suite")
	}
	if isAPIProject(profile, listing) {
		items = append(items, "RESTful API endpoints")
	}

	if len(items) == 0 {
		items = fallbackFeatures
	}

	var b strings.Builder
	b.WriteString("## Features\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("\n- %s", item))
	}
	return b.String()
}

// languageShare pairs a language with its byte count for ordered rendering.
type languageShare struct {
	name  string
	bytes int
}

func technologyStackSection(profile *models.TechProfile) string {
	var subsections []string

	if len(profile.Languages) > 0 {
		total := 0
		shares := make([]languageShare, 0, len(profile.Languages))
		for name, bytes := range profile.Languages {
			total += bytes
			shares = append(shares, languageShare{name: name, bytes: bytes})
		}
		sort.SliceStable(shares, func(i, j int) bool {
			if shares[i].bytes != shares[j].bytes {
				return shares[i].bytes > shares[j].bytes
			}
			return shares[i].name < shares[j].name
		})

		var b strings.Builder
		b.WriteString("### Languages\n")
		for _, s := range shares {
			b.WriteString(fmt.Sprintf("\n- **%s** (%s)", s.name, FormatPercent(s.bytes, total)))
		}
		subsections = append(subsections, b.String())
	}

	categories := []struct {
		title  string
		labels []string
	}{
		{"Frameworks", profile.Frameworks},
		{"Tools", profile.Tools},
		{"Databases", profile.Databases},
		{"Deployment", profile.Deployment},
	}
	for _, c := range categories {
		if len(c.labels) == 0 {
			continue
		}
		var b strings.Builder
		b.WriteString(fmt.Sprintf("### %s\n", c.title))
		for _, label := range c.labels {
			b.WriteString(fmt.Sprintf("\n- %s", label))
		}
		subsections = append(subsections, b.String())
	}

	if len(subsections) == 0 {
		return ""
	}
	return "## Technology Stack\n\n" + strings.Join(subsections, "\n\n")
}

// packageManager picks the package manager from the recognized lockfiles in
// the listing, defaulting when none is present. Rules are checked in catalog
// order so listings with several lockfiles always resolve the same way.
func packageManager(listing []models.FileEntry) string {
	for _, rule := range catalog.LockfileRules {
		if hasFileNamed(listing, rule.Name) {
			return rule.Manager
		}
	}
	return catalog.DefaultPackageManager
}

// installationSection renders exactly one of four mutually exclusive
// templates, evaluated in priority order: package manifest, Python manifest,
// Java build file, generic fallback. The clone URL and directory name are
// placeholder tokens resolved after synthesis.
func installationSection(listing []models.FileEntry) string {
	clone := fmt.Sprintf("# Clone the repository\ngit clone %s\ncd %s", PlaceholderRepoURL, PlaceholderRepoName)

	switch {
	case hasFileNamed(listing, catalog.NodeManifest):
		manager := packageManager(listing)
		return fmt.Sprintf("## Installation\n\n```bash\n%s\n\n# Install dependencies\n%s install\n```", clone, manager)

	case hasFileNamed(listing, catalog.PythonRequirements),
		hasFileNamed(listing, catalog.PythonProject),
		hasFileNamed(listing, catalog.PythonSetup):
		return fmt.Sprintf("## Installation\n\n```bash\n%s\n\n# Create a virtual environment\npython -m venv venv\nsource venv/bin/activate\n\n# Install dependencies\npip install -r requirements.txt\n```", clone)

	case hasFileNamed(listing, catalog.MavenBuild):
		return fmt.Sprintf("## Installation\n\n```bash\n%s\n\n# Build the project\nmvn clean install\n```", clone)

	case hasFileNamed(listing, catalog.GradleBuild):
		return fmt.Sprintf("## Installation\n\n```bash\n%s\n\n# Build the project\n./gradlew build\n```", clone)

	default:
		return fmt.Sprintf("## Installation\n\n```bash\n%s\n\n# Follow the project-specific setup instructions\n```", clone)
	}
}

// usageSection renders exactly one of three templates keyed by the same
// manifest signals as installation.
func usageSection(listing []models.FileEntry) string {
	switch {
	case hasFileNamed(listing, catalog.NodeManifest):
		manager := packageManager(listing)
		return fmt.Sprintf("## Usage\n\n```bash\n# Start the development server\n%s run dev\n```", manager)

	case hasFileNamed(listing, catalog.PythonRequirements),
		hasFileNamed(listing, catalog.PythonProject),
		hasFileNamed(listing, catalog.PythonSetup):
		return "## Usage\n\n```bash\n# Run the application\npython main.py\n```"

	default:
		return "## Usage\n\nRefer to the project documentation for usage instructions."
	}
}

// projectStructureSection renders the root listing as a flat tree:
// directories before files, then case-sensitive ordinal order by name. The
// last entry gets the terminal glyph.
func projectStructureSection(meta *models.RepoMetadata, listing []models.FileEntry) string {
	if len(listing) == 0 {
		return ""
	}

	entries := make([]models.FileEntry, len(listing))
	copy(entries, listing)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name < entries[j].Name
	})

	var b strings.Builder
	b.WriteString("## Project Structure\n\n```\n")
	b.WriteString(PlaceholderRepoName + "/\n")
	for i, e := range entries {
		glyph := "├──"
		if i == len(entries)-1 {
			glyph = "└──"
		}
		name := e.Name
		if e.IsDir() {
			name += "/"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", glyph, name))
	}
	b.WriteString("```")
	return b.String()
}

// isAPIProject holds when any detected framework name contains an
// API-framework marker, or any file name/path contains an API path marker.
func isAPIProject(profile *models.TechProfile, listing []models.FileEntry) bool {
	for _, framework := range profile.Frameworks {
		for _, marker := range catalog.APIFrameworkMarkers {
			if strings.Contains(framework, marker) {
				return true
			}
		}
	}
	for _, e := range listing {
		name := strings.ToLower(e.Name)
		path := strings.ToLower(e.Path)
		for _, marker := range catalog.APIPathMarkers {
			if strings.Contains(name, marker) || strings.Contains(path, marker) {
				return true
			}
		}
	}
	return false
}

// apiPort maps the detected frameworks to the conventional serving port.
func apiPort(profile *models.TechProfile) int {
	if profile.HasFramework("FastAPI") {
		return catalog.APIPortFastAPI
	}
	return catalog.APIPortDefault
}

func apiDocumentationSection(profile *models.TechProfile, listing []models.FileEntry) string {
	if !isAPIProject(profile, listing) {
		return ""
	}

	port := apiPort(profile)
	return fmt.Sprintf(`## API Documentation

The API server listens on port %d by default.

| Method | Endpoint | Description |
|--------|----------|-------------|
| GET | `+"`/api/health`"+` | Health check |
| GET | `+"`/api/resources`"+` | List resources |
| GET | `+"`/api/resources/:id`"+` | Get a single resource |
| POST | `+"`/api/resources`"+` | Create a resource |

Base URL: `+"`http://localhost:%d`", port, port)
}

func scriptsSection(listing []models.FileEntry) string {
	if !hasFileNamed(listing, catalog.NodeManifest) {
		return ""
	}

	return `## Scripts

| Script | Description |
|--------|-------------|
| ` + "`npm run dev`" + ` | Start the development server |
| ` + "`npm run build`" + ` | Create a production build |
| ` + "`npm test`" + ` | Run the test suite |
| ` + "`npm run lint`" + ` | Lint the codebase |`
}

func contributingSection() string {
	return `## Contributing

Contributions are welcome!

1. Fork the repository
2. Create a feature branch (` + "`git checkout -b feature/my-feature`" + `)
3. Commit your changes (` + "`git commit -m 'Add my feature'`" + `)
4. Push to the branch (` + "`git push origin feature/my-feature`" + `)
5. Open a pull request`
}

// defaultLicense is the fixed pair used when metadata carries no license.
var defaultLicense = models.License{Name: "MIT License", SPDXID: "MIT"}

func licenseSection(meta *models.RepoMetadata) string {
	license := defaultLicense
	if meta.License != nil {
		license = *meta.License
	}
	return fmt.Sprintf("## License\n\nThis project is licensed under the %s (%s) - see the [LICENSE](LICENSE) file for details.", license.Name, license.SPDXID)
}

func contactSection(meta *models.RepoMetadata) string {
	return fmt.Sprintf("## Contact\n\nMaintained by **%s**.\n\nProject link: [%s](%s)", meta.Owner(), meta.HTMLURL, meta.HTMLURL)
}

func hasFileNamed(listing []models.FileEntry, name string) bool {
	for _, e := range listing {
		if strings.EqualFold(e.Name, name) {
			return true
		}
	}
	return false
}

func contains(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// Package readme synthesizes a README document from repository metadata, a
// detected technology profile, and the root file listing. Synthesis is a
// total function: missing descriptions, unknown licenses, and empty profiles
// produce a degraded but complete document, never an error.
package readme

import (
	"strings"

	"github.com/ternarybob/gitscribe/internal/models"
)

// Synthesize renders the document sections in their fixed canonical order,
// drops the ones with nothing to say, and joins the rest with a blank line.
// Section inclusion depends only on the inputs, never on prior section
// output, and the order is never re-sorted by content.
func Synthesize(meta *models.RepoMetadata, profile *models.TechProfile, listing []models.FileEntry) string {
	sections := []string{
		headerSection(meta),
		badgesSection(meta, profile),
		descriptionSection(meta, profile),
		tableOfContentsSection(profile, listing),
		featuresSection(profile, listing),
		technologyStackSection(profile),
		installationSection(listing),
		usageSection(listing),
		projectStructureSection(meta, listing),
		apiDocumentationSection(profile, listing),
		scriptsSection(listing),
		contributingSection(),
		licenseSection(meta),
		contactSection(meta),
	}

	nonEmpty := sections[:0]
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	return strings.Join(nonEmpty, "\n\n") + "\n"
}

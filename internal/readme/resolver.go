package readme

import "strings"

// Placeholder tokens embedded during synthesis. Synthesis cannot know the
// final confirmed clone URL form, so installation and structure templates
// carry these literals until the caller resolves them. Neither token may
// survive into resolved output.
const (
	PlaceholderRepoURL  = "REPO_URL"
	PlaceholderRepoName = "REPO_NAME"
)

// Resolve rewrites every occurrence of the two placeholder tokens with the
// caller-supplied clone URL and repository name.
func Resolve(document, cloneURL, repoName string) string {
	resolved := strings.ReplaceAll(document, PlaceholderRepoURL, cloneURL)
	return strings.ReplaceAll(resolved, PlaceholderRepoName, repoName)
}

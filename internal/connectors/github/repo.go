package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/ternarybob/gitscribe/internal/models"
)

// FetchMetadata returns repository metadata for owner/repo.
func (c *Connector) FetchMetadata(ctx context.Context, owner, repo string) (*models.RepoMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	repository, resp, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, fmt.Errorf("%w: %s/%s", models.ErrRepositoryNotFound, owner, repo)
		}
		return nil, fmt.Errorf("%w: failed to fetch repository: %v", models.ErrUpstream, err)
	}

	meta := &models.RepoMetadata{
		FullName:        repository.GetFullName(),
		Name:            repository.GetName(),
		Description:     repository.GetDescription(),
		HTMLURL:         repository.GetHTMLURL(),
		CloneURL:        repository.GetCloneURL(),
		DefaultBranch:   repository.GetDefaultBranch(),
		PrimaryLanguage: repository.GetLanguage(),
		CreatedAt:       repository.GetCreatedAt().Time,
		UpdatedAt:       repository.GetUpdatedAt().Time,
		Stars:           repository.GetStargazersCount(),
		Forks:           repository.GetForksCount(),
		OpenIssues:      repository.GetOpenIssuesCount(),
		SizeKB:          repository.GetSize(),
	}

	if license := repository.GetLicense(); license != nil {
		meta.License = &models.License{
			Name:   license.GetName(),
			SPDXID: license.GetSPDXID(),
		}
	}

	return meta, nil
}

// FetchListing returns the immediate children of path (repository root when
// path is empty) as a flat, non-recursive listing.
func (c *Connector) FetchListing(ctx context.Context, owner, repo, path string) ([]models.FileEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	fileContent, dirContents, resp, err := c.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, fmt.Errorf("%w: %s/%s", models.ErrRepositoryNotFound, owner, repo)
		}
		return nil, fmt.Errorf("%w: failed to list contents: %v", models.ErrUpstream, err)
	}

	// A single-file response means path named a file, not a directory.
	if fileContent != nil {
		return []models.FileEntry{entryFromContent(fileContent)}, nil
	}

	entries := make([]models.FileEntry, 0, len(dirContents))
	for _, content := range dirContents {
		entries = append(entries, entryFromContent(content))
	}
	return entries, nil
}

// FetchLanguages returns the byte-count-per-language map.
func (c *Connector) FetchLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	languages, resp, err := c.client.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, fmt.Errorf("%w: %s/%s", models.ErrRepositoryNotFound, owner, repo)
		}
		return nil, fmt.Errorf("%w: failed to fetch languages: %v", models.ErrUpstream, err)
	}

	return languages, nil
}

// FetchFileContent returns the decoded text content of a file. Failures
// resolve to the empty string: a missing or unreadable manifest degrades
// detection quality but never aborts a generation pass.
func (c *Connector) FetchFileContent(ctx context.Context, owner, repo, path string) string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return ""
	}

	fileContent, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil || fileContent == nil {
		c.logger.Debug().
			Str("path", path).
			Str("repo", owner+"/"+repo).
			Msg("File content unavailable, continuing without it")
		return ""
	}

	content, err := fileContent.GetContent()
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("path", path).
			Msg("Failed to decode file content")
		return ""
	}

	return content
}

func entryFromContent(content *github.RepositoryContent) models.FileEntry {
	kind := models.FileKindFile
	if strings.EqualFold(content.GetType(), "dir") {
		kind = models.FileKindDirectory
	}
	return models.FileEntry{
		Name: content.GetName(),
		Path: content.GetPath(),
		Kind: kind,
		Size: content.GetSize(),
	}
}

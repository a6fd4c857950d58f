package interfaces

import (
	"context"

	"github.com/ternarybob/gitscribe/internal/models"
)

// RepositorySource fetches repository data from a hosting API. The core
// pipeline consumes it as already-resolved values; only this layer may fail
// the overall generation pass.
type RepositorySource interface {
	// FetchMetadata returns repository metadata, or
	// models.ErrRepositoryNotFound / models.ErrUpstream on failure.
	FetchMetadata(ctx context.Context, owner, repo string) (*models.RepoMetadata, error)

	// FetchListing returns the flat listing of the given path (repository
	// root when path is empty). Non-recursive.
	FetchListing(ctx context.Context, owner, repo, path string) ([]models.FileEntry, error)

	// FetchLanguages returns the byte-count-per-language map.
	FetchLanguages(ctx context.Context, owner, repo string) (map[string]int, error)

	// FetchFileContent returns the decoded text content of a file. On any
	// failure (missing file, decode error) it returns the empty string:
	// manifest content is an optional detection signal, never a hard
	// dependency.
	FetchFileContent(ctx context.Context, owner, repo, path string) string
}

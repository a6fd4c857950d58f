// Package generator orchestrates the README generation pipeline: parse the
// repository reference, fetch metadata/listing/languages, run technology
// detection, synthesize the document, and resolve placeholders.
package generator

import (
	"context"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/common"
	githubconn "github.com/ternarybob/gitscribe/internal/connectors/github"
	"github.com/ternarybob/gitscribe/internal/detect"
	"github.com/ternarybob/gitscribe/internal/interfaces"
	"github.com/ternarybob/gitscribe/internal/models"
	"github.com/ternarybob/gitscribe/internal/readme"
)

// Service runs generation passes. Every pass is stateless and re-entrant;
// concurrent passes for different repositories never interact.
type Service struct {
	source   interfaces.RepositorySource
	detector *detect.Detector
	storage  interfaces.AnalysisStorage
	logger   arbor.ILogger
}

// NewService creates a generator service. Storage may be nil for one-shot
// CLI use, in which case results are not persisted.
func NewService(source interfaces.RepositorySource, storage interfaces.AnalysisStorage, logger arbor.ILogger) *Service {
	return &Service{
		source:   source,
		detector: detect.New(logger),
		storage:  storage,
		logger:   logger,
	}
}

// Generate runs one full pass for the given repository reference and returns
// the stored analysis bundle. Only reference parsing and the three upstream
// fetches can fail; once those inputs are in hand, detection and synthesis
// always produce a document.
func (s *Service) Generate(ctx context.Context, ref string) (*models.Analysis, error) {
	owner, repo, err := githubconn.ParseRepoRef(ref)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	s.logger.Info().
		Str("owner", owner).
		Str("repo", repo).
		Msg("Starting README generation")

	// Metadata first: it confirms the repository exists before the
	// remaining fetches are issued.
	meta, err := s.source.FetchMetadata(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	// Listing and language map are independent; fetch them concurrently.
	var (
		wg          sync.WaitGroup
		listing     []models.FileEntry
		languages   map[string]int
		listingErr  error
		languageErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		listing, listingErr = s.source.FetchListing(ctx, owner, repo, "")
	}()
	go func() {
		defer wg.Done()
		languages, languageErr = s.source.FetchLanguages(ctx, owner, repo)
	}()
	wg.Wait()

	if listingErr != nil {
		return nil, listingErr
	}
	if languageErr != nil {
		return nil, languageErr
	}

	fetcher := func(ctx context.Context, path string) string {
		return s.source.FetchFileContent(ctx, owner, repo, path)
	}

	profile := s.detector.Detect(ctx, listing, languages, fetcher)

	document := readme.Synthesize(meta, profile, listing)
	document = readme.Resolve(document, meta.CloneURL, meta.Name)

	analysis := &models.Analysis{
		ID:        common.NewAnalysisID(),
		Owner:     owner,
		Repo:      repo,
		Metadata:  meta,
		Listing:   listing,
		Profile:   profile,
		Markdown:  document,
		CreatedAt: time.Now(),
	}

	if s.storage != nil {
		if err := s.storage.SaveAnalysis(analysis); err != nil {
			// Persistence is best-effort: the caller still gets the
			// generated document.
			s.logger.Warn().Err(err).Str("id", analysis.ID).Msg("Failed to persist analysis")
		}
	}

	s.logger.Info().
		Str("id", analysis.ID).
		Str("repo", meta.FullName).
		Str("duration", time.Since(started).String()).
		Msg("README generation complete")

	return analysis, nil
}

// Package github implements interfaces.RepositorySource against the GitHub
// REST API.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/interfaces"
	"github.com/ternarybob/gitscribe/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// DefaultRateLimit is the request budget per second against the GitHub
	// API. Unauthenticated clients get a much smaller upstream quota, so
	// the limiter is deliberately conservative.
	DefaultRateLimit = 5

	// DefaultRequestTimeout bounds each individual API call.
	DefaultRequestTimeout = 30 * time.Second
)

// Connector is a rate-limited GitHub API client.
type Connector struct {
	client  *github.Client
	limiter *rate.Limiter
	timeout time.Duration
	logger  arbor.ILogger
}

// Options configures a Connector.
type Options struct {
	Token          string  // Optional personal access token
	RateLimit      float64 // Requests per second; 0 uses DefaultRateLimit
	RequestTimeout time.Duration
}

// NewConnector creates a GitHub connector. An empty token yields an
// unauthenticated client, which works for public repositories.
func NewConnector(opts Options, logger arbor.ILogger) *Connector {
	var client *github.Client
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	} else {
		client = github.NewClient(nil)
	}

	limit := opts.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Connector{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(limit), 1),
		timeout: timeout,
		logger:  logger,
	}
}

// TestConnection verifies API reachability (and token validity when one is
// configured) by requesting the rate limit status.
func (c *Connector) TestConnection(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	_, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return fmt.Errorf("github connection test failed: %w", err)
	}
	return nil
}

// ParseRepoRef parses a repository reference into owner and repo. Accepted
// forms: a github.com web or clone URL ending in /owner/repo[.git][/], or a
// bare owner/repo pair.
func ParseRepoRef(input string) (owner, repo string, err error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", "", models.ErrInvalidRepositoryReference
	}

	// URL form: take the first two path segments.
	if strings.Contains(trimmed, "://") {
		parsed, parseErr := url.Parse(trimmed)
		if parseErr != nil {
			return "", "", fmt.Errorf("%w: %s", models.ErrInvalidRepositoryReference, input)
		}
		trimmed = strings.Trim(parsed.Path, "/")
	} else if at := strings.Index(trimmed, "github.com/"); at >= 0 {
		// Scheme-less URL such as "github.com/owner/repo".
		trimmed = strings.Trim(trimmed[at+len("github.com/"):], "/")
	}

	parts := strings.Split(strings.Trim(trimmed, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %s", models.ErrInvalidRepositoryReference, input)
	}

	owner = parts[0]
	repo = strings.TrimSuffix(parts[1], ".git")
	if repo == "" {
		return "", "", fmt.Errorf("%w: %s", models.ErrInvalidRepositoryReference, input)
	}
	return owner, repo, nil
}

// Ensure interface compliance
var _ interfaces.RepositorySource = (*Connector)(nil)

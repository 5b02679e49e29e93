// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying client from the business logic.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/lang-card/internal/domain"
)

// userAgent identifies this tool in API requests.
const userAgent = "lang-card-generator"

// reposPerPage is the page size used when listing repositories.
const reposPerPage = 100

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// ListRepositories returns every repository of the given account,
	// fully materialized across all pages.
	ListRepositories(ctx context.Context, username string) ([]domain.Repository, error)
	// FetchLanguages returns a single repository's language breakdown,
	// a flat mapping from language name to byte count.
	FetchLanguages(ctx context.Context, languagesURL string) (map[string]int64, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client, which is a supported mode
// subject to the API's lower anonymous rate limits.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		}
	}

	client := github.NewClient(&http.Client{Transport: transport})
	client.UserAgent = userAgent
	return &GitHubGateway{
		client: client,
		logger: logger,
	}, nil
}

// ListRepositories pages through the account's repositories, most recently
// updated first, until a page comes back empty.
func (g *GitHubGateway) ListRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Debug("fetching repository list", "username", username)

	var repositories []domain.Repository
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: reposPerPage, Page: 1},
	}
	for {
		page, _, err := g.client.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
		}
		if len(page) == 0 {
			break
		}
		for _, repo := range page {
			repositories = append(repositories, domain.Repository{
				Name:         repo.GetName(),
				Fork:         repo.GetFork(),
				Archived:     repo.GetArchived(),
				Disabled:     repo.GetDisabled(),
				LanguagesURL: repo.GetLanguagesURL(),
			})
		}
		opts.Page++
		g.logger.Debug("fetching next page of repositories", "page", opts.Page)
	}

	g.logger.Debug("completed fetching repository list", "count", len(repositories))
	return repositories, nil
}

// FetchLanguages requests the language breakdown at the given URL. The URL
// comes straight from the repository listing, so it is requested as-is.
func (g *GitHubGateway) FetchLanguages(ctx context.Context, languagesURL string) (map[string]int64, error) {
	req, err := g.client.NewRequest(http.MethodGet, languagesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build languages request: %w", err)
	}

	languages := make(map[string]int64)
	if _, err := g.client.Do(ctx, req, &languages); err != nil {
		return nil, fmt.Errorf("failed to fetch languages from %s: %w", languagesURL, err)
	}
	return languages, nil
}

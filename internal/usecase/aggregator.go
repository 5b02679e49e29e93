// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/naka-gawa/lang-card/internal/domain"
	"github.com/naka-gawa/lang-card/internal/gateway"
)

// Aggregator is the use case for collecting account-wide language totals.
// It orchestrates the repository listing and per-repository language fetches.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// CollectLanguageTotals sums per-language byte counts across all of the
// account's countable repositories. Forked, archived and disabled
// repositories are excluded. A failed language fetch drops that single
// repository's contribution and the run continues; a failed repository
// listing aborts the run.
func (a *Aggregator) CollectLanguageTotals(ctx context.Context, username string) (domain.LanguageTotals, error) {
	repositories, err := a.fetcher.ListRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	totals := make(domain.LanguageTotals)
	for _, repo := range repositories {
		if !repo.Countable() {
			a.logger.Debug("skipping excluded repository", "repo", repo.Name)
			continue
		}
		languages, err := a.fetcher.FetchLanguages(ctx, repo.LanguagesURL)
		if err != nil {
			a.logger.Debug("skipping repository after failed language fetch", "repo", repo.Name, "err", err)
			continue
		}
		for language, size := range languages {
			totals.Add(language, size)
		}
	}

	a.logger.Debug("aggregation complete", "languages", len(totals), "totalBytes", totals.TotalBytes())
	return totals, nil
}

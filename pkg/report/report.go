package report

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"tftstats/pkg/aggregator"
	"tftstats/pkg/cache"
	"tftstats/pkg/config"
	"tftstats/pkg/loader"
	"tftstats/pkg/messages"
	"tftstats/pkg/repositories"
	queuevalues "tftstats/pkg/riotvalues/queue"
	"tftstats/pkg/tft"

	"golang.org/x/sync/errgroup"
)

// Logger receives the diagnostics of a run.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Deps is the dependency list of a report run.
// The cache is optional.
type Deps struct {
	Repository repositories.AggregateRepository
	Cache      cache.AggregateCache
	Logger     Logger
}

// Summary counts what a run did.
type Summary struct {
	Scope        aggregator.Scope
	Files        int
	Parsed       int
	Skipped      int
	Filtered     int
	Duplicates   int
	Units        int
	SkippedUnits int
	Champions    int
	Items        int
}

// Run executes a full report pass over the match directory.
// Unreadable or malformed matches are logged and skipped, persistence failures abort the run.
func Run(ctx context.Context, cfg config.ReportConfiguration, deps Deps) (*Summary, error) {
	if deps.Repository == nil || deps.Logger == nil {
		return nil, errors.New("report run needs a repository and a logger")
	}

	scope, err := aggregator.ParseScope(cfg.Scope)
	if err != nil {
		return nil, err
	}

	files, err := loader.ListFiles(cfg.MatchDir)
	if err != nil {
		return nil, err
	}

	batch := aggregator.NewBatch(aggregator.BatchOptions{
		Scope:           scope,
		ExpectedMatches: uint(max(cfg.ExpectedMatches, len(files), 1)),
		Logger:          deps.Logger,
	})

	// Continue the stored counts.
	if cfg.Accumulate {
		if err := seedBatch(ctx, batch, deps.Repository); err != nil {
			return nil, err
		}
	}

	parser := tft.NewParser(tft.ParserConfig{Logger: deps.Logger})

	var parsed, skipped, filtered atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))

	for _, file := range files {
		g.Go(func() error {
			data, err := loader.LoadFile(gctx, file)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				deps.Logger.Errorf("%v", err)
				skipped.Add(1)
				return nil
			}

			match, err := parser.ParseMatch(data)
			if err != nil {
				deps.Logger.Errorf(messages.CouldNotParse+": %v", filepath.Base(file), err)
				skipped.Add(1)
				return nil
			}
			parsed.Add(1)

			if cfg.RankedOnly && !match.IsRanked() {
				deps.Logger.Infof("Skipping %s, queue %s", match.MatchID(), queuevalues.QueueName(match.Info.QueueID))
				filtered.Add(1)
				return nil
			}

			batch.AddMatch(match)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	export, err := batch.Export()
	if err != nil {
		return nil, err
	}

	if err := deps.Repository.SaveExport(ctx, export); err != nil {
		return nil, fmt.Errorf("couldn't save the %s export: %w", scope, err)
	}

	// The cache is rebuilt from the database by the api, a failure here only costs latency.
	if deps.Cache != nil {
		if err := deps.Cache.SetExport(ctx, export); err != nil {
			deps.Logger.Errorf("Failed to cache the %s export: %v", scope, err)
		}
	}

	stats := batch.Stats()
	summary := &Summary{
		Scope:        scope,
		Files:        len(files),
		Parsed:       int(parsed.Load()),
		Skipped:      int(skipped.Load()),
		Filtered:     int(filtered.Load()),
		Duplicates:   stats.Duplicates,
		Units:        stats.Units,
		SkippedUnits: stats.SkippedUnits,
		Champions:    len(export.Champions),
		Items:        len(export.Items),
	}

	deps.Logger.Infof(
		"Report %s finished: %d files, %d parsed, %d skipped, %d filtered, %d duplicates, %d champions, %d items",
		scope, summary.Files, summary.Parsed, summary.Skipped, summary.Filtered, summary.Duplicates,
		summary.Champions, summary.Items,
	)

	return summary, nil
}

// Seed the batch with the stored aggregates of its scope.
func seedBatch(ctx context.Context, batch *aggregator.Batch, repository repositories.AggregateRepository) error {
	champions, err := repository.GetChampions(ctx, batch.Scope())
	if err != nil {
		return fmt.Errorf("couldn't load the stored champions: %w", err)
	}

	items, err := repository.GetItems(ctx, batch.Scope())
	if err != nil {
		return fmt.Errorf("couldn't load the stored items: %w", err)
	}

	return batch.Seed(champions, items)
}

// Package pipeline drives the paginated market fetch and the conversion of
// raw markets into registry contract tags.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanyoungcy/venustags/internal/domain"
	"github.com/alanyoungcy/venustags/internal/platform/subgraph"
)

// MarketFetcher retrieves one page of markets past the given block watermark.
type MarketFetcher interface {
	FetchMarketsPage(ctx context.Context, lastBlock int64) ([]domain.RawMarket, error)
}

// Collector walks a chain's markets subgraph page by page and accumulates
// registry tags for the accepted markets.
type Collector struct {
	fetcher MarketFetcher
	chainID string
	logger  *slog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher MarketFetcher, chainID string, logger *slog.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		chainID: chainID,
		logger:  logger,
	}
}

// Run fetches every market on the chain, starting from block watermark 0,
// and returns the contract tags for accepted markets in fetch order. A page
// shorter than the page size is terminal. Any fetch failure aborts the whole
// run; no partial result is returned.
func (c *Collector) Run(ctx context.Context) ([]domain.ContractTag, error) {
	var (
		tags      []domain.ContractTag
		lastBlock int64
	)

	for page := 1; ; page++ {
		markets, err := c.fetcher.FetchMarketsPage(ctx, lastBlock)
		if err != nil {
			return nil, fmt.Errorf("fetching markets page %d (after block %d): %w", page, lastBlock, err)
		}

		for _, m := range markets {
			if tag, ok := transformMarket(c.chainID, m, c.logger); ok {
				tags = append(tags, tag)
			}
		}

		c.logger.Info("fetched markets page",
			slog.Int("page", page),
			slog.Int("markets", len(markets)),
			slog.Int64("last_block", lastBlock),
		)

		if len(markets) < subgraph.PageSize {
			return tags, nil
		}

		// The watermark must strictly advance on every full page; a page
		// that fails to do so would refetch the same records forever.
		next := maxAccrualBlock(markets)
		if next <= lastBlock {
			return nil, fmt.Errorf("markets page %d did not advance past block %d: non-monotonic page from subgraph", page, lastBlock)
		}
		lastBlock = next
	}
}

// maxAccrualBlock returns the highest accrual block number in the page.
func maxAccrualBlock(markets []domain.RawMarket) int64 {
	var max int64
	for _, m := range markets {
		if m.AccrualBlockNumber > max {
			max = m.AccrualBlockNumber
		}
	}
	return max
}

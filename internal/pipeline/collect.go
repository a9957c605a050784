package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alanyoungcy/venustags/internal/config"
	"github.com/alanyoungcy/venustags/internal/domain"
	"github.com/alanyoungcy/venustags/internal/platform/subgraph"
)

// Collect resolves the subgraph endpoint for chainID, then fetches and
// transforms every market on that chain in one sequential pass. This is the
// entry point consumed by the registry tooling.
func Collect(ctx context.Context, chainID, apiKey string, timeout time.Duration, logger *slog.Logger) ([]domain.ContractTag, error) {
	url, err := config.ResolveSubgraphURL(chainID, apiKey)
	if err != nil {
		return nil, fmt.Errorf("resolving subgraph endpoint: %w", err)
	}

	client := subgraph.NewClient(url, timeout, logger)
	return NewCollector(client, chainID, logger).Run(ctx)
}

package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/alanyoungcy/venustags/internal/domain"
	"github.com/alanyoungcy/venustags/internal/sanitize"
)

const (
	projectName = "Venus v4"
	websiteLink = "https://venus.io/"

	// maxNameTagLen is the registry's limit on a public name tag.
	maxNameTagLen = 44
)

// transformMarket converts one raw market into a registry tag. It returns
// false when the market's name or symbol is not acceptable tag text; every
// failing field is logged with its own reason.
func transformMarket(chainID string, m domain.RawMarket, logger *slog.Logger) (domain.ContractTag, bool) {
	ok := true
	if !sanitize.IsAcceptable(m.Name) {
		logger.Warn("skipping market: invalid name",
			slog.String("market", m.ID),
			slog.String("name", m.Name),
		)
		ok = false
	}
	if !sanitize.IsAcceptable(m.Symbol) {
		logger.Warn("skipping market: invalid symbol",
			slog.String("market", m.ID),
			slog.String("symbol", m.Symbol),
		)
		ok = false
	}
	if !ok {
		return domain.ContractTag{}, false
	}

	return domain.ContractTag{
		ContractAddress: fmt.Sprintf("eip155:%s:%s", chainID, m.ID),
		PublicNameTag:   sanitize.Truncate(m.Symbol+" Token", maxNameTagLen),
		ProjectName:     projectName,
		WebsiteLink:     websiteLink,
		// The note carries the untruncated market name.
		PublicNote: fmt.Sprintf("%s's official %s token (Isolated)", projectName, m.Name),
	}, true
}

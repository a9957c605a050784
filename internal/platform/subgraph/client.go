// Package subgraph is a GraphQL client for the indexing service that backs
// the isolated-pools lending markets. It fetches one page of market records
// per call, keyed by an accrual-block watermark.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alanyoungcy/venustags/internal/domain"
)

// PageSize is the number of markets requested per page. A response holding
// exactly PageSize records means more pages may follow.
const PageSize = 1000

const contentTypeJSON = "application/json"

// Client is a GraphQL client for one chain's markets subgraph.
type Client struct {
	graphqlURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new markets subgraph client. graphqlURL is the fully
// resolved gateway endpoint, credential included.
func NewClient(graphqlURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		graphqlURL: graphqlURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// graphqlRequest is the standard GraphQL request envelope.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse is the standard GraphQL response envelope.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// StatusError reports a non-success HTTP status from the subgraph endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

// marketsQuery pages through markets ordered by accrual block number. The
// strict greater-than filter makes the previous page's maximum block a safe
// resume point.
var marketsQuery = fmt.Sprintf(`
	query Markets($lastBlock: Int!) {
		markets(
			first: %d
			orderBy: accrualBlockNumber
			orderDirection: asc
			where: { accrualBlockNumber_gt: $lastBlock }
		) {
			id
			name
			symbol
			accrualBlockNumber
		}
	}
`, PageSize)

// rawMarketWire mirrors one market as serialized by the subgraph. The
// accrual block arrives as a JSON number or, for BigInt schemas, a string;
// json.Number covers both.
type rawMarketWire struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Symbol             string      `json:"symbol"`
	AccrualBlockNumber json.Number `json:"accrualBlockNumber"`
}

// FetchMarketsPage fetches up to PageSize markets whose accrual block number
// is strictly greater than lastBlock, in ascending block order. The returned
// slice may be empty. Any transport or service-level failure is returned as
// an error; service-reported errors are each logged before the aggregate
// error is returned.
func (c *Client) FetchMarketsPage(ctx context.Context, lastBlock int64) ([]domain.RawMarket, error) {
	reqBody := graphqlRequest{
		Query: marketsQuery,
		Variables: map[string]any{
			"lastBlock": lastBlock,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("subgraph: marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("subgraph: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("subgraph: http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("subgraph: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("subgraph: %w", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))})
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		return nil, fmt.Errorf("subgraph: decode graphql response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		msgs := make([]string, 0, len(gqlResp.Errors))
		for _, e := range gqlResp.Errors {
			msg := e.Message
			if msg == "" {
				msg = "unknown error"
			}
			c.logger.Error("subgraph reported error", slog.String("message", msg))
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("subgraph: %d service error(s): %s", len(msgs), strings.Join(msgs, "; "))
	}

	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		return nil, fmt.Errorf("subgraph: %w", domain.ErrNoData)
	}

	var payload struct {
		Markets []rawMarketWire `json:"markets"`
	}
	if err := json.Unmarshal(gqlResp.Data, &payload); err != nil {
		return nil, fmt.Errorf("subgraph: %w: malformed data payload: %v", domain.ErrNoData, err)
	}
	if payload.Markets == nil {
		return nil, fmt.Errorf("subgraph: %w: missing markets field", domain.ErrNoData)
	}

	markets := make([]domain.RawMarket, 0, len(payload.Markets))
	for _, m := range payload.Markets {
		block, err := m.AccrualBlockNumber.Int64()
		if err != nil {
			return nil, fmt.Errorf("subgraph: market %s: decode accrualBlockNumber %q: %w", m.ID, m.AccrualBlockNumber, err)
		}
		markets = append(markets, domain.RawMarket{
			ID:                 m.ID,
			Name:               m.Name,
			Symbol:             m.Symbol,
			AccrualBlockNumber: block,
		})
	}

	return markets, nil
}

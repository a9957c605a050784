package pipeline

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/venustags/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTransformMarket_Accepted(t *testing.T) {
	tag, ok := transformMarket("1", domain.RawMarket{
		ID:     "0xabc",
		Name:   "Venus USDC",
		Symbol: "vUSDC",
	}, discardLogger())

	require.True(t, ok)
	assert.Equal(t, domain.ContractTag{
		ContractAddress: "eip155:1:0xabc",
		PublicNameTag:   "vUSDC Token",
		ProjectName:     "Venus v4",
		WebsiteLink:     "https://venus.io/",
		PublicNote:      "Venus v4's official Venus USDC token (Isolated)",
	}, tag)
}

func TestTransformMarket_LongSymbolTruncated(t *testing.T) {
	longSymbol := strings.Repeat("v", 60)

	tag, ok := transformMarket("56", domain.RawMarket{
		ID:     "0xdef",
		Name:   "Venus Something",
		Symbol: longSymbol,
	}, discardLogger())

	require.True(t, ok)
	assert.LessOrEqual(t, len(tag.PublicNameTag), 44)
	assert.True(t, strings.HasSuffix(tag.PublicNameTag, "..."))
	// The note keeps the untruncated name.
	assert.Contains(t, tag.PublicNote, "Venus Something")
}

func TestTransformMarket_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		market domain.RawMarket
	}{
		{"empty name", domain.RawMarket{ID: "0x1", Name: "", Symbol: "vUSDC"}},
		{"whitespace name", domain.RawMarket{ID: "0x2", Name: "   ", Symbol: "vUSDC"}},
		{"html in name", domain.RawMarket{ID: "0x3", Name: "<b>Venus</b>", Symbol: "vUSDC"}},
		{"empty symbol", domain.RawMarket{ID: "0x4", Name: "Venus USDC", Symbol: ""}},
		{"html in symbol", domain.RawMarket{ID: "0x5", Name: "Venus USDC", Symbol: "<i>v</i>"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := transformMarket("56", tc.market, discardLogger())
			assert.False(t, ok)
		})
	}
}

func TestTransformMarket_BothFieldsReported(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	_, ok := transformMarket("56", domain.RawMarket{
		ID:     "0xbad",
		Name:   "",
		Symbol: "<script>",
	}, logger)

	require.False(t, ok)

	// Both failing fields get their own log line.
	logs := logBuf.String()
	assert.Contains(t, logs, "invalid name")
	assert.Contains(t, logs, "invalid symbol")
}

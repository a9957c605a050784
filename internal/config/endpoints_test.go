package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSubgraphURL_AllSupportedChains(t *testing.T) {
	const key = "test-gateway-key"

	for _, chainID := range SupportedChainIDs() {
		url, err := ResolveSubgraphURL(chainID, key)
		require.NoError(t, err, "chain %s", chainID)
		assert.Contains(t, url, key, "chain %s", chainID)
		assert.NotContains(t, url, "{api-key}", "chain %s", chainID)
		assert.True(t, strings.HasPrefix(url, "https://"), "chain %s", chainID)
	}
}

func TestResolveSubgraphURL_UnsupportedChain(t *testing.T) {
	_, err := ResolveSubgraphURL("999", "key")
	require.Error(t, err)

	// The error must enumerate every supported chain id.
	for _, chainID := range SupportedChainIDs() {
		assert.Contains(t, err.Error(), chainID)
	}
}

func TestResolveSubgraphURL_MalformedChain(t *testing.T) {
	for _, chainID := range []string{"mainnet", "", "-1", "0x38"} {
		_, err := ResolveSubgraphURL(chainID, "key")
		assert.Error(t, err, "chain %q", chainID)
	}
}

func TestSupportedChainIDs_SortedNumerically(t *testing.T) {
	ids := SupportedChainIDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, []string{"1", "10", "56", "204", "324", "8453", "42161"}, ids)
}

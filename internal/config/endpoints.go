package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// apiKeyPlaceholder is the token in each endpoint template that is replaced
// by the caller's gateway key.
const apiKeyPlaceholder = "{api-key}"

// subgraphEndpoints maps an EVM chain ID to the isolated-pools markets
// subgraph endpoint for that chain, as a gateway URL template.
var subgraphEndpoints = map[string]string{
	"1":     "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/Htf6Hh1qgkvxQxqbcv4Jp5AatsaiY5dNLVcySkpCaxQ8",
	"10":    "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/FqsJcWmnTkkYLMWouVzkAlosTP1vdXdyDkKZbou2EBrn",
	"56":    "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/H2a3D64RV4NNxyJqx9jVFQRBpQRzD6zNZjLDotgdCrTm",
	"204":   "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/Bga9jOQsMkVPcFkkVrCADtAc6YdZ1Rkfuvx8wPMbESJW",
	"324":   "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/8QtkdmFKAKFRhaCKzLmxBbTW9YcrnhCtWoBJcSAPYzLM",
	"8453":  "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/G7UsjTjqrpoMcdN6CTDJLeRmJBVh6xZq9pZ3X9SWoM4m",
	"42161": "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/2cZCRcjwrhAszeZwhhgwJVAQvSpdPmx8YF2XyCBi1Zvq",
}

// SupportedChainIDs returns the chain IDs present in the endpoint table,
// sorted numerically.
func SupportedChainIDs() []string {
	ids := make([]string, 0, len(subgraphEndpoints))
	for id := range subgraphEndpoints {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.ParseUint(ids[i], 10, 64)
		b, _ := strconv.ParseUint(ids[j], 10, 64)
		return a < b
	})
	return ids
}

// ResolveSubgraphURL returns the markets subgraph endpoint for chainID with
// apiKey substituted for the key placeholder. It fails when chainID is not a
// decimal chain identifier or is not in the endpoint table; the error lists
// the supported IDs.
func ResolveSubgraphURL(chainID, apiKey string) (string, error) {
	if _, err := strconv.ParseUint(chainID, 10, 64); err != nil {
		return "", fmt.Errorf("invalid chain id %q: must be a decimal chain id, one of: %s",
			chainID, strings.Join(SupportedChainIDs(), ", "))
	}
	tmpl, ok := subgraphEndpoints[chainID]
	if !ok {
		return "", fmt.Errorf("unsupported chain id %q: supported chain ids are: %s",
			chainID, strings.Join(SupportedChainIDs(), ", "))
	}
	return strings.ReplaceAll(tmpl, apiKeyPlaceholder, apiKey), nil
}

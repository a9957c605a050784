// Package domain defines the core data types shared across the collector.
package domain

// RawMarket is one lending-market record as returned by the markets
// subgraph. It is immutable once decoded.
type RawMarket struct {
	ID                 string
	Name               string
	Symbol             string
	AccrualBlockNumber int64
}

// ContractTag is the registry entry derived from one accepted market. The
// JSON field names match what the downstream registry tooling consumes.
type ContractTag struct {
	ContractAddress string `json:"contractAddress"`
	PublicNameTag   string `json:"publicNameTag"`
	ProjectName     string `json:"projectName"`
	WebsiteLink     string `json:"websiteLink"`
	PublicNote      string `json:"publicNote"`
}

package metadata

import "encoding/json"

// ContractMetadata is collection-level metadata for a single NFT contract.
type ContractMetadata struct {
	ContractAddress string `json:"contractAddress"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	TokenType       string `json:"tokenType"`
}

// Asset is a single NFT as reported by the API. Metadata holds the raw token
// metadata object when present; it is omitted from re-serialized output when
// stripped.
type Asset struct {
	ContractAddress string          `json:"contract"`
	TokenID         string          `json:"tokenId"`
	Supply          string          `json:"supply"`
	Type            string          `json:"type"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
}

// AccountNFTs is a page of NFTs owned by a single account.
type AccountNFTs struct {
	PageNumber int     `json:"pageNumber"`
	Network    string  `json:"network"`
	Total      int     `json:"total"`
	Account    string  `json:"account"`
	Cursor     string  `json:"cursor"`
	Assets     []Asset `json:"assets"`
}

// CollectionNFTs is a page of tokens belonging to a single collection.
type CollectionNFTs struct {
	PageNumber int     `json:"pageNumber"`
	Network    string  `json:"network"`
	Total      int     `json:"total"`
	Cursor     string  `json:"cursor"`
	Assets     []Asset `json:"assets"`
}

// TokenMetadata is the metadata of a single token within a collection.
type TokenMetadata struct {
	ContractAddress string          `json:"contract"`
	TokenID         string          `json:"tokenId"`
	Metadata        json.RawMessage `json:"metadata"`
}

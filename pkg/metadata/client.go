package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// maxBodySize bounds API response bodies. 10 MB.
const maxBodySize = 10 << 20

// Client talks to the NFT metadata REST API. All reads are scoped to the
// chain ID the client was built with; authentication uses a Basic
// authorization header carrying the configured API key.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	apiKey  string
	chainID string
}

// NewClient builds a metadata API client for the given chain. Requests are
// retried with backoff on transient failures; timeout caps each attempt.
func NewClient(baseURL, apiKey, chainID string, timeout time.Duration) *Client {
	hc := retryablehttp.NewClient()
	hc.Logger = nil
	hc.HTTPClient.Timeout = timeout
	hc.RetryWaitMin = 1 * time.Second
	hc.RetryWaitMax = 5 * time.Second
	hc.RetryMax = 2

	return &Client{
		http:    hc,
		baseURL: baseURL,
		apiKey:  apiKey,
		chainID: chainID,
	}
}

// GetContractMetadata returns collection-level metadata (name, symbol, token
// type) for the contract at contractAddress.
func (c *Client) GetContractMetadata(ctx context.Context, contractAddress string) (*ContractMetadata, error) {
	var out ContractMetadata
	path := fmt.Sprintf("/networks/%s/nfts/%s", c.chainID, contractAddress)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNFTs returns the NFTs owned by publicAddress. When includeMetadata is
// false, the per-asset metadata objects are stripped from the result;
// everything else is returned as served by the API.
func (c *Client) GetNFTs(ctx context.Context, publicAddress string, includeMetadata bool) (*AccountNFTs, error) {
	var out AccountNFTs
	path := fmt.Sprintf("/networks/%s/accounts/%s/assets/nfts", c.chainID, publicAddress)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}

	if !includeMetadata {
		for i := range out.Assets {
			out.Assets[i].Metadata = nil
		}
	}
	return &out, nil
}

// GetNFTsForCollection returns every token of the collection at contractAddress.
func (c *Client) GetNFTsForCollection(ctx context.Context, contractAddress string) (*CollectionNFTs, error) {
	var out CollectionNFTs
	path := fmt.Sprintf("/networks/%s/nfts/%s/tokens", c.chainID, contractAddress)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTokenMetadata returns the metadata of a single token.
func (c *Client) GetTokenMetadata(ctx context.Context, contractAddress, tokenID string) (*TokenMetadata, error) {
	var out TokenMetadata
	path := fmt.Sprintf("/networks/%s/nfts/%s/tokens/%s", c.chainID, contractAddress, tokenID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get performs an authenticated GET against the API and decodes the JSON
// response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Basic "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Error("metadata API request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Error("failed to close response body", zap.Error(err))
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		reader := io.LimitReader(resp.Body, maxBodySize)
		if err := json.NewDecoder(reader).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("not allowed to access %s: status %d", path, resp.StatusCode)
	case http.StatusNotFound:
		return fmt.Errorf("resource not found: %s", path)
	default:
		return fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, path)
	}
}

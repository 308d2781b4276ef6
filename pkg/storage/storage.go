package storage

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

// IpfsPrefix is the URI scheme prefix recognized and produced for IPFS content.
const IpfsPrefix = "ipfs://"

// Storage is the interface for backends able to persist token metadata and
// media files and read them back by URI.
type Storage interface {
	StoreMetadata(ctx context.Context, metadata any) (string, error)
	StoreFile(ctx context.Context, content []byte) (string, error)
	ReadFile(ctx context.Context, uri string) ([]byte, error)
}

// Client persists and retrieves NFT content through a Kubo HTTP API node.
type Client struct {
	// HttpApi is a connected Kubo HTTP API client.
	*rpc.HttpApi

	uploader ipfsUploader
	fetcher  ipfsFetcher
}

// NewStorage constructs a Storage helper connected to the IPFS node at
// ipfsURL. If the IPFS client fails to initialize, the error is logged and
// the returned struct may have a nil HttpApi.
func NewStorage(ipfsURL string) *Client {
	var err error
	s := new(Client)
	s.HttpApi, err = NewIPFSClient(ipfsURL)
	if err != nil {
		zap.L().Error(err.Error())
	}
	s.uploader = defaultIPFSUploader{api: s.HttpApi}
	s.fetcher = defaultIPFSFetcher{api: s.HttpApi}
	return s
}

// NewIPFSClient constructs a Kubo HTTP API client pointed at url.
// The client uses a short HTTP timeout suitable for metadata-sized payloads.
func NewIPFSClient(url string) (client *rpc.HttpApi, err error) {
	httpClient := http.Client{
		Timeout: 5 * time.Second,
	}
	client, err = rpc.NewURLApiWithClient(url, &httpClient)
	if err != nil {
		zap.L().Error("Connection failed to IPFS", zap.String("url", url), zap.Error(err))
	}
	return client, err
}

// formatHash removes the URI scheme prefix and any non-alphanumeric
// characters (except '=') from the supplied hash/URI to produce a clean CID
// string suitable for the underlying backend.
func formatHash(hash string) string {
	hash = strings.Replace(hash, IpfsPrefix, "", -1)
	hash = removeSpecialCharacters(hash)
	return hash
}

// removeSpecialCharacters strips all characters except ASCII letters, digits,
// and '=' from pString. Used to sanitize incoming CIDs.
func removeSpecialCharacters(pString string) string {
	reg := regexp.MustCompile("[^a-zA-Z0-9=]")
	return reg.ReplaceAllString(pString, "")
}

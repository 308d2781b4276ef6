package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

// ipfsUploader adds content to IPFS and reports the resulting URI.
type ipfsUploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

// ipfsFetcher fetches content addressed by CID from IPFS.
type ipfsFetcher interface {
	Fetch(ctx context.Context, hash string) ([]byte, error)
}

// StoreMetadata serializes metadata to JSON and pins it to IPFS.
// Returns the IPFS URI (ipfs://<hash>) on success.
func (s *Client) StoreMetadata(ctx context.Context, metadata any) (string, error) {
	jsonData, err := json.Marshal(metadata)
	if err != nil {
		zap.L().Error("error marshaling metadata to json", zap.Error(err))
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return s.StoreFile(ctx, jsonData)
}

// StoreFile pins raw content to IPFS.
// Returns the IPFS URI (ipfs://<hash>) on success.
func (s *Client) StoreFile(ctx context.Context, content []byte) (string, error) {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
	}

	if s.uploader == nil {
		s.uploader = defaultIPFSUploader{api: s.HttpApi}
	}
	return s.uploader.Upload(ctx, content)
}

// ReadFile fetches content identified by the given hash/URI from IPFS.
// The hash/URI is normalized with formatHash before retrieval.
func (s *Client) ReadFile(ctx context.Context, uri string) ([]byte, error) {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
	}

	if s.fetcher == nil {
		s.fetcher = defaultIPFSFetcher{api: s.HttpApi}
	}
	return s.fetcher.Fetch(ctx, formatHash(uri))
}

// defaultIPFSUploader is the production uploader backed by the Kubo HTTP API.
type defaultIPFSUploader struct {
	api *rpc.HttpApi
}

// Upload adds data to IPFS using the 'add' command and returns the
// IPFS URI (ipfs://<hash>).
func (u defaultIPFSUploader) Upload(ctx context.Context, data []byte) (string, error) {
	if u.api == nil {
		return "", fmt.Errorf("ipfs client not configured")
	}

	req := u.api.Request("add")
	req.Body(bytes.NewReader(data))

	resp, err := req.Send(ctx)
	if err != nil {
		zap.L().Error("error uploading to ipfs", zap.Error(err))
		return "", err
	}
	defer func(resp *rpc.Response) {
		err = resp.Close()
		if err != nil {
			zap.L().Error("error closing ipfs response", zap.Error(err))
		}
	}(resp)

	if resp.Error != nil {
		zap.L().Error("ipfs add command returned error", zap.Error(resp.Error))
		return "", resp.Error
	}

	body, err := io.ReadAll(resp.Output)
	if err != nil {
		zap.L().Error("error reading ipfs add response", zap.Error(err))
		return "", err
	}

	var addResp struct {
		Hash string `json:"Hash"`
	}
	if err := json.Unmarshal(body, &addResp); err != nil {
		zap.L().Error("error unmarshaling ipfs add response", zap.Error(err))
		return "", err
	}

	zap.L().Debug("Successfully uploaded to IPFS", zap.String("hash", addResp.Hash))
	return IpfsPrefix + addResp.Hash, nil
}

// defaultIPFSFetcher is the production fetcher backed by the Kubo HTTP API.
type defaultIPFSFetcher struct {
	api *rpc.HttpApi
}

// Fetch retrieves content by CID via `ipfs cat`. The method performs a
// best-effort verification by recomputing a CID from (original CID bytes +
// content) and comparing it with the requested CID; a mismatch is logged
// but does not fail the read.
func (f defaultIPFSFetcher) Fetch(ctx context.Context, hash string) (content []byte, err error) {
	if f.api == nil {
		return nil, fmt.Errorf("ipfs client not configured")
	}

	zap.L().Debug("Hash used to retrieve from IPFS", zap.String("hash", hash))

	cID, err := cid.Parse(hash)
	if err != nil {
		zap.L().Error("error parsing the ipfs hash", zap.String("hash", hash), zap.Error(err))
		return nil, err
	}

	req := f.api.Request("cat", cID.String())
	resp, err := req.Send(ctx)
	if err != nil {
		zap.L().Error("error executing the cat command in ipfs", zap.String("hash", hash), zap.Error(err))
		return
	}
	defer func(resp *rpc.Response) {
		err = resp.Close()
		if err != nil {
			zap.L().Error("error closing response in ipfs", zap.String("hash", hash), zap.Error(err))
		}
	}(resp)

	if resp.Error != nil {
		zap.L().Error("cat command returned error", zap.String("hash", hash), zap.Error(resp.Error))
		return nil, resp.Error
	}
	content, err = io.ReadAll(resp.Output)
	if err != nil {
		zap.L().Error("error reading the content file", zap.String("hash", hash), zap.Error(err))
		return
	}

	// Recompute a CID over (original CID bytes + content) to check equivalence.
	_, c, err := cid.CidFromBytes(append(cID.Bytes(), content...))
	if err != nil {
		zap.L().Error("error generating ipfs hash", zap.String("hash", hash), zap.Error(err))
		return
	}

	if !c.Equals(cID) {
		zap.L().Error("IPFS hash verification failed. Generated hash does not match with expected hash",
			zap.String("expectedHash", hash),
			zap.String("hashFromIPFSContent", c.String()))
	}

	return content, err
}

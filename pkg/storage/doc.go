// Package storage persists NFT content (token metadata documents and media
// files) to IPFS via a Kubo HTTP API node and reads it back by URI.
//
// Uploads return ipfs:// URIs suitable for use as token or contract URIs.
// Reads accept either a bare CID or an ipfs:// URI; retrieved content is
// verified against the requested CID on a best-effort basis.
package storage

/*
Package metadata implements the read-only client for the NFT metadata REST
API. The API indexes deployed collections and serves contract metadata,
per-account NFT listings, per-collection token listings and single-token
metadata without touching the chain.

A Client is scoped to a single network: every request path carries the chain
ID the client was built with. Authentication is a Basic authorization header
with the configured API key. Transient failures are retried with backoff.

The account listing can be requested with or without token metadata; when
metadata is not requested the client strips the metadata objects from the
response and leaves the rest of the payload untouched.
*/
package metadata

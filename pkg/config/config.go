package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all SDK settings required to initialize the signer, the
// contract templates and the metadata API client.
// Use Validate to fill implicit defaults and to check for required fields.
type Config struct {
	// Network selects the target chain (chain ID and human-readable name).
	Network Network `json:"network" yaml:"network"`
	// RPCAddr is the Ethereum RPC/WS endpoint URL (required).
	RPCAddr string `json:"rpc_addr" yaml:"rpc_addr" envconfig:"RPC_ADDR"`
	// PrivateKey is the hex-encoded ECDSA private key used for signed
	// operations (optional if you only do read-only operations).
	PrivateKey string `json:"private_key" yaml:"private_key" envconfig:"PRIVATE_KEY"`
	// APIBaseURL is the base URL of the NFT metadata REST API.
	// Default: https://nft.api.consensys.net
	APIBaseURL string `json:"api_base_url" yaml:"api_base_url" envconfig:"API_BASE_URL"`
	// APIKey authenticates requests against the metadata API. It is sent as a
	// Basic authorization header on every metadata read.
	APIKey string `json:"api_key" yaml:"api_key" envconfig:"API_KEY"`
	// IpfsURL is the HTTP API endpoint of the IPFS node used to store and
	// read metadata payloads. Default: https://ipfs.io:5001
	IpfsURL string `json:"ipfs_url" yaml:"ipfs_url" envconfig:"IPFS_URL"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug" envconfig:"DEBUG"`
	// Timeouts configures per-operation timeouts. See Timeouts.WithDefaults for defaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Network describes a blockchain network (chain ID and name). ChainID is used
// for EIP-155 signing and metadata API routing; Name is informational.
type Network struct {
	ChainID string `json:"chain_id" envconfig:"CHAIN_ID"`
	Name    string `json:"network_name" envconfig:"NETWORK_NAME"`
}

// Sepolia is a predefined Network for Ethereum Sepolia testnet.
var Sepolia = Network{
	ChainID: "11155111",
	Name:    "sepolia",
}

// Main is a predefined Network for Ethereum mainnet.
var Main = Network{
	ChainID: "1",
	Name:    "main",
}

// Polygon is a predefined Network for Polygon PoS mainnet.
var Polygon = Network{
	ChainID: "137",
	Name:    "polygon",
}

// Timeouts controls SDK operation deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	Dial        time.Duration // RPC dial/connect
	ChainRead   time.Duration // eth_call, receipt lookup etc
	ReceiptWait time.Duration // deploy submit + confirmation wait
	APIRequest  time.Duration // metadata API request
	Store       time.Duration // IPFS store/read
}

// Validate normalizes the configuration by applying implicit defaults for
// APIBaseURL, IpfsURL and Network (defaults to Sepolia) and verifies that
// RPCAddr is provided. Returns an error when RPCAddr is empty.
func (c *Config) Validate() error {

	if c.APIBaseURL == "" {
		c.APIBaseURL = "https://nft.api.consensys.net"
	}

	if c.IpfsURL == "" {
		c.IpfsURL = "https://ipfs.io:5001"
	}

	if c.Network.ChainID == "" {
		c.Network = Sepolia
	}

	if c.RPCAddr == "" {
		return errors.New("RPC address is required")
	}

	return nil
}

// FromEnv builds a Config from environment variables prefixed with NFT_SDK
// (e.g. NFT_SDK_RPC_ADDR, NFT_SDK_API_KEY, NFT_SDK_CHAIN_ID) and validates it.
func FromEnv() (*Config, error) {
	var c Config
	if err := envconfig.Process("nft_sdk", &c); err != nil {
		return nil, err
	}
	return &c, c.Validate()
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Dial:        5s
//	ChainRead:   12s
//	ReceiptWait: 90s
//	APIRequest:  10s
//	Store:       60s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Dial == 0 {
		tt.Dial = 5 * time.Second
	}
	if tt.ChainRead == 0 {
		tt.ChainRead = 12 * time.Second
	}
	if tt.ReceiptWait == 0 {
		tt.ReceiptWait = 90 * time.Second
	}
	if tt.APIRequest == 0 {
		tt.APIRequest = 10 * time.Second
	}
	if tt.Store == 0 {
		tt.Store = 60 * time.Second
	}
	return tt
}

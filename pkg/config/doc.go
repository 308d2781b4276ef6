// Package config provides configuration management for the NFT SDK.
//
// This package defines the Config structure that controls all SDK behavior
// including network settings, RPC endpoints, metadata API access,
// authentication, and timeouts.
//
// # Basic Configuration
//
// The minimum required configuration needs an RPC endpoint and network:
//
//	cfg := &config.Config{
//		RPCAddr: "https://sepolia.infura.io/v3/YOUR_PROJECT_ID",
//		Network: config.Sepolia,
//	}
//
// # Network Selection
//
// Three predefined networks are available:
//
//	config.Sepolia - Ethereum Sepolia testnet (ChainID: 11155111)
//	config.Main    - Ethereum mainnet (ChainID: 1)
//	config.Polygon - Polygon PoS mainnet (ChainID: 137)
//
// Custom networks can be defined:
//
//	customNet := config.Network{
//		ChainID: "12345",
//		Name:    "custom-network",
//	}
//
// # Private Key
//
// Private key is required for:
//   - Deploying contracts
//   - Minting and transfers
//   - Role and royalty management
//   - Any blockchain write operation
//
// The key should be hex-encoded without the "0x" prefix:
//
//	cfg.PrivateKey = "abcdef1234567890..." // 64 hex characters
//
// Read-only operations (metadata queries, transaction status) work without it.
//
// # Metadata API
//
// Off-chain reads go through the NFT metadata REST API. The API key is sent
// as a Basic authorization header:
//
//	cfg.APIBaseURL = "https://nft.api.consensys.net" // default
//	cfg.APIKey = "BASE64(PROJECT_ID:PROJECT_SECRET)"
//
// # Environment Loading
//
// Config can be populated from NFT_SDK_-prefixed environment variables:
//
//	cfg, err := config.FromEnv()
//	// reads NFT_SDK_RPC_ADDR, NFT_SDK_PRIVATE_KEY, NFT_SDK_API_KEY,
//	// NFT_SDK_CHAIN_ID, NFT_SDK_IPFS_URL, NFT_SDK_DEBUG
//
// # Timeouts
//
// All operations have configurable timeouts; zero values are replaced with
// sensible defaults via Timeouts.WithDefaults().
//
// # Configuration Validation
//
// Always call Validate() to apply defaults and check required fields:
//
//	cfg := &config.Config{...}
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//
// Validate() will:
//   - Set the default metadata API and IPFS URLs if not provided
//   - Set default network to Sepolia if not provided
//   - Return error if RPCAddr is empty
//
// # Thread Safety
//
// Config instances should be created once and not modified after passing to
// sdk.NewSDK(). The Config is read-only during SDK operations.
//
// # See Also
//
//   - sdk.NewSDK() for SDK initialization
//   - examples/deploy-and-mint for basic configuration
package config

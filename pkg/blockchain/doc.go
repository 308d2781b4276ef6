// Package blockchain provides low-level Ethereum access for the NFT SDK.
//
// The central type is Signer: a connected ethclient.Client paired with the
// target chain ID and an optional ECDSA private key. Contract templates in
// pkg/contracts consume a *Signer by reference for every call; they never
// construct or own one.
//
// # Capabilities
//
// Signer exposes:
//
//   - TransactOpts / CallOpts: transactor and call options bound to the chain
//   - TransactionStatus: receipt status lookup by transaction hash
//   - GetCurrentBlockNumber: latest block height
//   - Close: release the RPC connection
//
// A Signer without a private key supports only read operations; write
// operations fail with an explicit error instead of panicking.
//
// # Validation Helpers
//
// IsValidAddress and IsValidTxHash perform the syntactic checks the SDK runs
// before any network call:
//
//	blockchain.IsValidAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045") // true
//	blockchain.IsValidTxHash("0xabc")                                       // false
//
// # Unit Conversion
//
// EthToWei and WeiToEth convert between ETH and its 18-decimal smallest unit,
// accepting strings, numeric types and decimal.Decimal values:
//
//	wei, _ := blockchain.EthToWei("1.5") // 1500000000000000000
//	eth := blockchain.WeiToEth(wei)      // 1.5
//
// # Thread Safety
//
// Signer state is set once at construction and read-only afterwards; it is
// safe for concurrent use.
package blockchain

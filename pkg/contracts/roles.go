package contracts

import "github.com/ethereum/go-ethereum/common"

// Access-control role identifiers. These must match the deployed contract's
// own role constants byte for byte: a mismatched role silently no-ops on-chain
// instead of failing, so the values are fixed here and checked against their
// keccak256 derivation in tests rather than recomputed per call.
var (
	// DefaultAdminRole is AccessControl's DEFAULT_ADMIN_ROLE (32 zero bytes).
	DefaultAdminRole = common.Hash{}

	// MinterRole is keccak256("MINTER_ROLE").
	MinterRole = common.HexToHash("0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6")
)

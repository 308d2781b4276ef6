package contracts

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// TestMinterRoleMatchesDerivation pins the fixed role constant against its
// on-chain derivation. A drifting constant would silently no-op role
// operations on-chain instead of failing, so the check lives here.
func TestMinterRoleMatchesDerivation(t *testing.T) {
	derived := crypto.Keccak256Hash([]byte("MINTER_ROLE"))
	if MinterRole != derived {
		t.Fatalf("MinterRole constant %s does not match keccak256(\"MINTER_ROLE\") = %s",
			MinterRole.Hex(), derived.Hex())
	}
}

func TestDefaultAdminRoleIsZero(t *testing.T) {
	if DefaultAdminRole != (common.Hash{}) {
		t.Fatalf("DefaultAdminRole must be 32 zero bytes, got %s", DefaultAdminRole.Hex())
	}
}

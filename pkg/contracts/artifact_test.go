package contracts

import "testing"

func TestERC721MintableArtifact(t *testing.T) {
	art, err := ERC721MintableArtifact()
	if err != nil {
		t.Fatalf("ERC721MintableArtifact: %v", err)
	}
	if len(art.Bytecode) == 0 {
		t.Fatal("artifact has no bytecode")
	}
	if len(art.ABI.Constructor.Inputs) != 3 {
		t.Fatalf("constructor should take (name, symbol, contractURI), has %d inputs",
			len(art.ABI.Constructor.Inputs))
	}

	for _, method := range []string{
		"mintWithTokenURI", "safeTransferFrom", "approve", "setApprovalForAll",
		"grantRole", "revokeRole", "renounceRole", "hasRole",
		"setRoyalties", "royaltyInfo", "setContractURI",
		"name", "symbol", "contractURI",
	} {
		if _, ok := art.ABI.Methods[method]; !ok {
			t.Fatalf("ABI is missing method %q", method)
		}
	}

	// Parsed once: repeated calls return the same artifact.
	again, err := ERC721MintableArtifact()
	if err != nil {
		t.Fatalf("second ERC721MintableArtifact: %v", err)
	}
	if again != art {
		t.Fatal("artifact should be parsed exactly once")
	}
}

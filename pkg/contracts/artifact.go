package contracts

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// The ERC721Mintable artifact (ABI + deployable bytecode) is shipped with the
// SDK and treated as immutable configuration. The embedded bytecode is an
// abridged stand-in; regenerate the artifact from the contract build before
// deploying against a live network.
//
//go:embed artifacts/ERC721Mintable.json
var erc721MintableJSON []byte

// Artifact is a parsed contract artifact: the ABI used for calls and the
// bytecode used for deployment.
type Artifact struct {
	ABI      abi.ABI
	Bytecode []byte
}

var (
	erc721ArtifactOnce sync.Once
	erc721Artifact     *Artifact
	erc721ArtifactErr  error
)

// ERC721MintableArtifact returns the embedded ERC721Mintable artifact,
// parsing it on first use.
func ERC721MintableArtifact() (*Artifact, error) {
	erc721ArtifactOnce.Do(func() {
		erc721Artifact, erc721ArtifactErr = parseArtifact(erc721MintableJSON)
	})
	return erc721Artifact, erc721ArtifactErr
}

func parseArtifact(raw []byte) (*Artifact, error) {
	var file struct {
		ABI      json.RawMessage `json:"abi"`
		Bytecode string          `json:"bytecode"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse contract artifact: %w", err)
	}

	parsedABI, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	bytecode := common.FromHex(file.Bytecode)
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("contract artifact has no bytecode")
	}

	return &Artifact{ABI: parsedABI, Bytecode: bytecode}, nil
}

package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/consensys/nft-sdk-go/pkg/blockchain"
	"github.com/consensys/nft-sdk-go/pkg/errs"
)

// Template names a registered contract-wrapper variant.
type Template string

// TemplateERC721Mintable is the mintable ERC-721 template.
const TemplateERC721Mintable Template = "ERC721Mintable"

// Contract is the lifecycle surface shared by every template variant: bind
// once via Deploy or LoadContract, then read the bound address. Operations
// beyond the lifecycle are variant-specific; callers assert to the concrete
// type returned by the factory (e.g. *ERC721Mintable).
type Contract interface {
	Deploy(ctx context.Context, params DeployParams) error
	LoadContract(ctx context.Context, contractAddress string) error
	Address() common.Address
}

// templates maps each registered template name to its constructor. Adding a
// variant means registering a constructor here, not changing dispatch logic.
var templates = map[Template]func(*blockchain.Signer) Contract{
	TemplateERC721Mintable: func(s *blockchain.Signer) Contract { return NewERC721Mintable(s) },
}

// NewTemplate resolves name to a fresh, unbound contract instance carrying
// the given signer reference. Unregistered names fail with
// errs.ErrUnknownTemplate.
func NewTemplate(name Template, signer *blockchain.Signer) (Contract, error) {
	construct, ok := templates[name]
	if !ok {
		return nil, errs.NewUnknownTemplate(string(name))
	}
	return construct(signer), nil
}

package contracts

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/consensys/nft-sdk-go/pkg/errs"
)

func TestNewTemplate(t *testing.T) {
	c, err := NewTemplate(TemplateERC721Mintable, testSigner())
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}

	erc721, ok := c.(*ERC721Mintable)
	if !ok {
		t.Fatalf("unexpected concrete type %T", c)
	}
	if erc721.Address() != (common.Address{}) {
		t.Fatalf("fresh instance must be unbound, got %s", erc721.Address().Hex())
	}
}

func TestNewTemplateReturnsFreshInstances(t *testing.T) {
	s := testSigner()
	a, err := NewTemplate(TemplateERC721Mintable, s)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	b, err := NewTemplate(TemplateERC721Mintable, s)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	if a == b {
		t.Fatal("factory returned the same instance twice")
	}
}

func TestNewTemplateUnknownName(t *testing.T) {
	for _, name := range []Template{"", "ERC20", "erc721mintable"} {
		_, err := NewTemplate(name, testSigner())
		if !errors.Is(err, errs.ErrUnknownTemplate) {
			t.Fatalf("NewTemplate(%q): expected unknown template error, got %v", name, err)
		}
	}
}

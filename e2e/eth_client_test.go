//go:build e2e

package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/consensys/nft-sdk-go/pkg/blockchain"
)

func TestETHClientChainID(t *testing.T) {
	rpc := os.Getenv("ETH_RPC_URL")
	if rpc == "" {
		t.Skip("ETH_RPC_URL not set")
	}
	signer, err := blockchain.InitSigner("11155111", rpc, "", 5*time.Second)
	if err != nil {
		t.Fatalf("InitSigner error: %v", err)
	}
	defer signer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	id, err := signer.Client.ChainID(ctx)
	if err != nil {
		t.Fatalf("ChainID error: %v", err)
	}
	if id == nil {
		t.Fatal("nil chain id")
	}
	block, err := signer.GetCurrentBlockNumber(ctx)
	if err != nil {
		t.Fatalf("GetCurrentBlockNumber error: %v", err)
	}
	if block == nil {
		t.Fatal("nil block number")
	}
}

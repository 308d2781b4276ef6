package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Signer bundles a connected ethclient.Client with the chain ID and the
// (optional) private key used to authorize transactions. Contract templates
// hold a reference to a Signer; they never construct one.
type Signer struct {
	Client *ethclient.Client

	chainID *big.Int
	prvKey  *ecdsa.PrivateKey
	address common.Address
}

// InitSigner dials an Ethereum endpoint and returns a Signer for the given
// chain. privateKey may be empty, in which case only read operations and
// receipt lookups are available.
//
// Parameters:
//   - chainID: decimal chain ID string (e.g. "11155111" for Sepolia).
//   - endpoint: RPC/WS endpoint URL to dial.
//   - privateKey: hex-encoded ECDSA private key, without the "0x" prefix.
//   - dialTimeout: deadline for establishing the connection; <= 0 means no
//     deadline.
//
// Returns a ready-to-use Signer or an error.
func InitSigner(chainID, endpoint, privateKey string, dialTimeout time.Duration) (*Signer, error) {
	id, ok := new(big.Int).SetString(chainID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid chain id %q", chainID)
	}

	ctx := context.Background()
	if dialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
	}

	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		zap.L().Error("Failed to ethdial", zap.Error(err))
		return nil, err
	}

	s := &Signer{
		Client:  client,
		chainID: id,
	}

	if privateKey != "" {
		s.address, s.prvKey, err = ParsePrivateKeyECDSA(privateKey)
		if err != nil {
			zap.L().Warn("write operations disabled: private key parsing failed", zap.Error(err))
		}
	}

	return s, nil
}

// NewSigner builds a Signer from an already-connected client. Used by tests
// and callers that manage their own ethclient.
func NewSigner(client *ethclient.Client, chainID *big.Int, prvKey *ecdsa.PrivateKey) *Signer {
	s := &Signer{
		Client:  client,
		chainID: chainID,
		prvKey:  prvKey,
	}
	if addr := GetAddressFromPrivateKeyECDSA(prvKey); addr != nil {
		s.address = *addr
	}
	return s
}

// Address returns the address derived from the configured private key, or the
// zero address when no key is set.
func (s *Signer) Address() common.Address {
	return s.address
}

// ChainID returns the chain ID the signer was initialized with.
func (s *Signer) ChainID() *big.Int {
	return s.chainID
}

// TransactOpts creates a transactor bound to the signer's chain ID and key.
// The returned TransactOpts can be used to send transactions to the blockchain.
func (s *Signer) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if s.prvKey == nil {
		return nil, fmt.Errorf("private key is required for transactions")
	}

	opts, err := bind.NewKeyedTransactorWithChainID(s.prvKey, s.chainID)
	if err != nil {
		zap.L().Error("failed to create transactor", zap.Error(err))
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// CallOpts creates read-only call options carrying ctx.
func (s *Signer) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// TransactionStatus returns the receipt status (1 success, 0 failure) for the
// given transaction hash. The transaction must already be mined.
func (s *Signer) TransactionStatus(ctx context.Context, txHash common.Hash) (uint64, error) {
	receipt, err := s.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		zap.L().Error("failed to get transaction receipt", zap.String("hash", txHash.Hex()), zap.Error(err))
		return 0, err
	}
	return receipt.Status, nil
}

// GetCurrentBlockNumber returns the latest block number.
func (s *Signer) GetCurrentBlockNumber(ctx context.Context) (*big.Int, error) {
	header, err := s.Client.HeaderByNumber(ctx, nil)
	if err != nil {
		zap.L().Error("failed to get last block number", zap.Error(err))
		return nil, err
	}
	return header.Number, nil
}

// Close releases the underlying RPC connection.
func (s *Signer) Close() {
	if s.Client != nil {
		s.Client.Close()
	}
}

package contracts

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/consensys/nft-sdk-go/pkg/blockchain"
	"github.com/consensys/nft-sdk-go/pkg/errs"
)

// transferGasLimit is the fixed gas ceiling applied to transfer and approval
// transactions instead of estimating, which avoids spurious estimation
// failures on congested nodes.
const transferGasLimit = 6_000_000

// maxRoyaltyFee bounds royalty fees in basis points; 10000 would be 100%.
const maxRoyaltyFee = 10000

// DeployParams carries the constructor arguments for an ERC721Mintable
// deployment. Symbol and ContractURI may be empty; Name may not.
type DeployParams struct {
	Name        string `json:"name" validate:"required"`
	Symbol      string `json:"symbol"`
	ContractURI string `json:"contractURI"`
}

// ERC721Mintable wraps a mintable ERC-721 token contract with role-based
// access control and ERC-2981 royalties. A fresh instance is unbound; exactly
// one Deploy or LoadContract call binds it to an on-chain contract, after
// which every other operation becomes available. The signer is held by
// reference and never constructed here.
type ERC721Mintable struct {
	signer *blockchain.Signer

	mu       sync.Mutex
	address  common.Address
	contract *bind.BoundContract
}

// NewERC721Mintable returns an unbound template instance using the given signer.
func NewERC721Mintable(signer *blockchain.Signer) *ERC721Mintable {
	return &ERC721Mintable{signer: signer}
}

// Address returns the bound contract address, or the zero address while unbound.
func (t *ERC721Mintable) Address() common.Address {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.address
}

// bound returns the live contract binding, or a precondition error tagged
// with location when the instance has not been deployed or loaded yet.
func (t *ERC721Mintable) bound(location string) (*bind.BoundContract, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.contract == nil {
		return nil, errs.NewPrecondition(location, errs.MessageContractNotDeployed)
	}
	return t.contract, nil
}

// Deploy constructs the token contract on-chain and binds this instance to
// it. The instance must be unbound and params.Name must be non-empty. On any
// on-chain failure the instance remains unbound, so the caller can retry with
// a fresh call.
func (t *ERC721Mintable) Deploy(ctx context.Context, params DeployParams) error {
	if t.signer == nil {
		return errs.NewValidation(errs.LocationERC721Deploy, errs.MessageNoSigner)
	}
	if params.Name == "" {
		return errs.NewValidation(errs.LocationERC721Deploy, errs.MessageNoName)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.contract != nil {
		return errs.NewPrecondition(errs.LocationERC721Deploy, errs.MessageContractAlreadySet)
	}

	art, err := ERC721MintableArtifact()
	if err != nil {
		return errs.NewContractExecution(errs.LocationERC721Deploy, err)
	}

	opts, err := t.signer.TransactOpts(ctx)
	if err != nil {
		return errs.NewContractExecution(errs.LocationERC721Deploy, err)
	}

	addr, tx, contract, err := bind.DeployContract(opts, art.ABI, art.Bytecode, t.signer.Client,
		params.Name, params.Symbol, params.ContractURI)
	if err != nil {
		zap.L().Error("contract deployment failed", zap.Error(err))
		return errs.NewContractExecution(errs.LocationERC721Deploy, err)
	}

	zap.L().Debug("contract deployment submitted",
		zap.String("address", addr.Hex()),
		zap.String("tx", tx.Hash().Hex()))

	if _, err := bind.WaitDeployed(ctx, t.signer.Client, tx); err != nil {
		zap.L().Error("contract deployment not confirmed", zap.String("tx", tx.Hash().Hex()), zap.Error(err))
		return errs.NewContractExecution(errs.LocationERC721Deploy, err)
	}

	t.address = addr
	t.contract = contract
	return nil
}

// LoadContract binds this instance to an existing contract at
// contractAddress without deploying. The instance must be unbound.
func (t *ERC721Mintable) LoadContract(ctx context.Context, contractAddress string) error {
	_ = ctx

	if t.signer == nil {
		return errs.NewValidation(errs.LocationERC721LoadContract, errs.MessageNoSigner)
	}
	if !blockchain.IsValidAddress(contractAddress) {
		return errs.NewValidation(errs.LocationERC721LoadContract, errs.MessageInvalidAddress)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.contract != nil {
		return errs.NewPrecondition(errs.LocationERC721LoadContract, errs.MessageContractAlreadySet)
	}

	art, err := ERC721MintableArtifact()
	if err != nil {
		return errs.NewContractExecution(errs.LocationERC721LoadContract, err)
	}

	addr := common.HexToAddress(contractAddress)
	t.address = addr
	t.contract = bind.NewBoundContract(addr, art.ABI, t.signer.Client, t.signer.Client, t.signer.Client)
	return nil
}

// Mint creates a new token owned by publicAddress with the given metadata URI.
// Returns the pending transaction.
func (t *ERC721Mintable) Mint(ctx context.Context, publicAddress, tokenURI string) (*types.Transaction, error) {
	contract, err := t.bound(errs.LocationERC721Mint)
	if err != nil {
		return nil, err
	}
	if !blockchain.IsValidAddress(publicAddress) {
		return nil, errs.NewValidation(errs.LocationERC721Mint, errs.MessageInvalidAddress)
	}
	if tokenURI == "" {
		return nil, errs.NewValidation(errs.LocationERC721Mint, errs.MessageNoTokenURI)
	}

	opts, err := t.signer.TransactOpts(ctx)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721Mint, err)
	}

	tx, err := contract.Transact(opts, "mintWithTokenURI", common.HexToAddress(publicAddress), tokenURI)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721Mint, err)
	}
	return tx, nil
}

// Transfer moves tokenID from one owner to another via safeTransferFrom.
func (t *ERC721Mintable) Transfer(ctx context.Context, from, to string, tokenID *big.Int) (*types.Transaction, error) {
	contract, err := t.bound(errs.LocationERC721Transfer)
	if err != nil {
		return nil, err
	}
	if !blockchain.IsValidAddress(from) || !blockchain.IsValidAddress(to) {
		return nil, errs.NewValidation(errs.LocationERC721Transfer, errs.MessageInvalidAddress)
	}
	if tokenID == nil || tokenID.Sign() < 0 {
		return nil, errs.NewValidation(errs.LocationERC721Transfer, errs.MessageInvalidTokenID)
	}

	opts, err := t.signer.TransactOpts(ctx)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721Transfer, err)
	}
	opts.GasLimit = transferGasLimit

	tx, err := contract.Transact(opts, "safeTransferFrom",
		common.HexToAddress(from), common.HexToAddress(to), tokenID)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721Transfer, err)
	}
	return tx, nil
}

// ApproveTransfer approves `to` to transfer tokenID on the owner's behalf.
func (t *ERC721Mintable) ApproveTransfer(ctx context.Context, to string, tokenID *big.Int) (*types.Transaction, error) {
	contract, err := t.bound(errs.LocationERC721ApproveTransfer)
	if err != nil {
		return nil, err
	}
	if !blockchain.IsValidAddress(to) {
		return nil, errs.NewValidation(errs.LocationERC721ApproveTransfer, errs.MessageInvalidAddress)
	}
	if tokenID == nil || tokenID.Sign() < 0 {
		return nil, errs.NewValidation(errs.LocationERC721ApproveTransfer, errs.MessageInvalidTokenID)
	}

	opts, err := t.signer.TransactOpts(ctx)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721ApproveTransfer, err)
	}
	opts.GasLimit = transferGasLimit

	tx, err := contract.Transact(opts, "approve", common.HexToAddress(to), tokenID)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721ApproveTransfer, err)
	}
	return tx, nil
}

// SetApprovalForAll grants or revokes operator approval over every token
// owned by the caller.
func (t *ERC721Mintable) SetApprovalForAll(ctx context.Context, to string, approved bool) (*types.Transaction, error) {
	contract, err := t.bound(errs.LocationERC721SetApprovalForAll)
	if err != nil {
		return nil, err
	}
	if !blockchain.IsValidAddress(to) {
		return nil, errs.NewValidation(errs.LocationERC721SetApprovalForAll, errs.MessageInvalidAddress)
	}

	opts, err := t.signer.TransactOpts(ctx)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721SetApprovalForAll, err)
	}
	opts.GasLimit = transferGasLimit

	tx, err := contract.Transact(opts, "setApprovalForAll", common.HexToAddress(to), approved)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721SetApprovalForAll, err)
	}
	return tx, nil
}

// grantRole, revokeRole and renounceRole drive the contract's role-control
// primitives against a fixed role constant.
func (t *ERC721Mintable) grantRole(ctx context.Context, location string, role common.Hash, publicAddress string) (*types.Transaction, error) {
	return t.roleTransact(ctx, location, "grantRole", role, publicAddress)
}

func (t *ERC721Mintable) revokeRole(ctx context.Context, location string, role common.Hash, publicAddress string) (*types.Transaction, error) {
	return t.roleTransact(ctx, location, "revokeRole", role, publicAddress)
}

func (t *ERC721Mintable) renounceRole(ctx context.Context, location string, role common.Hash, publicAddress string) (*types.Transaction, error) {
	return t.roleTransact(ctx, location, "renounceRole", role, publicAddress)
}

func (t *ERC721Mintable) roleTransact(ctx context.Context, location, method string, role common.Hash, publicAddress string) (*types.Transaction, error) {
	contract, err := t.bound(location)
	if err != nil {
		return nil, err
	}
	if !blockchain.IsValidAddress(publicAddress) {
		return nil, errs.NewValidation(location, errs.MessageInvalidAddress)
	}

	opts, err := t.signer.TransactOpts(ctx)
	if err != nil {
		return nil, errs.NewContractExecution(location, err)
	}

	tx, err := contract.Transact(opts, method, [32]byte(role), common.HexToAddress(publicAddress))
	if err != nil {
		return nil, errs.NewContractExecution(location, err)
	}
	return tx, nil
}

func (t *ERC721Mintable) hasRole(ctx context.Context, location string, role common.Hash, publicAddress string) (bool, error) {
	contract, err := t.bound(location)
	if err != nil {
		return false, err
	}
	if !blockchain.IsValidAddress(publicAddress) {
		return false, errs.NewValidation(location, errs.MessageInvalidAddress)
	}

	var out []interface{}
	err = contract.Call(t.signer.CallOpts(ctx), &out, "hasRole", [32]byte(role), common.HexToAddress(publicAddress))
	if err != nil {
		return false, errs.NewContractExecution(location, err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// AddMinter grants the minter role to publicAddress.
func (t *ERC721Mintable) AddMinter(ctx context.Context, publicAddress string) (*types.Transaction, error) {
	return t.grantRole(ctx, errs.LocationERC721AddMinter, MinterRole, publicAddress)
}

// RemoveMinter revokes the minter role from publicAddress.
func (t *ERC721Mintable) RemoveMinter(ctx context.Context, publicAddress string) (*types.Transaction, error) {
	return t.revokeRole(ctx, errs.LocationERC721RemoveMinter, MinterRole, publicAddress)
}

// RenounceMinter renounces the minter role held by publicAddress (the caller).
func (t *ERC721Mintable) RenounceMinter(ctx context.Context, publicAddress string) (*types.Transaction, error) {
	return t.renounceRole(ctx, errs.LocationERC721RenounceMinter, MinterRole, publicAddress)
}

// IsMinter reports whether publicAddress holds the minter role.
func (t *ERC721Mintable) IsMinter(ctx context.Context, publicAddress string) (bool, error) {
	return t.hasRole(ctx, errs.LocationERC721IsMinter, MinterRole, publicAddress)
}

// AddAdmin grants the admin role to publicAddress.
func (t *ERC721Mintable) AddAdmin(ctx context.Context, publicAddress string) (*types.Transaction, error) {
	return t.grantRole(ctx, errs.LocationERC721AddAdmin, DefaultAdminRole, publicAddress)
}

// RemoveAdmin revokes the admin role from publicAddress.
func (t *ERC721Mintable) RemoveAdmin(ctx context.Context, publicAddress string) (*types.Transaction, error) {
	return t.revokeRole(ctx, errs.LocationERC721RemoveAdmin, DefaultAdminRole, publicAddress)
}

// RenounceAdmin renounces the admin role held by publicAddress (the caller).
func (t *ERC721Mintable) RenounceAdmin(ctx context.Context, publicAddress string) (*types.Transaction, error) {
	return t.renounceRole(ctx, errs.LocationERC721RenounceAdmin, DefaultAdminRole, publicAddress)
}

// IsAdmin reports whether publicAddress holds the admin role.
func (t *ERC721Mintable) IsAdmin(ctx context.Context, publicAddress string) (bool, error) {
	return t.hasRole(ctx, errs.LocationERC721IsAdmin, DefaultAdminRole, publicAddress)
}

// SetRoyalties sets the royalty receiver and fee. The fee is expressed in
// basis points and must lie strictly between 0 and 10000.
func (t *ERC721Mintable) SetRoyalties(ctx context.Context, publicAddress string, fee int) (*types.Transaction, error) {
	contract, err := t.bound(errs.LocationERC721SetRoyalties)
	if err != nil {
		return nil, err
	}
	if !blockchain.IsValidAddress(publicAddress) {
		return nil, errs.NewValidation(errs.LocationERC721SetRoyalties, errs.MessageInvalidAddress)
	}
	if fee <= 0 || fee >= maxRoyaltyFee {
		return nil, errs.NewValidation(errs.LocationERC721SetRoyalties, errs.MessageInvalidFee)
	}

	opts, err := t.signer.TransactOpts(ctx)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721SetRoyalties, err)
	}

	tx, err := contract.Transact(opts, "setRoyalties", common.HexToAddress(publicAddress), big.NewInt(int64(fee)))
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721SetRoyalties, err)
	}
	return tx, nil
}

// RoyaltyInfo returns the royalty receiver and amount for a sale of tokenID
// at sellPrice. Arguments are only checked for presence, not shape.
func (t *ERC721Mintable) RoyaltyInfo(ctx context.Context, tokenID, sellPrice *big.Int) (common.Address, *big.Int, error) {
	contract, err := t.bound(errs.LocationERC721RoyaltyInfo)
	if err != nil {
		return common.Address{}, nil, err
	}
	if tokenID == nil {
		return common.Address{}, nil, errs.NewValidation(errs.LocationERC721RoyaltyInfo, errs.MessageNoTokenID)
	}
	if sellPrice == nil {
		return common.Address{}, nil, errs.NewValidation(errs.LocationERC721RoyaltyInfo, errs.MessageNoSellPrice)
	}

	var out []interface{}
	err = contract.Call(t.signer.CallOpts(ctx), &out, "royaltyInfo", tokenID, sellPrice)
	if err != nil {
		return common.Address{}, nil, errs.NewContractExecution(errs.LocationERC721RoyaltyInfo, err)
	}

	receiver := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	amount := *abi.ConvertType(out[1], new(*big.Int)).(**big.Int)
	return receiver, amount, nil
}

// SetContractURI updates the collection-level metadata URI.
func (t *ERC721Mintable) SetContractURI(ctx context.Context, contractURI string) (*types.Transaction, error) {
	contract, err := t.bound(errs.LocationERC721SetContractURI)
	if err != nil {
		return nil, err
	}
	if contractURI == "" {
		return nil, errs.NewValidation(errs.LocationERC721SetContractURI, errs.MessageNoContractURI)
	}

	opts, err := t.signer.TransactOpts(ctx)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721SetContractURI, err)
	}

	tx, err := contract.Transact(opts, "setContractURI", contractURI)
	if err != nil {
		return nil, errs.NewContractExecution(errs.LocationERC721SetContractURI, err)
	}
	return tx, nil
}

// Name returns the token name recorded on-chain.
func (t *ERC721Mintable) Name(ctx context.Context) (string, error) {
	return t.callString(ctx, errs.LocationERC721Name, "name")
}

// Symbol returns the token symbol recorded on-chain.
func (t *ERC721Mintable) Symbol(ctx context.Context) (string, error) {
	return t.callString(ctx, errs.LocationERC721Symbol, "symbol")
}

// ContractURI returns the collection-level metadata URI recorded on-chain.
func (t *ERC721Mintable) ContractURI(ctx context.Context) (string, error) {
	return t.callString(ctx, errs.LocationERC721ContractURI, "contractURI")
}

func (t *ERC721Mintable) callString(ctx context.Context, location, method string) (string, error) {
	contract, err := t.bound(location)
	if err != nil {
		return "", err
	}

	var out []interface{}
	if err := contract.Call(t.signer.CallOpts(ctx), &out, method); err != nil {
		return "", errs.NewContractExecution(location, err)
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

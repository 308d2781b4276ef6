// Package sdk exposes the high-level NFT SDK entry points. It wires together
// blockchain access (signer and contract templates), the metadata REST API
// client and the IPFS storage backend.
package sdk

import (
	"context"
	"errors"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/consensys/nft-sdk-go/pkg/blockchain"
	"github.com/consensys/nft-sdk-go/pkg/config"
	"github.com/consensys/nft-sdk-go/pkg/contracts"
	"github.com/consensys/nft-sdk-go/pkg/errs"
	"github.com/consensys/nft-sdk-go/pkg/metadata"
	"github.com/consensys/nft-sdk-go/pkg/storage"
)

// NFTSDK is the public interface for deploying and loading contract
// templates, reading indexed metadata, storing content and releasing
// resources.
type NFTSDK interface {
	// Deploy creates a fresh contract instance from the requested template and
	// deploys it, waiting until the contract is mined. The returned contract is
	// bound and ready for operations.
	Deploy(ctx context.Context, req DeployRequest) (contracts.Contract, error)

	// LoadContract creates a fresh contract instance from the requested
	// template and binds it to an already-deployed contract address.
	LoadContract(ctx context.Context, req LoadRequest) (contracts.Contract, error)

	// GetContractMetadata returns collection-level metadata (name, symbol,
	// token type) for a deployed contract.
	GetContractMetadata(ctx context.Context, contractAddress string) (*metadata.ContractMetadata, error)

	// GetNFTs lists the NFTs owned by an account. When includeMetadata is
	// false, per-asset metadata is stripped from the result.
	GetNFTs(ctx context.Context, publicAddress string, includeMetadata bool) (*metadata.AccountNFTs, error)

	// GetNFTsForCollection lists every token of a collection.
	GetNFTsForCollection(ctx context.Context, contractAddress string) (*metadata.CollectionNFTs, error)

	// GetTokenMetadata returns the metadata of a single token.
	GetTokenMetadata(ctx context.Context, contractAddress string, tokenID *big.Int) (*metadata.TokenMetadata, error)

	// GetStatus returns the receipt status of a mined transaction.
	GetStatus(ctx context.Context, txHash string) (uint64, error)

	// StoreMetadata serializes metadata to JSON, pins it to IPFS and returns
	// the resulting ipfs:// URI.
	StoreMetadata(ctx context.Context, metadata any) (string, error)

	// StoreFile pins raw content to IPFS and returns the resulting ipfs:// URI.
	StoreFile(ctx context.Context, content []byte) (string, error)

	// Close releases resources associated with the SDK instance.
	Close()
}

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// DeployRequest carries the template name and constructor parameters for a
// fresh deployment. Params is checked for presence only; its field-level
// rules belong to the template, which reports them with its own diagnostics.
type DeployRequest struct {
	Template contracts.Template      `validate:"required"`
	Params   *contracts.DeployParams `validate:"required,structonly"`
}

// LoadRequest carries the template name and the address of an
// already-deployed contract to bind to.
type LoadRequest struct {
	Template        contracts.Template `validate:"required"`
	ContractAddress string             `validate:"required,eth_addr"`
}

// Core is the concrete SDK implementation. It embeds the initialized signer,
// the runtime configuration, the metadata API client and the storage backend.
type Core struct {
	signer *blockchain.Signer
	*config.Config
	api      *metadata.Client
	store    storage.Storage
	validate *validator.Validate

	// newTemplate resolves template names to fresh contract instances.
	// Defaults to the factory registry.
	newTemplate func(contracts.Template, *blockchain.Signer) (contracts.Contract, error)
}

// Signer returns the underlying signer for advanced blockchain operations.
func (c *Core) Signer() *blockchain.Signer {
	return c.signer
}

// NewSDK initializes the SDK Core with validated configuration, a connected
// signer, the metadata API client and the IPFS storage backend. It applies
// default timeout values and aborts the process if the configuration is
// invalid or the Ethereum client cannot be initialized.
func NewSDK(cfg *config.Config) NFTSDK {
	err := cfg.Validate()
	if err != nil {
		zap.L().Fatal("Invalid config", zap.Error(err))
	}

	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	signer, err := blockchain.InitSigner(cfg.Network.ChainID, cfg.RPCAddr, cfg.PrivateKey, cfg.Timeouts.Dial)
	if err != nil {
		zap.L().Error("Init ethereum client failed", zap.Error(err))
		os.Exit(-1)
	}

	if cfg.Debug {
		zap.L().Debug("signer address", zap.String("addr", signer.Address().Hex()))
	}

	return &Core{
		signer:   signer,
		Config:   cfg,
		api:      metadata.NewClient(cfg.APIBaseURL, cfg.APIKey, cfg.Network.ChainID, cfg.Timeouts.APIRequest),
		store:    storage.NewStorage(cfg.IpfsURL),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Deploy creates and deploys a contract from the requested template. The
// whole operation, submission plus confirmation wait, runs under the
// ReceiptWait timeout.
func (c *Core) Deploy(ctx context.Context, req DeployRequest) (contracts.Contract, error) {
	if err := c.checkRequest(req, errs.LocationSDKDeploy); err != nil {
		return nil, err
	}

	contract, err := c.template(req.Template)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeouts.ReceiptWait)
	defer cancel()

	if err := contract.Deploy(ctx, *req.Params); err != nil {
		return nil, err
	}

	zap.L().Info("contract deployed",
		zap.String("template", string(req.Template)),
		zap.String("address", contract.Address().Hex()))
	return contract, nil
}

// LoadContract binds a fresh template instance to an existing deployment.
func (c *Core) LoadContract(ctx context.Context, req LoadRequest) (contracts.Contract, error) {
	if err := c.checkRequest(req, errs.LocationSDKLoadContract); err != nil {
		return nil, err
	}

	contract, err := c.template(req.Template)
	if err != nil {
		return nil, err
	}

	if err := contract.LoadContract(ctx, req.ContractAddress); err != nil {
		return nil, err
	}
	return contract, nil
}

// template resolves a template name through the configured constructor.
func (c *Core) template(name contracts.Template) (contracts.Contract, error) {
	if c.newTemplate == nil {
		c.newTemplate = contracts.NewTemplate
	}
	return c.newTemplate(name, c.signer)
}

// GetContractMetadata returns collection-level metadata for a deployed contract.
func (c *Core) GetContractMetadata(ctx context.Context, contractAddress string) (*metadata.ContractMetadata, error) {
	if !blockchain.IsValidAddress(contractAddress) {
		return nil, errs.NewValidation(errs.LocationSDKGetContractMetadata, errs.MessageInvalidAddress)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeouts.APIRequest)
	defer cancel()

	meta, err := c.api.GetContractMetadata(ctx, contractAddress)
	if err != nil {
		return nil, errs.NewAPIFailure(errs.LocationSDKGetContractMetadata, err)
	}
	return meta, nil
}

// GetNFTs lists the NFTs owned by publicAddress.
func (c *Core) GetNFTs(ctx context.Context, publicAddress string, includeMetadata bool) (*metadata.AccountNFTs, error) {
	if !blockchain.IsValidAddress(publicAddress) {
		return nil, errs.NewValidation(errs.LocationSDKGetNFTs, errs.MessageInvalidAddress)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeouts.APIRequest)
	defer cancel()

	nfts, err := c.api.GetNFTs(ctx, publicAddress, includeMetadata)
	if err != nil {
		return nil, errs.NewAPIFailure(errs.LocationSDKGetNFTs, err)
	}
	return nfts, nil
}

// GetNFTsForCollection lists every token of the collection at contractAddress.
func (c *Core) GetNFTsForCollection(ctx context.Context, contractAddress string) (*metadata.CollectionNFTs, error) {
	if !blockchain.IsValidAddress(contractAddress) {
		return nil, errs.NewValidation(errs.LocationSDKGetNFTsForCollection, errs.MessageInvalidAddress)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeouts.APIRequest)
	defer cancel()

	nfts, err := c.api.GetNFTsForCollection(ctx, contractAddress)
	if err != nil {
		return nil, errs.NewAPIFailure(errs.LocationSDKGetNFTsForCollection, err)
	}
	return nfts, nil
}

// GetTokenMetadata returns the metadata of one token of a collection.
func (c *Core) GetTokenMetadata(ctx context.Context, contractAddress string, tokenID *big.Int) (*metadata.TokenMetadata, error) {
	if !blockchain.IsValidAddress(contractAddress) {
		return nil, errs.NewValidation(errs.LocationSDKGetTokenMetadata, errs.MessageInvalidAddress)
	}
	if tokenID == nil {
		return nil, errs.NewValidation(errs.LocationSDKGetTokenMetadata, errs.MessageNoTokenID)
	}
	if tokenID.Sign() < 0 {
		return nil, errs.NewValidation(errs.LocationSDKGetTokenMetadata, errs.MessageInvalidTokenID)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeouts.APIRequest)
	defer cancel()

	meta, err := c.api.GetTokenMetadata(ctx, contractAddress, tokenID.String())
	if err != nil {
		return nil, errs.NewAPIFailure(errs.LocationSDKGetTokenMetadata, err)
	}
	return meta, nil
}

// GetStatus returns the receipt status of the transaction with txHash.
func (c *Core) GetStatus(ctx context.Context, txHash string) (uint64, error) {
	if !blockchain.IsValidTxHash(txHash) {
		return 0, errs.NewValidation(errs.LocationSDKGetStatus, errs.MessageNoTxHash)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeouts.ChainRead)
	defer cancel()

	status, err := c.signer.TransactionStatus(ctx, common.HexToHash(txHash))
	if err != nil {
		return 0, errs.NewContractExecution(errs.LocationSDKGetStatus, err)
	}
	return status, nil
}

// StoreMetadata pins a JSON metadata document to IPFS and returns its URI.
func (c *Core) StoreMetadata(ctx context.Context, meta any) (string, error) {
	if meta == nil {
		return "", errs.NewValidation(errs.LocationSDKStoreMetadata, errs.MessageNoContent)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeouts.Store)
	defer cancel()

	uri, err := c.store.StoreMetadata(ctx, meta)
	if err != nil {
		return "", errs.NewAPIFailure(errs.LocationSDKStoreMetadata, err)
	}
	return uri, nil
}

// StoreFile pins raw content to IPFS and returns its URI.
func (c *Core) StoreFile(ctx context.Context, content []byte) (string, error) {
	if len(content) == 0 {
		return "", errs.NewValidation(errs.LocationSDKStoreFile, errs.MessageNoContent)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeouts.Store)
	defer cancel()

	uri, err := c.store.StoreFile(ctx, content)
	if err != nil {
		return "", errs.NewAPIFailure(errs.LocationSDKStoreFile, err)
	}
	return uri, nil
}

// Close releases the underlying RPC connection.
func (c *Core) Close() {
	if c.signer != nil {
		c.signer.Close()
	}
}

// checkRequest validates a request struct and maps the first failed field to
// the fixed diagnostic message for the given operation.
func (c *Core) checkRequest(req any, location string) error {
	if c.validate == nil {
		c.validate = validator.New(validator.WithRequiredStructEnabled())
	}

	err := c.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewValidation(location, err.Error())
	}

	switch fieldErrs[0].Field() {
	case "Template":
		return errs.NewValidation(location, errs.MessageNoTemplate)
	case "Params":
		return errs.NewValidation(location, errs.MessageNoParams)
	case "ContractAddress":
		return errs.NewValidation(location, errs.MessageInvalidAddress)
	default:
		return errs.NewValidation(location, fieldErrs[0].Error())
	}
}

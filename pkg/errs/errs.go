package errs

import (
	"errors"
	"fmt"
)

// Category sentinels. Every error produced by the SDK wraps exactly one of
// these, so callers can branch with errors.Is without matching message text.
var (
	// ErrValidation marks malformed or missing caller input, detected before
	// any network call is made.
	ErrValidation = errors.New("validation error")
	// ErrPrecondition marks an operation invoked in the wrong lifecycle state,
	// e.g. a second Deploy or a Mint before the contract is bound.
	ErrPrecondition = errors.New("precondition error")
	// ErrContractExecution marks a failure from the on-chain call path:
	// network, gas estimation, or contract revert.
	ErrContractExecution = errors.New("contract execution error")
	// ErrUnknownTemplate marks a factory lookup for an unregistered template name.
	ErrUnknownTemplate = errors.New("unknown template")
)

// UnknownErrorCode is used by ClassifyNetworkError for failures that do not
// expose a machine-readable code.
const UnknownErrorCode = "UNKNOWN_ERROR"

// Locations identify the operation that produced an error. They are embedded
// verbatim in rendered messages so diagnostics stay greppable.
const (
	LocationERC721Deploy            = "ERC721Mintable.deploy"
	LocationERC721LoadContract      = "ERC721Mintable.loadContract"
	LocationERC721Mint              = "ERC721Mintable.mint"
	LocationERC721Transfer          = "ERC721Mintable.transfer"
	LocationERC721ApproveTransfer   = "ERC721Mintable.approveTransfer"
	LocationERC721SetApprovalForAll = "ERC721Mintable.setApprovalForAll"
	LocationERC721AddMinter         = "ERC721Mintable.addMinter"
	LocationERC721RemoveMinter      = "ERC721Mintable.removeMinter"
	LocationERC721RenounceMinter    = "ERC721Mintable.renounceMinter"
	LocationERC721IsMinter          = "ERC721Mintable.isMinter"
	LocationERC721AddAdmin          = "ERC721Mintable.addAdmin"
	LocationERC721RemoveAdmin       = "ERC721Mintable.removeAdmin"
	LocationERC721RenounceAdmin     = "ERC721Mintable.renounceAdmin"
	LocationERC721IsAdmin           = "ERC721Mintable.isAdmin"
	LocationERC721SetRoyalties      = "ERC721Mintable.setRoyalties"
	LocationERC721RoyaltyInfo       = "ERC721Mintable.royaltyInfo"
	LocationERC721SetContractURI    = "ERC721Mintable.setContractURI"
	LocationERC721Name              = "ERC721Mintable.name"
	LocationERC721Symbol            = "ERC721Mintable.symbol"
	LocationERC721ContractURI       = "ERC721Mintable.contractURI"
	LocationContractFactory         = "ContractFactory.factory"
	LocationSDKDeploy               = "SDK.deploy"
	LocationSDKLoadContract         = "SDK.loadContract"
	LocationSDKGetContractMetadata  = "SDK.getContractMetadata"
	LocationSDKGetNFTs              = "SDK.getNFTs"
	LocationSDKGetNFTsForCollection = "SDK.getNFTsForCollection"
	LocationSDKGetTokenMetadata     = "SDK.getTokenMetadata"
	LocationSDKGetStatus            = "SDK.getStatus"
	LocationSDKStoreMetadata        = "SDK.storeMetadata"
	LocationSDKStoreFile            = "SDK.storeFile"
)

// Messages are the fixed diagnostic strings paired with a location.
const (
	MessageNoName              = "name is mandatory"
	MessageNoSymbol            = "symbol is mandatory"
	MessageNoContractURI       = "contractURI is mandatory"
	MessageNoTokenURI          = "tokenURI is mandatory"
	MessageInvalidAddress      = "address is not a valid Ethereum address"
	MessageInvalidTokenID      = "tokenID must be a non-negative integer"
	MessageInvalidFee          = "fee must be between 0 and 10000"
	MessageNoSigner            = "signer is not defined"
	MessageNoTemplate          = "template is mandatory"
	MessageNoParams            = "params are mandatory"
	MessageNoTxHash            = "transaction hash is not valid"
	MessageNoTokenID           = "tokenID is mandatory"
	MessageNoSellPrice         = "sellPrice is mandatory"
	MessageContractAlreadySet  = "contract already deployed or loaded"
	MessageContractNotDeployed = "contract not deployed or loaded"
	MessageContractCallFailed  = "an error occurred while calling the contract"
	MessageAPIRequestFailed    = "an error occurred while requesting the API"
	MessageNoContent           = "no content to store"
)

// Error is the concrete error value carried by every SDK failure. Category is
// one of the package sentinels; Location and Message come from the fixed
// enumerations above; Options is free-form context appended only when
// non-empty; Cause preserves the underlying failure, if any.
type Error struct {
	Category error
	Location string
	Message  string
	Options  string
	Cause    error
}

func (e *Error) Error() string {
	return Render(e.Location, e.Message, e.Options)
}

// Is reports whether target matches this error's category, so that
// errors.Is(err, errs.ErrValidation) works on wrapped values.
func (e *Error) Is(target error) bool {
	return target == e.Category
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidation builds a validation-category error for the given operation.
func NewValidation(location, message string) *Error {
	return &Error{Category: ErrValidation, Location: location, Message: message}
}

// NewPrecondition builds a precondition-category error for the given operation.
func NewPrecondition(location, message string) *Error {
	return &Error{Category: ErrPrecondition, Location: location, Message: message}
}

// NewContractExecution wraps a failure from the on-chain call path. The cause
// is classified into Options so the rendered message carries the provider's
// code and reason.
func NewContractExecution(location string, cause error) *Error {
	return &Error{
		Category: ErrContractExecution,
		Location: location,
		Message:  MessageContractCallFailed,
		Options:  ClassifyNetworkError(cause),
		Cause:    cause,
	}
}

// NewAPIFailure wraps a metadata API or storage failure. The cause is
// classified into Options the same way as contract call failures.
func NewAPIFailure(location string, cause error) *Error {
	return &Error{
		Category: ErrContractExecution,
		Location: location,
		Message:  MessageAPIRequestFailed,
		Options:  ClassifyNetworkError(cause),
		Cause:    cause,
	}
}

// NewUnknownTemplate reports an unregistered template name.
func NewUnknownTemplate(name string) *Error {
	return &Error{
		Category: ErrUnknownTemplate,
		Location: LocationContractFactory,
		Message:  "invalid template",
		Options:  name,
	}
}

// Render formats a diagnostic as "location message", appending " | options"
// only when options is non-empty. Pure formatting, no side effects.
func Render(location, message, options string) string {
	if options == "" {
		return fmt.Sprintf("%s %s", location, message)
	}
	return fmt.Sprintf("%s %s | %s", location, message, options)
}

// NetworkFailure is the shape exposed by providers that attach a
// machine-readable code and a human-readable reason to their failures.
type NetworkFailure interface {
	error
	Code() string
	Reason() string
}

// ClassifyNetworkError renders an externally-sourced failure as
// "code: <code>, message: <reason>". Failures that do not expose the
// code/reason shape are stringified under UnknownErrorCode. The function is
// pure, never panics, and tolerates nil.
func ClassifyNetworkError(err error) string {
	var nf NetworkFailure
	if errors.As(err, &nf) {
		return fmt.Sprintf("code: %s, message: %s", nf.Code(), nf.Reason())
	}
	if err == nil {
		return fmt.Sprintf("code: %s, message: %v", UnknownErrorCode, err)
	}
	return fmt.Sprintf("code: %s, message: %s", UnknownErrorCode, err.Error())
}

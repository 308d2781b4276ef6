// Package errs defines the error taxonomy shared by every SDK operation.
//
// All failures surfaced by the SDK wrap one of four category sentinels:
//
//	errs.ErrValidation        - bad caller input, caught before any network call
//	errs.ErrPrecondition      - operation invoked in the wrong lifecycle state
//	errs.ErrContractExecution - failure from the on-chain call path
//	errs.ErrUnknownTemplate   - factory given an unregistered template name
//
// Callers branch on the category, never on message text:
//
//	tx, err := contract.Mint(ctx, to, tokenURI)
//	if errors.Is(err, errs.ErrValidation) {
//		// fix the input and retry; nothing was submitted
//	}
//
// Rendered messages have a stable, greppable shape:
//
//	<location> <message>
//	<location> <message> | <options>
//
// where location and message come from the fixed enumerations in this package
// and options carries free-form context, e.g. the provider failure classified
// by ClassifyNetworkError:
//
//	ERC721Mintable.mint an error occurred while calling the contract | code: UNPREDICTABLE_GAS_LIMIT, message: cannot estimate gas
//
// # Network failure classification
//
// ClassifyNetworkError inspects a failure for the code/reason shape exposed by
// JSON-RPC providers (the NetworkFailure interface). Matching failures keep
// both fields verbatim; anything else is stringified under the UNKNOWN_ERROR
// code. The function is pure and never panics.
package errs

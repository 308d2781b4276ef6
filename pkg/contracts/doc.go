// Package contracts provides the token-contract templates the SDK deploys
// and operates, plus the factory that resolves template names.
//
// # Lifecycle
//
// A template instance is created unbound and becomes bound through exactly
// one of Deploy or LoadContract; it is never re-deployed, re-loaded, or
// partially bound. Every other operation requires the bound state:
//
//	contract := contracts.NewERC721Mintable(signer)
//	err := contract.Deploy(ctx, contracts.DeployParams{
//		Name:        "My Collection",
//		Symbol:      "MYC",
//		ContractURI: "ipfs://Qm.../collection.json",
//	})
//
//	// or bind to an existing deployment:
//	err = contract.LoadContract(ctx, "0x1234...")
//
// Calling Deploy or LoadContract on an already-bound instance fails with
// errs.ErrPrecondition, as does calling any other operation before binding.
// A failed deployment leaves the instance unbound, so retrying is safe.
//
// # Operations
//
// ERC721Mintable covers minting (Mint), transfers and approvals (Transfer,
// ApproveTransfer, SetApprovalForAll), role management (Add/Remove/Renounce/
// Is for both Minter and Admin), royalties (SetRoyalties, RoyaltyInfo) and
// collection metadata (SetContractURI, ContractURI, Name, Symbol).
//
// All inputs are validated before any network call; bad input fails with
// errs.ErrValidation and no transaction is submitted. On-chain and transport
// failures surface as errs.ErrContractExecution with the underlying cause
// preserved.
//
// # Roles
//
// DefaultAdminRole and MinterRole are fixed 32-byte identifiers that must
// match the deployed contract's own role constants exactly; a mismatch
// no-ops on-chain rather than failing. roles_test.go pins them against their
// keccak256 derivation.
//
// # Contract Artifact
//
// The compiled ERC721Mintable artifact (ABI + bytecode) is embedded with the
// SDK and parsed once at first use; see artifact.go.
//
// # Factory
//
// NewTemplate resolves a template name to a fresh unbound instance:
//
//	c, err := contracts.NewTemplate(contracts.TemplateERC721Mintable, signer)
//	if errors.Is(err, errs.ErrUnknownTemplate) { ... }
//	erc721 := c.(*contracts.ERC721Mintable)
package contracts

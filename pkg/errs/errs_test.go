package errs

import (
	"errors"
	"fmt"
	"testing"
)

type fakeProviderError struct {
	code   string
	reason string
}

func (e *fakeProviderError) Error() string  { return e.reason }
func (e *fakeProviderError) Code() string   { return e.code }
func (e *fakeProviderError) Reason() string { return e.reason }

func TestRender(t *testing.T) {
	tests := []struct {
		location string
		message  string
		options  string
		want     string
	}{
		{"Test", "test", "test", "Test test | test"},
		{"Test", "test", "", "Test test"},
		{LocationERC721Deploy, MessageNoName, "", "ERC721Mintable.deploy name is mandatory"},
	}

	for _, tc := range tests {
		got := Render(tc.location, tc.message, tc.options)
		if got != tc.want {
			t.Fatalf("Render(%q, %q, %q) = %q, want %q", tc.location, tc.message, tc.options, got, tc.want)
		}
	}
}

func TestRenderReproducible(t *testing.T) {
	first := Render("Test", "test", "opts")
	second := Render("Test", "test", "opts")
	if first != second {
		t.Fatalf("Render not reproducible: %q vs %q", first, second)
	}
}

func TestClassifyNetworkErrorWithCodeAndReason(t *testing.T) {
	err := &fakeProviderError{
		code:   "UNPREDICTABLE_GAS_LIMIT",
		reason: "cannot estimate gas; transaction may fail or may require manual gas limit",
	}

	got := ClassifyNetworkError(err)
	want := "code: UNPREDICTABLE_GAS_LIMIT, message: cannot estimate gas; transaction may fail or may require manual gas limit"
	if got != want {
		t.Fatalf("ClassifyNetworkError = %q, want %q", got, want)
	}
}

func TestClassifyNetworkErrorUnknownShape(t *testing.T) {
	got := ClassifyNetworkError(errors.New("unknown error"))
	if got != "code: UNKNOWN_ERROR, message: unknown error" {
		t.Fatalf("unexpected classification: %q", got)
	}
}

func TestClassifyNetworkErrorWrappedProviderError(t *testing.T) {
	inner := &fakeProviderError{code: "CALL_EXCEPTION", reason: "execution reverted"}
	wrapped := fmt.Errorf("sending transaction: %w", inner)

	got := ClassifyNetworkError(wrapped)
	if got != "code: CALL_EXCEPTION, message: execution reverted" {
		t.Fatalf("unexpected classification: %q", got)
	}
}

func TestClassifyNetworkErrorNil(t *testing.T) {
	if got := ClassifyNetworkError(nil); got != "code: UNKNOWN_ERROR, message: <nil>" {
		t.Fatalf("unexpected classification for nil: %q", got)
	}
}

func TestErrorCategoryMatching(t *testing.T) {
	tests := []struct {
		err      error
		category error
	}{
		{NewValidation(LocationERC721Mint, MessageInvalidAddress), ErrValidation},
		{NewPrecondition(LocationERC721Mint, MessageContractNotDeployed), ErrPrecondition},
		{NewContractExecution(LocationERC721Deploy, errors.New("boom")), ErrContractExecution},
		{NewUnknownTemplate("ERC20"), ErrUnknownTemplate},
	}

	for _, tc := range tests {
		if !errors.Is(tc.err, tc.category) {
			t.Fatalf("%v does not match category %v", tc.err, tc.category)
		}
		for _, other := range tests {
			if other.category == tc.category {
				continue
			}
			if errors.Is(tc.err, other.category) {
				t.Fatalf("%v unexpectedly matches category %v", tc.err, other.category)
			}
		}
	}
}

func TestContractExecutionPreservesCause(t *testing.T) {
	cause := &fakeProviderError{code: "NETWORK_ERROR", reason: "connection refused"}
	err := NewContractExecution(LocationERC721Transfer, cause)

	if !errors.Is(err, ErrContractExecution) {
		t.Fatal("expected contract execution category")
	}
	var nf NetworkFailure
	if !errors.As(err, &nf) {
		t.Fatal("cause not reachable through Unwrap")
	}
	want := "ERC721Mintable.transfer an error occurred while calling the contract | code: NETWORK_ERROR, message: connection refused"
	if err.Error() != want {
		t.Fatalf("rendered message = %q, want %q", err.Error(), want)
	}
}

package blockchain

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

func TestGetAddressFromPrivateKeyECDSA(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	addr := GetAddressFromPrivateKeyECDSA(priv)
	if addr == nil {
		t.Fatal("expected non-nil address")
	}
	want := crypto.PubkeyToAddress(priv.PublicKey)
	if *addr != want {
		t.Fatalf("unexpected address: got %s want %s", addr.Hex(), want.Hex())
	}

	if GetAddressFromPrivateKeyECDSA(nil) != nil {
		t.Fatal("expected nil for nil key")
	}
}

func TestParsePrivateKeyECDSA(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	hexKey := hex.EncodeToString(crypto.FromECDSA(priv))

	addr, parsedKey, err := ParsePrivateKeyECDSA(hexKey)
	if err != nil {
		t.Fatalf("ParsePrivateKeyECDSA: %v", err)
	}
	if addr != crypto.PubkeyToAddress(priv.PublicKey) {
		t.Fatalf("unexpected address: %s", addr.Hex())
	}
	if parsedKey.D.Cmp(priv.D) != 0 {
		t.Fatal("parsed key mismatch")
	}

	if _, _, err := ParsePrivateKeyECDSA("zz"); err == nil {
		t.Fatal("expected error for invalid key")
	}
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		addr  string
		valid bool
	}{
		{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", true},
		{"d8dA6BF26964aF9D7eEd9e03E53415D37aA96045", true},
		{"", false},
		{"0x123", false},
		{"0xZZdA6BF26964aF9D7eEd9e03E53415D37aA96045", false},
		{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA9604500", false},
	}

	for _, tc := range tests {
		if got := IsValidAddress(tc.addr); got != tc.valid {
			t.Fatalf("IsValidAddress(%q) = %v, want %v", tc.addr, got, tc.valid)
		}
	}
}

func TestIsValidTxHash(t *testing.T) {
	valid := "0x" + strings.Repeat("ab", 32)
	tests := []struct {
		hash  string
		valid bool
	}{
		{valid, true},
		{strings.ToUpper(valid[:2]) + valid[2:], false}, // "0X" prefix
		{"0x" + strings.Repeat("ab", 31), false},
		{"0x" + strings.Repeat("ab", 33), false},
		{strings.Repeat("ab", 32), false},
		{"", false},
		{"0x" + strings.Repeat("zz", 32), false},
	}

	for _, tc := range tests {
		if got := IsValidTxHash(tc.hash); got != tc.valid {
			t.Fatalf("IsValidTxHash(%q) = %v, want %v", tc.hash, got, tc.valid)
		}
	}
}

func TestEthToWei(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{"1", "1000000000000000000"},
		{1.5, "1500000000000000000"},
		{int64(2), "2000000000000000000"},
		{decimal.NewFromFloat(0.25), "250000000000000000"},
	}

	for _, tc := range tests {
		got, err := EthToWei(tc.input)
		if err != nil {
			t.Fatalf("EthToWei(%v) error: %v", tc.input, err)
		}
		if got.String() != tc.expected {
			t.Fatalf("EthToWei(%v) = %s, want %s", tc.input, got.String(), tc.expected)
		}
	}

	if _, err := EthToWei("not-a-number"); err == nil {
		t.Fatal("expected error for invalid string")
	}
	if _, err := EthToWei(struct{}{}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestWeiToEth(t *testing.T) {
	val := WeiToEth("1500000000000000000")
	want := decimal.RequireFromString("1.500000000000000000")
	if !val.Equal(want) {
		t.Fatalf("WeiToEth mismatch: got %s, want %s", val, want)
	}

	bigVal := big.NewInt(2000000000000000000)
	if got := WeiToEth(bigVal); !got.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("WeiToEth(*big.Int) = %s, want 2", got)
	}
}

func TestSignerTransactOptsRequiresKey(t *testing.T) {
	s := NewSigner(nil, big.NewInt(11155111), nil)
	if _, err := s.TransactOpts(t.Context()); err == nil {
		t.Fatal("expected error without private key")
	}
}

func TestSignerTransactOpts(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	s := NewSigner(nil, big.NewInt(11155111), priv)
	opts, err := s.TransactOpts(t.Context())
	if err != nil {
		t.Fatalf("TransactOpts: %v", err)
	}
	if opts.From != crypto.PubkeyToAddress(priv.PublicKey) {
		t.Fatalf("unexpected From: %s", opts.From.Hex())
	}
	if s.Address() != opts.From {
		t.Fatalf("Address() mismatch: %s", s.Address().Hex())
	}
}

package config

import (
	"testing"
	"time"
)

// TestConfigValidate_AppliesDefaults verifies that Validate applies default
// values for APIBaseURL, IpfsURL, and Network when they are not explicitly set.
func TestConfigValidate_AppliesDefaults(t *testing.T) {
	cfg := &Config{
		RPCAddr: "wss://rpc.example",
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	if cfg.APIBaseURL != "https://nft.api.consensys.net" {
		t.Fatalf("unexpected APIBaseURL: %s", cfg.APIBaseURL)
	}
	if cfg.IpfsURL != "https://ipfs.io:5001" {
		t.Fatalf("unexpected IpfsURL: %s", cfg.IpfsURL)
	}
	if cfg.Network != Sepolia {
		t.Fatalf("expected default Sepolia network, got %#v", cfg.Network)
	}
}

// TestConfigValidate_RequiresRPC verifies that Validate returns an error
// when RPCAddr is not provided.
func TestConfigValidate_RequiresRPC(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing RPC address")
	}
}

// TestConfigValidate_KeepsExplicitValues verifies that explicitly configured
// URLs and networks are not overwritten by defaults.
func TestConfigValidate_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		RPCAddr:    "https://polygon-rpc.example",
		APIBaseURL: "https://nft-api.internal.example",
		IpfsURL:    "http://localhost:5001",
		Network:    Polygon,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	if cfg.APIBaseURL != "https://nft-api.internal.example" {
		t.Fatalf("APIBaseURL overwritten: %s", cfg.APIBaseURL)
	}
	if cfg.IpfsURL != "http://localhost:5001" {
		t.Fatalf("IpfsURL overwritten: %s", cfg.IpfsURL)
	}
	if cfg.Network != Polygon {
		t.Fatalf("Network overwritten: %#v", cfg.Network)
	}
}

// TestTimeoutsWithDefaults verifies that zero timeout values are replaced and
// explicit values are preserved.
func TestTimeoutsWithDefaults(t *testing.T) {
	tt := Timeouts{}.WithDefaults()

	if tt.Dial != 5*time.Second {
		t.Fatalf("unexpected Dial default: %v", tt.Dial)
	}
	if tt.ChainRead != 12*time.Second {
		t.Fatalf("unexpected ChainRead default: %v", tt.ChainRead)
	}
	if tt.ReceiptWait != 90*time.Second {
		t.Fatalf("unexpected ReceiptWait default: %v", tt.ReceiptWait)
	}
	if tt.APIRequest != 10*time.Second {
		t.Fatalf("unexpected APIRequest default: %v", tt.APIRequest)
	}
	if tt.Store != 60*time.Second {
		t.Fatalf("unexpected Store default: %v", tt.Store)
	}

	custom := Timeouts{Dial: time.Second, ReceiptWait: 3 * time.Minute}.WithDefaults()
	if custom.Dial != time.Second {
		t.Fatalf("explicit Dial overwritten: %v", custom.Dial)
	}
	if custom.ReceiptWait != 3*time.Minute {
		t.Fatalf("explicit ReceiptWait overwritten: %v", custom.ReceiptWait)
	}
}

// TestFromEnv verifies that FromEnv reads NFT_SDK_-prefixed variables and
// validates the result.
func TestFromEnv(t *testing.T) {
	t.Setenv("NFT_SDK_RPC_ADDR", "https://rpc.env.example")
	t.Setenv("NFT_SDK_API_KEY", "env-key")
	t.Setenv("NFT_SDK_DEBUG", "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}
	if cfg.RPCAddr != "https://rpc.env.example" {
		t.Fatalf("unexpected RPCAddr: %s", cfg.RPCAddr)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("unexpected APIKey: %s", cfg.APIKey)
	}
	if !cfg.Debug {
		t.Fatal("expected Debug to be true")
	}
	if cfg.Network != Sepolia {
		t.Fatalf("expected Sepolia default, got %#v", cfg.Network)
	}
}

// TestFromEnv_MissingRPC verifies that FromEnv surfaces the validation error
// for an empty RPC address.
func TestFromEnv_MissingRPC(t *testing.T) {
	t.Setenv("NFT_SDK_RPC_ADDR", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for missing RPC address")
	}
}

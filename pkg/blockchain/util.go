package blockchain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// txHashRegexp matches a 0x-prefixed 32-byte hex transaction hash.
var txHashRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// GetAddressFromPrivateKeyECDSA derives the Ethereum address from the given
// ECDSA private key. It returns nil if the key is nil or its public part cannot
// be asserted to *ecdsa.PublicKey.
func GetAddressFromPrivateKeyECDSA(privateKeyECDSA *ecdsa.PrivateKey) *common.Address {
	if privateKeyECDSA == nil {
		return nil
	}
	publicKey := privateKeyECDSA.Public()
	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return nil
	}
	addr := crypto.PubkeyToAddress(*publicKeyECDSA)
	return &addr
}

// ParsePrivateKeyECDSA parses a hex-encoded ECDSA private key and returns the
// corresponding Ethereum address together with the private key object.
// It returns an error if the hex string is invalid or the public key cannot be
// derived from the private key.
func ParsePrivateKeyECDSA(privateKey string) (common.Address, *ecdsa.PrivateKey, error) {
	privateKeyECDSA, err := crypto.HexToECDSA(privateKey)
	if err != nil {
		return common.Address{}, nil, err
	}

	publicKey := privateKeyECDSA.Public()

	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, nil, errors.New("failed to get public key")
	}

	address := crypto.PubkeyToAddress(*publicKeyECDSA)
	return address, privateKeyECDSA, nil
}

// IsValidAddress reports whether s is a syntactically valid hex-encoded
// Ethereum account address.
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// IsValidTxHash reports whether s is a 0x-prefixed 32-byte hex transaction hash.
func IsValidTxHash(s string) bool {
	return txHashRegexp.MatchString(s)
}

// EthToWei converts an ETH amount to its smallest unit wei (18 decimals).
//
// Supported input types for iamount: string, float64, int64, decimal.Decimal,
// *decimal.Decimal. Any other type results in an error.
//
// The returned value is a *big.Int representing amount * 10^18.
func EthToWei(iamount any) (wei *big.Int, err error) {
	base := 10
	amount := decimal.NewFromFloat(0)
	switch v := iamount.(type) {
	case string:
		amount, err = decimal.NewFromString(v)
		if err != nil {
			zap.L().Error("Failed to convert string to decimal", zap.Error(err))
			return nil, err
		}
	case float64:
		amount = decimal.NewFromFloat(v)
	case int64:
		amount = decimal.NewFromFloat(float64(v))
	case decimal.Decimal:
		amount = v
	case *decimal.Decimal:
		amount = *v
	default:
		return nil, errors.New("unsupported amount type")
	}
	dec, pow := float64(10), float64(18)
	mul := decimal.NewFromFloat(dec).Pow(decimal.NewFromFloat(pow))
	result := amount.Mul(mul)

	wei = new(big.Int)
	wei.SetString(result.String(), base)

	return
}

// WeiToEth converts a wei amount (smallest unit, 18 decimals) into ETH as
// a decimal.Decimal with 18 digits of precision.
//
// Supported input types for ivalue: string, *big.Int, int.
// Any other type results in decimal.Zero and logs an error.
func WeiToEth(ivalue any) decimal.Decimal {
	value := new(big.Int)
	base := 10
	switch v := ivalue.(type) {
	case string:
		value.SetString(v, base)
	case *big.Int:
		value = v
	case int:
		value.SetInt64(int64(v))
	default:
		zap.L().Error("Unsupported type")
		return decimal.Zero
	}
	dec, pow := float64(10), float64(18)
	mul := decimal.NewFromFloat(dec).Pow(decimal.NewFromFloat(pow))
	num, err := decimal.NewFromString(value.String())
	if err != nil {
		zap.L().Error("Failed to convert string to decimal", zap.Error(err))
	}
	precision := int32(18)
	result := num.DivRound(mul, precision)

	return result
}

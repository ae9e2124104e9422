package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// TypedDataSigner is the wallet capability consumed by session derivation and
// order building: it reports the wallet's address and produces an EIP-712
// signature over an arbitrary typed-data payload. Implementations are
// host-provided (embedded wallets, custodial integrations); PrivateKeySigner
// below backs the CLI and tests.
type TypedDataSigner interface {
	Address() common.Address
	SignTypedData(data apitypes.TypedData) ([]byte, error)
}

// PrivateKeySigner signs typed data with a raw secp256k1 private key.
type PrivateKeySigner struct {
	key *ecdsa.PrivateKey
}

// NewPrivateKeySigner parses a hex-encoded private key, with or without the
// 0x prefix.
func NewPrivateKeySigner(hexKey string) (*PrivateKeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return &PrivateKeySigner{key: key}, nil
}

// Address returns the signer's checksummed EOA address.
func (s *PrivateKeySigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

// SignTypedData hashes the payload per EIP-712 and signs the digest. The
// recovery byte is normalized to 27/28 as relays expect.
func (s *PrivateKeySigner) SignTypedData(data apitypes.TypedData) ([]byte, error) {
	hash, err := HashTypedData(data)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(hash.Bytes(), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign hash: %w", err)
	}

	if sig[64] < 27 {
		sig[64] += 27
	}

	return sig, nil
}

// HashTypedData computes the EIP-712 digest:
// keccak256(\x19\x01 || domainSeparator || hashStruct(message)).
func HashTypedData(data apitypes.TypedData) (common.Hash, error) {
	domainSeparator, err := data.HashStruct("EIP712Domain", data.Domain.Map())
	if err != nil {
		return common.Hash{}, fmt.Errorf("hash domain: %w", err)
	}

	messageHash, err := data.HashStruct(data.PrimaryType, data.Message)
	if err != nil {
		return common.Hash{}, fmt.Errorf("hash message: %w", err)
	}

	raw := make([]byte, 0, 2+len(domainSeparator)+len(messageHash))
	raw = append(raw, 0x19, 0x01)
	raw = append(raw, domainSeparator...)
	raw = append(raw, messageHash...)

	return crypto.Keccak256Hash(raw), nil
}

// RecoverAddress recovers the address that produced a typed-data signature.
func RecoverAddress(data apitypes.TypedData, sig []byte) (common.Address, error) {
	if len(sig) != 65 {
		return common.Address{}, fmt.Errorf("signature must be 65 bytes, got %d", len(sig))
	}

	hash, err := HashTypedData(data)
	if err != nil {
		return common.Address{}, err
	}

	normalized := make([]byte, 65)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}

	pub, err := crypto.SigToPub(hash.Bytes(), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}

package solana

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// PubkeyLength is the byte length of an ed25519 public key.
const PubkeyLength = 32

// DecodeAddress decodes a base58 address into its 32 raw bytes.
func DecodeAddress(address string) ([]byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	if len(raw) != PubkeyLength {
		return nil, fmt.Errorf("decode address: got %d bytes, want %d", len(raw), PubkeyLength)
	}
	return raw, nil
}

// EncodeAddress encodes 32 raw public key bytes as base58.
func EncodeAddress(raw []byte) string {
	return base58.Encode(raw)
}

// IsOnCurve reports whether the point lies on the ed25519 curve. Keypair
// public keys are on-curve; program derived addresses are not.
func IsOnCurve(point []byte) bool {
	if len(point) != PubkeyLength {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}

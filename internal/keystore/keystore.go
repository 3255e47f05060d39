package keystore

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"solana-wallet-console/internal/solana"
)

// Sentinel errors for credential loading.
var (
	// ErrNotFound is returned when no keypair file exists at the path.
	ErrNotFound = errors.New("keypair file not found")

	// ErrMalformed is returned when the file exists but does not hold a
	// valid ed25519 keypair.
	ErrMalformed = errors.New("malformed keypair file")
)

// keypairLength is seed (32 bytes) followed by the public key (32 bytes),
// the layout solana-keygen writes.
const keypairLength = 64

// Credential holds a loaded signing keypair. The private key is unexported
// and has no accessor: callers can obtain the public address and produce
// signatures, nothing else.
type Credential struct {
	key ed25519.PrivateKey
}

// Pubkey returns the base58 wallet address.
func (c *Credential) Pubkey() string {
	return solana.EncodeAddress(c.key.Public().(ed25519.PublicKey))
}

// Sign signs the message with the wallet key.
func (c *Credential) Sign(message []byte) []byte {
	return ed25519.Sign(c.key, message)
}

// String returns the wallet address, so formatting a Credential with %v or
// %s never exposes key material.
func (c *Credential) String() string {
	return c.Pubkey()
}

// Load reads a keypair file in the Solana CLI format: a JSON array of 64
// byte values, seed first, public key second. A leading ~ in the path is
// expanded to the user home directory.
func Load(path string) (*Credential, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, fmt.Errorf("expand path %s: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, expanded)
		}
		return nil, fmt.Errorf("read keypair file: %w", err)
	}

	// A JSON array of numbers unmarshals into []byte element-wise;
	// values outside 0..255 fail here
	var raw []byte
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(raw) != keypairLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformed, len(raw), keypairLength)
	}

	// The second half must be the public key the seed derives to
	key := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !key.Public().(ed25519.PublicKey).Equal(ed25519.PublicKey(raw[ed25519.SeedSize:])) {
		return nil, fmt.Errorf("%w: public key does not match seed", ErrMalformed)
	}

	return &Credential{key: key}, nil
}

// expandHome replaces a leading ~ with the user home directory.
func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

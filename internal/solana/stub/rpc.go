package stub

import (
	"context"
	"errors"

	"solana-wallet-console/internal/solana"
)

// ErrNotFound is returned when the stub store has no blockhash configured.
var ErrNotFound = errors.New("not found")

// RPCClient implements solana.RPCClient for testing. Each method can fail
// with an injected error, and every call is recorded so tests can assert
// which queries ran and in what order.
type RPCClient struct {
	Balances   map[string]uint64
	Blockhash  *solana.LatestBlockhash
	Signatures map[string][]solana.SignatureInfo

	BalanceErr    error
	BlockhashErr  error
	SignaturesErr error

	Calls []string
}

// NewRPCClient creates a new stub RPC client.
func NewRPCClient() *RPCClient {
	return &RPCClient{
		Balances:   make(map[string]uint64),
		Signatures: make(map[string][]solana.SignatureInfo),
	}
}

// GetBalance retrieves a balance from the stub store. Unknown addresses
// report zero lamports, matching an unfunded account on a live endpoint.
func (c *RPCClient) GetBalance(_ context.Context, address string) (uint64, error) {
	c.Calls = append(c.Calls, "getBalance")
	if c.BalanceErr != nil {
		return 0, c.BalanceErr
	}
	return c.Balances[address], nil
}

// GetLatestBlockhash retrieves the configured blockhash from the stub store.
func (c *RPCClient) GetLatestBlockhash(_ context.Context) (*solana.LatestBlockhash, error) {
	c.Calls = append(c.Calls, "getLatestBlockhash")
	if c.BlockhashErr != nil {
		return nil, c.BlockhashErr
	}
	if c.Blockhash == nil {
		return nil, ErrNotFound
	}
	return c.Blockhash, nil
}

// GetSignaturesForAddress retrieves signatures for an address from the stub store.
func (c *RPCClient) GetSignaturesForAddress(_ context.Context, address string, opts *solana.SignaturesOpts) ([]solana.SignatureInfo, error) {
	c.Calls = append(c.Calls, "getSignaturesForAddress")
	if c.SignaturesErr != nil {
		return nil, c.SignaturesErr
	}

	sigs, ok := c.Signatures[address]
	if !ok {
		return nil, nil
	}

	// Apply limit if specified
	if opts != nil && opts.Limit > 0 && opts.Limit < len(sigs) {
		return sigs[:opts.Limit], nil
	}

	return sigs, nil
}

// SetBalance sets the balance for an address in the stub store.
func (c *RPCClient) SetBalance(address string, lamports uint64) {
	c.Balances[address] = lamports
}

// SetBlockhash sets the blockhash returned by the stub store.
func (c *RPCClient) SetBlockhash(hash string, lastValidBlockHeight uint64) {
	c.Blockhash = &solana.LatestBlockhash{
		Blockhash:            hash,
		LastValidBlockHeight: lastValidBlockHeight,
	}
}

// AddSignatures adds signatures for an address to the stub store.
func (c *RPCClient) AddSignatures(address string, sigs []solana.SignatureInfo) {
	c.Signatures[address] = sigs
}

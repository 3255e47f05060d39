package solana

import "context"

// RPCClient defines the Solana RPC read operations the console consumes.
type RPCClient interface {
	// GetBalance retrieves the lamport balance of an address.
	GetBalance(ctx context.Context, address string) (uint64, error)

	// GetLatestBlockhash retrieves the most recent blockhash known to the
	// endpoint together with the last block height it is valid for.
	GetLatestBlockhash(ctx context.Context) (*LatestBlockhash, error)

	// GetSignaturesForAddress retrieves signatures for an address with
	// pagination, most recent first. An empty history is not an error.
	GetSignaturesForAddress(ctx context.Context, address string, opts *SignaturesOpts) ([]SignatureInfo, error)
}

// LatestBlockhash anchors transaction validity windows.
type LatestBlockhash struct {
	Blockhash            string
	LastValidBlockHeight uint64
}

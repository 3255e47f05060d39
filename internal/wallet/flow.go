package wallet

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"solana-wallet-console/internal/keystore"
	"solana-wallet-console/internal/solana"
)

// Options configures the live wallet query flow.
type Options struct {
	Client      solana.RPCClient
	KeypairPath string
	Out         io.Writer
	Logger      *slog.Logger
}

var _ Capability = (*Flow)(nil)

// Flow is the live Capability. One invocation loads the wallet keypair,
// queries the endpoint and renders a report. Nothing is cached between
// invocations: the keypair is re-read every time.
type Flow struct {
	client      solana.RPCClient
	keypairPath string
	out         io.Writer
	log         *slog.Logger
}

// NewFlow creates the live wallet query capability.
func NewFlow(opts Options) *Flow {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Flow{
		client:      opts.Client,
		keypairPath: opts.KeypairPath,
		out:         opts.Out,
		log:         log,
	}
}

// Run executes the query flow. Every failure is rendered for the user and
// swallowed here: however the flow ends, control returns to the menu.
func (f *Flow) Run(ctx context.Context) error {
	fmt.Fprintln(f.out, "\nSOLANA INTERACTION DEMO")
	fmt.Fprintln(f.out, "======================")
	fmt.Fprintln(f.out)

	// No credential, no queries: the endpoint is never contacted
	cred, err := keystore.Load(f.keypairPath)
	if err != nil {
		f.log.Warn("keypair unavailable", "path", f.keypairPath, "err", err)
		fmt.Fprintf(f.out, "Failed to read keypair from %s\n", f.keypairPath)
		fmt.Fprintln(f.out, "Make sure you've created a wallet using 'solana-keygen new'")
		return nil
	}

	report := f.query(ctx, cred.Pubkey())
	fmt.Fprint(f.out, report.Render())
	return nil
}

// query runs the three read operations in fixed order. A balance failure
// leaves the rest of the flow running; a blockhash failure ends it, since
// without a block reference the remaining context is meaningless. An empty
// signature history is a valid result, not a failure.
func (f *Flow) query(ctx context.Context, address string) *Report {
	report := &Report{Address: address}

	balance, err := f.client.GetBalance(ctx, address)
	if err != nil {
		f.log.Warn("balance query failed", "err", err)
		fmt.Fprintf(f.out, "Failed to get balance: %v\n", err)
	} else {
		report.Balance = &balance
	}

	blockhash, err := f.client.GetLatestBlockhash(ctx)
	if err != nil {
		f.log.Warn("blockhash query failed", "err", err)
		fmt.Fprintf(f.out, "Failed to get recent blockhash: %v\n", err)
		return report
	}
	report.Blockhash = blockhash

	sigs, err := f.client.GetSignaturesForAddress(ctx, address, nil)
	if err != nil {
		f.log.Warn("signature history query failed", "err", err)
		fmt.Fprintf(f.out, "Failed to get transaction history: %v\n", err)
		return report
	}
	report.Signatures = sigs
	report.HasSignatures = true

	return report
}

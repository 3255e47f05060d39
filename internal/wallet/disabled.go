package wallet

import (
	"context"
	"fmt"
	"io"

	"solana-wallet-console/internal/config"
)

var _ Capability = (*Disabled)(nil)

// Disabled is the stub Capability selected when wallet queries are turned
// off. It keeps the menu identical and replaces the flow body with
// instructions for enabling the feature. No endpoint is ever contacted.
type Disabled struct {
	out io.Writer
}

// NewDisabled creates the disabled-stub capability.
func NewDisabled(out io.Writer) *Disabled {
	return &Disabled{out: out}
}

// Run prints how to enable wallet queries.
func (d *Disabled) Run(_ context.Context) error {
	fmt.Fprintln(d.out, "\nSOLANA INTERACTION DEMO")
	fmt.Fprintln(d.out, "======================")
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "Solana features are not enabled. To use Solana features:")
	fmt.Fprintf(d.out, "1. Set wallet.query to \"%s\" in the config file\n", config.QueryEnabled)
	fmt.Fprintf(d.out, "2. Or run with WALLET_QUERY=%s\n", config.QueryEnabled)
	return nil
}

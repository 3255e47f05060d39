package wallet

import "context"

// Capability is the wallet query feature as the menu sees it. The live
// implementation runs the full query flow against an RPC endpoint; the
// disabled one only explains how to turn the feature on. Which one the menu
// gets is decided once at startup from configuration.
type Capability interface {
	Run(ctx context.Context) error
}

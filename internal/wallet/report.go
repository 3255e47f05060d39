package wallet

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"solana-wallet-console/internal/solana"
)

// solDecimals is the fixed scale between lamports and SOL.
const solDecimals = 9

// maxDisplayedSignatures caps the transaction history shown per report.
const maxDisplayedSignatures = 5

// Report holds the results of one wallet query flow invocation. Optional
// fields stay nil when their query failed; the failure itself was already
// reported when it happened. HasSignatures distinguishes "history fetched
// and empty" from "history never fetched".
type Report struct {
	Address       string
	Balance       *uint64
	Blockhash     *solana.LatestBlockhash
	Signatures    []solana.SignatureInfo
	HasSignatures bool
}

// FormatSOL renders a lamport amount as a decimal SOL amount, exact across
// all nine fractional digits: 2500000000 lamports is "2.5".
func FormatSOL(lamports uint64) string {
	return decimal.NewFromUint64(lamports).Shift(-solDecimals).String()
}

// Render produces the user-facing report text.
func (r *Report) Render() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Wallet Public Key: %s\n", r.Address))

	if r.Balance != nil {
		sb.WriteString(fmt.Sprintf("Balance: %s SOL\n", FormatSOL(*r.Balance)))
	}

	if r.Blockhash != nil {
		sb.WriteString(fmt.Sprintf("Recent blockhash: %s\n", r.Blockhash.Blockhash))
	}

	if r.HasSignatures {
		sb.WriteString("\nRecent Transactions:\n")
		if len(r.Signatures) == 0 {
			sb.WriteString("No recent transactions found.\n")
		} else {
			for i, sig := range r.Signatures {
				if i == maxDisplayedSignatures {
					break
				}
				sb.WriteString(fmt.Sprintf("%d. Signature: %s\n", i+1, sig.Signature))
			}
		}
	}

	return sb.String()
}

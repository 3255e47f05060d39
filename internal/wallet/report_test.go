package wallet

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"solana-wallet-console/internal/solana"
)

func TestFormatSOL(t *testing.T) {
	tests := []struct {
		lamports uint64
		want     string
	}{
		{0, "0"},
		{1, "0.000000001"},
		{1000000000, "1"},
		{2500000000, "2.5"},
		{1234567890123, "1234.567890123"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSOL(tt.lamports))
		})
	}
}

func TestReport_Render_CapsAtFive(t *testing.T) {
	sigs := make([]solana.SignatureInfo, 7)
	for i := range sigs {
		sigs[i] = solana.SignatureInfo{Signature: fmt.Sprintf("sig%d", i+1), Slot: int64(200 - i)}
	}

	report := &Report{
		Address:       "addr",
		Signatures:    sigs,
		HasSignatures: true,
	}

	got := report.Render()

	// Exactly five entries, ordinals 1..5, most recent first
	for i := 1; i <= 5; i++ {
		assert.Contains(t, got, fmt.Sprintf("%d. Signature: sig%d", i, i))
	}
	assert.NotContains(t, got, "6. Signature:")
	assert.Equal(t, 5, strings.Count(got, "Signature:"))
}

func TestReport_Render_ShortHistory(t *testing.T) {
	report := &Report{
		Address: "addr",
		Signatures: []solana.SignatureInfo{
			{Signature: "only", Slot: 100},
		},
		HasSignatures: true,
	}

	got := report.Render()
	assert.Contains(t, got, "1. Signature: only")
	assert.Equal(t, 1, strings.Count(got, "Signature:"))
	assert.NotContains(t, got, "No recent transactions found.")
}

func TestReport_Render_EmptyHistory(t *testing.T) {
	report := &Report{
		Address:       "addr",
		HasSignatures: true,
	}

	got := report.Render()
	assert.Contains(t, got, "Recent Transactions:")
	assert.Contains(t, got, "No recent transactions found.")
}

func TestReport_Render_PartialReport(t *testing.T) {
	balance := uint64(2500000000)
	report := &Report{
		Address: "addr",
		Balance: &balance,
	}

	got := report.Render()
	assert.Contains(t, got, "Wallet Public Key: addr")
	assert.Contains(t, got, "Balance: 2.5 SOL")

	// Queries that never completed leave no trace in the report
	assert.NotContains(t, got, "Recent blockhash:")
	assert.NotContains(t, got, "Recent Transactions:")
}

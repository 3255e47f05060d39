package shell

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRunner counts invocations.
type spyRunner struct {
	calls int
	err   error
}

func (r *spyRunner) Run(_ context.Context) error {
	r.calls++
	return r.err
}

func newTestShell(input string) (*Shell, *spyRunner, *spyRunner, *bytes.Buffer) {
	demo := &spyRunner{}
	wallet := &spyRunner{}
	var out bytes.Buffer

	sh := New(Options{
		In:     strings.NewReader(input),
		Out:    &out,
		Demo:   demo,
		Wallet: wallet,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return sh, demo, wallet, &out
}

func TestShell_DispatchDemo(t *testing.T) {
	sh, demo, wallet, _ := newTestShell("1\n3\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, 1, demo.calls)
	assert.Equal(t, 0, wallet.calls)
}

func TestShell_DispatchWallet(t *testing.T) {
	sh, demo, wallet, _ := newTestShell("2\n3\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, 0, demo.calls)
	assert.Equal(t, 1, wallet.calls)
}

func TestShell_Exit(t *testing.T) {
	sh, demo, wallet, out := newTestShell("3\n")

	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, 0, demo.calls)
	assert.Equal(t, 0, wallet.calls)

	// Nothing is printed after the goodbye message
	assert.True(t, strings.HasSuffix(out.String(), "Exiting program. Goodbye!\n"))
}

func TestShell_InvalidChoice(t *testing.T) {
	sh, demo, wallet, out := newTestShell("7\nx\n 2 \n3\n")

	require.NoError(t, sh.Run(context.Background()))

	// Rejections redisplay the menu without running anything
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice. Please select 1, 2, or 3."))
	assert.Equal(t, 4, strings.Count(out.String(), "Choose a demo:"))
	assert.Equal(t, 0, demo.calls)

	// Input is trimmed before matching
	assert.Equal(t, 1, wallet.calls)
}

func TestShell_InputClosed(t *testing.T) {
	sh, _, _, out := newTestShell("")

	err := sh.Run(context.Background())
	require.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, out.String(), "Failed to read input. Exiting.")
}

func TestShell_FinalLineWithoutNewline(t *testing.T) {
	// A last line missing its terminator still dispatches before the
	// stream end is reported
	sh, demo, _, _ := newTestShell("1")

	err := sh.Run(context.Background())
	require.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, 1, demo.calls)
}

func TestShell_RunnerErrorKeepsLooping(t *testing.T) {
	demo := &spyRunner{err: assert.AnError}
	wallet := &spyRunner{}
	var out bytes.Buffer

	sh := New(Options{
		In:     strings.NewReader("1\n1\n3\n"),
		Out:    &out,
		Demo:   demo,
		Wallet: wallet,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, 2, demo.calls)
}

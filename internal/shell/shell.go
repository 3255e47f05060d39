// Package shell is the interactive menu loop: print the choices, read one
// line, dispatch, repeat until the user exits.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrInputClosed is returned when the input stream ends before the user
// picks the exit option. The caller treats it as a normal shutdown.
var ErrInputClosed = errors.New("input stream closed")

// Runner is one menu action.
type Runner interface {
	Run(ctx context.Context) error
}

// Options configures the shell.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Demo   Runner
	Wallet Runner
	Logger *slog.Logger
}

// Shell owns the menu loop. It holds no state between iterations beyond the
// buffered reader position.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	demo   Runner
	wallet Runner
	log    *slog.Logger
}

// New creates a shell over the given streams and menu actions.
func New(opts Options) *Shell {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Shell{
		in:     bufio.NewReader(opts.In),
		out:    opts.Out,
		demo:   opts.Demo,
		wallet: opts.Wallet,
		log:    log,
	}
}

// Run loops over the menu until the user exits. It returns nil on the exit
// option and ErrInputClosed when input ends first; both mean a clean stop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\nChoose a demo:")
		fmt.Fprintln(s.out, "1. Go Basics (variables, functions, structs, enums, collections)")
		fmt.Fprintln(s.out, "2. Solana Interaction (wallet info, balance)")
		fmt.Fprintln(s.out, "3. Exit Program")
		fmt.Fprintln(s.out, "Enter your choice (1-3):")

		line, err := s.in.ReadString('\n')
		choice := strings.TrimSpace(line)

		if err != nil && choice == "" {
			// There is no way to recover a closed stdin; stop cleanly
			fmt.Fprintln(s.out, "Failed to read input. Exiting.")
			return ErrInputClosed
		}

		switch choice {
		case "1":
			if err := s.demo.Run(ctx); err != nil {
				s.log.Warn("demo failed", "err", err)
			}
		case "2":
			if err := s.wallet.Run(ctx); err != nil {
				s.log.Warn("wallet query failed", "err", err)
			}
		case "3":
			fmt.Fprintln(s.out, "Exiting program. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please select 1, 2, or 3.")
		}
	}
}

// Package main runs the interactive console: a three-option menu over a
// language feature demo and a Solana wallet query flow. With no flags and
// no config file it talks to the public devnet using the default keypair.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"solana-wallet-console/internal/basics"
	"solana-wallet-console/internal/config"
	"solana-wallet-console/internal/logger"
	"solana-wallet-console/internal/shell"
	"solana-wallet-console/internal/solana"
	"solana-wallet-console/internal/wallet"
)

func main() {
	// .env fills in where the environment is silent; it never overrides
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("CONSOLE_CONFIG"), "Path to YAML config file")
	rpcEndpoint := flag.String("rpc-endpoint", os.Getenv("SOLANA_RPC_ENDPOINT"), "Solana RPC HTTP endpoint")
	keypairPath := flag.String("keypair", os.Getenv("SOLANA_KEYPAIR_PATH"), "Path to the wallet keypair file")
	queryMode := flag.String("wallet-query", os.Getenv("WALLET_QUERY"), "Wallet query capability: enabled or disabled")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "Log level: debug, info, warn, or error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags and environment win over the file
	if *rpcEndpoint != "" {
		cfg.RPC.Endpoint = *rpcEndpoint
	}
	if *keypairPath != "" {
		cfg.Wallet.KeypairPath = *keypairPath
	}
	if *queryMode != "" {
		cfg.Wallet.Query = *queryMode
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(&logger.Options{Level: logger.ParseLevel(cfg.Log.Level)})
	log := logger.L()

	out := os.Stdout

	// Pick the wallet capability once at startup: the menu stays the same,
	// only the body of option 2 changes
	var walletCap wallet.Capability
	if cfg.Wallet.Query == config.QueryEnabled {
		client := solana.NewHTTPClient(cfg.RPC.Endpoint,
			solana.WithTimeout(cfg.RPC.RequestTimeout.Std()))
		walletCap = wallet.NewFlow(wallet.Options{
			Client:      client,
			KeypairPath: cfg.Wallet.KeypairPath,
			Out:         out,
			Logger:      log,
		})
		log.Debug("wallet queries enabled", "endpoint", cfg.RPC.Endpoint)
	} else {
		walletCap = wallet.NewDisabled(out)
		log.Debug("wallet queries disabled")
	}

	pterm.DefaultHeader.WithFullWidth().Println("Combined Go Basics and Solana Interaction Program")

	sh := shell.New(shell.Options{
		In:     os.Stdin,
		Out:    out,
		Demo:   basics.NewDemo(out),
		Wallet: walletCap,
		Logger: log,
	})

	if err := sh.Run(context.Background()); err != nil {
		// A closed stdin ends the session the same way exit does
		if errors.Is(err, shell.ErrInputClosed) {
			return
		}
		log.Error("shell terminated", "err", err)
		os.Exit(1)
	}
}

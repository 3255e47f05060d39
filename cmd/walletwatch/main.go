// Package main runs the wallet watcher: it subscribes to transaction logs
// and account changes for one wallet over WebSocket and publishes activity
// events to NATS, with Prometheus metrics on the side.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"solana-wallet-console/internal/config"
	"solana-wallet-console/internal/events"
	"solana-wallet-console/internal/keystore"
	"solana-wallet-console/internal/logger"
	"solana-wallet-console/internal/observability"
	"solana-wallet-console/internal/solana"
	"solana-wallet-console/internal/wallet"
)

func main() {
	_ = godotenv.Load()

	address := flag.String("address", os.Getenv("WATCH_ADDRESS"), "Wallet address to watch (default: derived from the keypair)")
	keypairPath := flag.String("keypair", os.Getenv("SOLANA_KEYPAIR_PATH"), "Path to the wallet keypair file")
	rpcEndpoint := flag.String("rpc-endpoint", os.Getenv("SOLANA_RPC_ENDPOINT"), "Solana RPC HTTP endpoint")
	wsEndpoint := flag.String("ws-endpoint", os.Getenv("SOLANA_WS_ENDPOINT"), "Solana WebSocket endpoint")
	natsURL := flag.String("nats-url", os.Getenv("NATS_URL"), "NATS server URL (empty for the local default)")
	subject := flag.String("subject", os.Getenv("NATS_SUBJECT"), "NATS subject for activity events")
	historyLimit := flag.Int("history-limit", 5, "Number of recent signatures to fetch at startup")
	metricsAddr := flag.String("metrics-addr", ":9090", "Prometheus metrics HTTP address (empty to disable)")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "Log level: debug, info, warn, or error")

	flag.Parse()

	logger.Init(&logger.Options{Level: logger.ParseLevel(*logLevel)})
	log := logger.L()

	// Start metrics server if enabled
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			log.Info("starting metrics server", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server error", "err", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Handle shutdown signals with graceful timeout
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel to signal main goroutine completion
	done := make(chan error, 1)

	go func() {
		sig := <-sigCh
		log.Info("received signal, initiating graceful shutdown", "signal", sig)
		cancel()

		// Wait for second signal for immediate shutdown
		select {
		case sig := <-sigCh:
			log.Warn("received second signal, forcing immediate shutdown", "signal", sig)
			os.Exit(1)
		case <-time.After(30 * time.Second):
			log.Warn("graceful shutdown timed out after 30s, forcing exit")
			os.Exit(1)
		case <-done:
			// Normal shutdown completed
		}
	}()

	err := runWatch(ctx, watchOptions{
		Address:      *address,
		KeypairPath:  *keypairPath,
		RPCEndpoint:  *rpcEndpoint,
		WSEndpoint:   *wsEndpoint,
		NATSURL:      *natsURL,
		Subject:      *subject,
		HistoryLimit: *historyLimit,
	})

	// Signal completion to shutdown handler
	done <- err
	cancel()

	if err != nil && err != context.Canceled {
		log.Error("watcher error", "err", err)
		os.Exit(1)
	}

	log.Info("shutdown complete")
}

type watchOptions struct {
	Address      string
	KeypairPath  string
	RPCEndpoint  string
	WSEndpoint   string
	NATSURL      string
	Subject      string
	HistoryLimit int
}

// runWatch resolves the watched address, takes an RPC snapshot, then streams
// transaction logs and account updates until the context is cancelled.
func runWatch(ctx context.Context, opts watchOptions) error {
	log := logger.L()

	if opts.RPCEndpoint == "" {
		return fmt.Errorf("--rpc-endpoint is required")
	}
	if opts.WSEndpoint == "" {
		return fmt.Errorf("--ws-endpoint is required")
	}

	// No --address means watch your own wallet
	address := opts.Address
	if address == "" {
		path := opts.KeypairPath
		if path == "" {
			path = config.DefaultKeypairPath
		}
		cred, err := keystore.Load(path)
		if err != nil {
			return fmt.Errorf("resolve watch address from keypair: %w", err)
		}
		address = cred.Pubkey()
	}

	raw, err := solana.DecodeAddress(address)
	if err != nil {
		return fmt.Errorf("invalid watch address %q: %w", address, err)
	}
	if !solana.IsOnCurve(raw) {
		log.Warn("watch address is off-curve (program-derived, not a user wallet)", "address", address)
	}

	log.Info("watching wallet", "address", address)

	rpc := solana.NewHTTPClient(opts.RPCEndpoint)

	emitter, err := events.NewNATSEmitter(opts.NATSURL, opts.Subject)
	if err != nil {
		return err
	}
	defer emitter.Close()

	ws, err := solana.NewWSClient(ctx, opts.WSEndpoint, nil)
	if err != nil {
		return fmt.Errorf("create websocket client: %w", err)
	}
	defer ws.Close()

	// Snapshot current state before streaming so operators see where the
	// wallet stands at startup
	start := time.Now()
	balance, err := rpc.GetBalance(ctx, address)
	observability.RecordRPCLatency("getBalance", time.Since(start).Seconds())
	if err != nil {
		log.Warn("initial balance query failed", "err", err)
	} else {
		observability.RecordAccountUpdate(balance)
		log.Info("initial balance", "sol", wallet.FormatSOL(balance))
	}

	start = time.Now()
	sigs, err := rpc.GetSignaturesForAddress(ctx, address, &solana.SignaturesOpts{Limit: opts.HistoryLimit})
	observability.RecordRPCLatency("getSignaturesForAddress", time.Since(start).Seconds())
	if err != nil {
		log.Warn("initial history query failed", "err", err)
	} else if len(sigs) > 0 {
		observability.UpdateHighestSlot(sigs[0].Slot)
		log.Info("recent history", "count", len(sigs), "latest", sigs[0].Signature)
	}

	logsCh, err := ws.SubscribeLogs(ctx, solana.LogsFilter{Mentions: []string{address}})
	if err != nil {
		return fmt.Errorf("subscribe to logs: %w", err)
	}

	acctCh, err := ws.SubscribeAccount(ctx, address)
	if err != nil {
		return fmt.Errorf("subscribe to account: %w", err)
	}

	log.Info("streaming wallet activity")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case n := <-logsCh:
			observability.RecordLogsNotification()
			observability.UpdateHighestSlot(n.Slot)
			if n.Err != nil {
				log.Debug("skipping failed transaction", "signature", n.Signature)
				continue
			}
			event := events.NewTransactionEvent(address, n.Signature, n.Slot)
			publishErr := emitter.Emit(event)
			if publishErr != nil {
				log.Warn("publish transaction event failed", "err", publishErr)
			}
			observability.RecordPublish(publishErr)
			observability.MarkEventSeen(event.Timestamp)
			log.Info("transaction observed", "signature", n.Signature, "slot", n.Slot)

		case a := <-acctCh:
			observability.RecordAccountUpdate(a.Lamports)
			observability.UpdateHighestSlot(a.Slot)
			event := events.NewBalanceEvent(address, a.Lamports, a.Slot)
			publishErr := emitter.Emit(event)
			if publishErr != nil {
				log.Warn("publish balance event failed", "err", publishErr)
			}
			observability.RecordPublish(publishErr)
			observability.MarkEventSeen(event.Timestamp)
			log.Info("balance changed", "sol", wallet.FormatSOL(a.Lamports), "slot", a.Slot)
		}
	}
}

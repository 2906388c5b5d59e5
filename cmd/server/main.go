package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lexgraph/lexgraph"
	"github.com/lexgraph/lexgraph/helper"
)

func main() {
	defaultAddr := os.Getenv("LEXGRAPH_ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8080"
	}
	addr := flag.String("addr", defaultAddr, "Listen address")
	diagnose := flag.Bool("diagnose", false, "Probe the graph and vector stores on startup")
	flag.Parse()

	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	cfg := lexgraph.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	kb, err := lexgraph.New(ctx, cfg)
	cancel()
	if err != nil {
		logger.Error("Creating knowledge base failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer kb.Close(context.Background())

	if *diagnose {
		kb.DiagnoseStores(context.Background())
	}

	h := newHandler(kb, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /query", h.handleQuery)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /ws", h.handleWebsocket)

	var handler http.Handler = mux
	handler = logMiddleware(logger, handler)
	handler = recoveryMiddleware(logger, handler)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // answer generation can be long
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGTERM/SIGINT.
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", slog.String("addr", *addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.Any("error", err))
	}

	logger.Info("Server stopped")
}

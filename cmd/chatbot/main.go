// Command chatbot runs the conversational booking-assistant backend:
// an HTTP chat endpoint backed by an LLM tool-calling orchestrator, plus
// the mock downstream booking service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/laichithien/chatbot-customer-service/internal/config"
	"github.com/laichithien/chatbot-customer-service/internal/conversation"
	"github.com/laichithien/chatbot-customer-service/internal/orchestrator"
	"github.com/laichithien/chatbot-customer-service/internal/orchestrator/adapter"
	"github.com/laichithien/chatbot-customer-service/internal/provider"
	"github.com/laichithien/chatbot-customer-service/internal/server"
	"github.com/laichithien/chatbot-customer-service/internal/tool/booking"
	"github.com/laichithien/chatbot-customer-service/internal/tool/faq"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	llm, err := provider.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize provider: %w", err)
	}

	tools, err := createTools(cfg)
	if err != nil {
		return fmt.Errorf("initialize tools: %w", err)
	}

	store := conversation.NewStore()
	orch := orchestrator.New(llm, store, tools, cfg.ProviderTimeout())

	if err := llm.DefineTools(ctx, orch.ToolDefinitions()); err != nil {
		return fmt.Errorf("register tool schemas: %w", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server.NewServer(orch, cfg),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "model", llm.GetModel())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// createTools wires the concrete tools behind their adapters.
func createTools(cfg *config.Config) ([]adapter.Tool, error) {
	kb, err := faq.Default()
	if err != nil {
		return nil, err
	}

	bookingClient := booking.NewHTTPClient(cfg.BookingAPIBaseURL, cfg.BookingTimeout())
	bookingService := booking.NewService(bookingClient)

	return []adapter.Tool{
		adapter.NewFAQAnswer(kb),
		adapter.NewInitiateChangeFlow(bookingService),
		adapter.NewProvideBookingID(bookingService),
		adapter.NewConfirmChange(bookingService),
	}, nil
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

// Command playground runs the multi-provider chat playground: a small HTTP
// server exposing a session UI and a JSON chat API over the four supported
// LLM vendors.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/veebee17/my-llm-project1/core/config"
	"github.com/veebee17/my-llm-project1/core/dispatch"
	"github.com/veebee17/my-llm-project1/internal/server"
	"github.com/veebee17/my-llm-project1/providers/observability"
	"github.com/veebee17/my-llm-project1/providers/observability/slogobs"
)

const shutdownGrace = 10 * time.Second

func main() {
	var (
		listenAddr  string
		secretsFile string
		envFile     string
	)

	root := &cobra.Command{
		Use:          "playground",
		Short:        "Chat playground over OpenAI, Anthropic, Google, and Groq",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), listenAddr, secretsFile, envFile)
		},
	}
	root.Flags().StringVar(&listenAddr, "listen", ":8080", "address to serve HTTP on")
	root.Flags().StringVar(&secretsFile, "secrets", "", "optional secrets file with an api_keys section")
	root.Flags().StringVar(&envFile, "env-file", "", "optional dotenv file loaded before credential resolution")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, listenAddr, secretsFile, envFile string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	creds, err := config.NewResolverWithSecrets(secretsFile)
	if err != nil {
		return err
	}

	observer := slogobs.New()
	ctx = observability.ContextWithObserver(ctx, observer)

	dispatcher := dispatch.New(creds)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           server.New(creds, dispatcher, observer).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	for name, configured := range creds.Status() {
		observer.Info(ctx, "Credential status",
			observability.String("service", name),
			observability.Bool("configured", configured),
		)
	}

	errCh := make(chan error, 1)
	go func() {
		observer.Info(ctx, "Playground listening", observability.String("addr", listenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	observer.Info(ctx, "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

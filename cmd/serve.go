package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/server"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluator over a JSON HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	addr := flagServeAddr
	if addr == "" {
		addr = appConfig.Server.Addr
	}

	svc := server.New(server.Config{Addr: addr, Quiet: flagQuiet})

	fmt.Printf("  evm API listening on http://%s\n", svc.Addr())
	fmt.Println("  Endpoints: /v1/evaluate /v1/series /v1/context /v1/presets /v1/status /healthz")
	fmt.Println("  Stop with Ctrl+C")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

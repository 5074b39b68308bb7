package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/synapse-hq/synapse/internal/search"
	"github.com/synapse-hq/synapse/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the synapse HTTP server with search, upload and stats endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		embedder, err := createEmbedder(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}

		store, err := openStore(context.Background(), cfg, embedder)
		if err != nil {
			return err
		}

		reg, err := openRegistry(cfg)
		if err != nil {
			return fmt.Errorf("opening registry: %w", err)
		}
		defer reg.Close()

		ingestor, err := buildIngestor(cfg, embedder, store, reg)
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Port
		}

		srv := server.New(server.Config{
			Port:             port,
			DataDir:          cfg.DataDir,
			AllowAll:         cfg.AllowAllOrigins,
			DefaultThreshold: cfg.MatchThreshold,
			DefaultCount:     cfg.MatchCount,
			MaxUploadBytes:   cfg.MaxUploadBytes,
		}, ingestor, search.NewPlanner(embedder, store), store, reg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "synapse server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Data: %s\n", cfg.DataDir)
		fmt.Fprintf(os.Stderr, "  Chunks indexed: %d\n", store.Count())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

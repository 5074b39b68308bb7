package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synapse-hq/synapse/internal/mcp"
	"github.com/synapse-hq/synapse/internal/search"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Starts a Model Context Protocol server exposing document search tools
to AI agents. Communication happens over stdin/stdout, so this command
is meant to be launched by an MCP client rather than interactively.`,
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

		mcp.Version = Version
		srv := mcp.NewServer(search.NewPlanner(embedder, store), reg, cfg.MatchThreshold, cfg.MatchCount)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synapse-hq/synapse/internal/search"
)

var (
	searchLimit     int
	searchThreshold float64
	searchTopic     string
	searchProject   string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the indexed documents",
	Long:  `Runs a semantic similarity search over all ingested chunks and prints the matches grouped by source file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		embedder, err := createEmbedder(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}

		ctx := cmd.Context()
		store, err := openStore(ctx, cfg, embedder)
		if err != nil {
			return err
		}

		params := search.Params{
			Query:     strings.Join(args, " "),
			Threshold: cfg.MatchThreshold,
			Limit:     cfg.MatchCount,
			Topic:     searchTopic,
			Project:   searchProject,
		}
		if cmd.Flags().Changed("threshold") {
			params.Threshold = searchThreshold
		}
		if cmd.Flags().Changed("limit") {
			params.Limit = searchLimit
		}

		planner := search.NewPlanner(embedder, store)
		hits, err := planner.Search(ctx, params)
		if err != nil {
			return err
		}

		resp := search.Aggregate(params.Query, hits)
		if searchJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		fmt.Print(search.FormatGroups(resp))
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of chunks to return")
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", 0.5, "minimum similarity in [0, 1]")
	searchCmd.Flags().StringVar(&searchTopic, "topic", "", "only return chunks tagged with this topic")
	searchCmd.Flags().StringVar(&searchProject, "project", "", "only return chunks tagged with this project")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(searchCmd)
}

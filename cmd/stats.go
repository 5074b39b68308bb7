package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reg, err := openRegistry(cfg)
		if err != nil {
			return fmt.Errorf("opening registry: %w", err)
		}
		defer reg.Close()

		ctx := cmd.Context()
		stats, err := reg.Stats(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Documents: %d\n", stats.Documents)
		fmt.Printf("Chunks:    %d\n", stats.Chunks)

		topics, err := reg.DistinctTopics(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Topics:    %d", len(topics))
		if len(topics) > 0 {
			fmt.Printf(" (%s)", strings.Join(topics, ", "))
		}
		fmt.Println()

		projects, err := reg.DistinctProjects(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Projects:  %d", len(projects))
		if len(projects) > 0 {
			fmt.Printf(" (%s)", strings.Join(projects, ", "))
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/synapse-hq/synapse/internal/extract"
	"github.com/synapse-hq/synapse/internal/ingest"
	"github.com/synapse-hq/synapse/internal/progress"
	"github.com/synapse-hq/synapse/internal/walker"
)

var (
	ingestTopic   string
	ingestProject string
	ingestInclude []string
	ingestExclude []string
	ingestYes     bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <path>",
	Short: "Ingest a document or folder into the index",
	Long: `Extracts text from PDF, DOCX, text and Markdown files, splits it into
overlapping chunks, embeds them, and stores the result. Given a folder,
every supported file underneath it is ingested.`,
	Args: cobra.ExactArgs(1),
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

		reg, err := openRegistry(cfg)
		if err != nil {
			return fmt.Errorf("opening registry: %w", err)
		}
		defer reg.Close()

		ingestor, err := buildIngestor(cfg, embedder, store, reg)
		if err != nil {
			return err
		}

		files, err := collectFiles(args[0], cfg.MaxUploadBytes)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no supported documents found under %s", args[0])
		}

		fmt.Fprintf(os.Stderr, "Found %d documents to ingest:\n", len(files))
		for _, f := range files {
			fmt.Fprintf(os.Stderr, "  %s (%d bytes)\n", f.RelPath, f.Size)
		}

		if !ingestYes {
			confirm := promptui.Prompt{
				Label:     "Continue",
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				fmt.Fprintln(os.Stderr, "Aborted.")
				return nil
			}
		}

		reporter := progress.NewReporter()
		reporter.Start(len(files))

		var ingested, skipped, totalChunks int
		for _, f := range files {
			res, err := ingestFile(ctx, ingestor, f)
			if err != nil {
				skipped++
				reporter.Skip(f.RelPath)
				if verbose || !errors.Is(err, ingest.ErrEmptyDocument) {
					fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", f.RelPath, err)
				}
				continue
			}
			ingested++
			totalChunks += res.ChunksCreated
			reporter.Done(f.RelPath, res.ChunksCreated)
		}
		reporter.Finish()

		if ingested > 0 {
			if err := store.Persist(ctx, cfg.DataDir); err != nil {
				return fmt.Errorf("persisting vector store: %w", err)
			}
		}

		fmt.Printf("Ingested %d documents (%d chunks), skipped %d.\n", ingested, totalChunks, skipped)
		return nil
	},
}

// collectFiles resolves the path argument to the list of documents to
// ingest: the file itself, or a filtered walk when given a directory.
func collectFiles(path string, maxSize int64) ([]walker.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(path))
		if !extract.Supported(ext) {
			return nil, fmt.Errorf("%s: %w", path, extract.ErrUnsupportedFormat)
		}
		return []walker.FileInfo{{
			Path:    path,
			RelPath: path,
			Size:    info.Size(),
			Ext:     ext,
		}}, nil
	}

	return walker.Walk(walker.Config{
		RootDir:     path,
		Include:     ingestInclude,
		Exclude:     ingestExclude,
		MaxFileSize: maxSize,
	})
}

func ingestFile(ctx context.Context, ingestor *ingest.Ingestor, f walker.FileInfo) (*ingest.Result, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}

	text, err := extract.Text(data, f.Ext)
	if err != nil {
		return nil, err
	}

	return ingestor.Ingest(ctx, f.RelPath, text, ingestTopic, ingestProject)
}

func init() {
	ingestCmd.Flags().StringVar(&ingestTopic, "topic", "", "topic tag for the ingested documents")
	ingestCmd.Flags().StringVar(&ingestProject, "project", "", "project tag for the ingested documents")
	ingestCmd.Flags().StringSliceVar(&ingestInclude, "include", nil, "glob patterns to include (folder mode)")
	ingestCmd.Flags().StringSliceVar(&ingestExclude, "exclude", nil, "glob patterns to exclude (folder mode)")
	ingestCmd.Flags().BoolVarP(&ingestYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(ingestCmd)
}

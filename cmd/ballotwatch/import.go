package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/miguel/ballotwatch/internal/db"
	"github.com/miguel/ballotwatch/internal/ingestion"
	"github.com/miguel/ballotwatch/internal/schemas"
	"github.com/miguel/ballotwatch/internal/types"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk import candidates from a JSON file into the database",
	Long: `Validates a JSON file of candidate entries against the import schema and
loads them into the database. The whole file is validated before any row is
written, so a bad entry rejects the batch.`,
	RunE: runImport,
}

var (
	importFile        string
	importDatabaseURL string
)

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to candidates JSON file (required)")
	importCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	if err := importCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read import file %s: %w", importFile, err)
	}

	if err := schemas.ValidateCandidateImport(string(data)); err != nil {
		return fmt.Errorf("import file failed schema validation: %w", err)
	}

	var entries []types.CreateCandidateRequest
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	if importDatabaseURL == "" {
		importDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if importDatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, importDatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	for _, entry := range entries {
		biography, err := ingestion.ExtractBiographyText(entry.Biography)
		if err != nil {
			return fmt.Errorf("invalid biography for %s: %w", entry.Username, err)
		}

		candidate := db.Candidate{
			Username:  entry.Username,
			FullName:  entry.FullName,
			Position:  entry.Position,
			Party:     entry.Party,
			Biography: biography,
		}

		id, err := database.CreateCandidate(ctx, &candidate)
		if err != nil {
			return fmt.Errorf("failed to import candidate %s: %w", entry.Username, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Imported %s (%s)\n", entry.Username, id)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully imported %d candidates\n", len(entries))
	return nil
}

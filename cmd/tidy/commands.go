package main

import (
	"context"
	"fmt"
	"time"

	"lawlex/internal/catalog"
	"lawlex/internal/config"
	"lawlex/internal/domain"
	"lawlex/internal/repository/file"
	"lawlex/internal/repository/postgres"
	"lawlex/internal/tidy"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tidy",
		Short: "Maintain the Myanmar-English law dictionary data",
		Long: `tidy checks and repairs the dictionary JSON file served by the bot
and can seed the PostgreSQL terms table from it.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newCheckCmd(logger),
		newFixCmd(logger),
		newSeedCmd(logger),
	)
	return rootCmd
}

// readTerms loads a dictionary file the same way the bot does
func readTerms(ctx context.Context, path string) ([]domain.Term, error) {
	return file.NewTermSource(path).FetchTerms(ctx)
}

func newCheckCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate every record and report what fix would change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := readTerms(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			store := catalog.NewStore(logger)
			if err := store.Load(terms); err != nil {
				return err
			}

			untyped, misspelled := 0, 0
			for _, t := range terms {
				if t.Type == "" {
					untyped++
				}
				if _, ok := tidy.Correction(t.Word); ok {
					misspelled++
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d terms, %d without type, %d misspelled\n", args[0], store.Len(), untyped, misspelled)
			return nil
		},
	}
}

func newFixCmd(logger *zap.Logger) *cobra.Command {
	var (
		output string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "fix <file>",
		Short: "Correct known misspellings and fill in missing types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			terms, err := readTerms(cmd.Context(), input)
			if err != nil {
				return err
			}

			report := tidy.Apply(terms)
			fmt.Fprintf(cmd.OutOrStdout(), "corrected %d words, filled %d types\n", report.Corrected, report.Typed)

			if dryRun {
				return nil
			}
			if output == "" {
				output = input
			}
			if err := file.WriteTerms(output, terms); err != nil {
				return err
			}

			logger.Info("Dictionary fixed",
				zap.String("input", input),
				zap.String("output", output),
				zap.Int("corrected", report.Corrected),
				zap.Int("typed", report.Typed),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result here instead of overwriting the input")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing")
	return cmd
}

func newSeedCmd(logger *zap.Logger) *cobra.Command {
	var (
		migrations string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Replace the PostgreSQL terms table with the contents of a dictionary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			terms, err := readTerms(ctx, args[0])
			if err != nil {
				return err
			}
			// Reject the file before touching the table
			if err := catalog.NewStore(logger).Load(terms); err != nil {
				return err
			}

			dbCfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}

			db, err := postgres.Connect(dbCfg.DSN(), 5, 2*time.Second, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(db, migrations, logger); err != nil {
				return err
			}

			repo := postgres.NewTermRepo(db)
			if err := repo.ReplaceAll(ctx, terms); err != nil {
				return err
			}

			count, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d terms into %s\n", count, repo.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&migrations, "migrations", "file://migrations", "migration source URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	return cmd
}

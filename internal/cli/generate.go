package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-creditgen/internal/credit"
	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
	"github.com/pgEdge/pgedge-creditgen/internal/db"
	"github.com/pgEdge/pgedge-creditgen/internal/export"
	"github.com/pgEdge/pgedge-creditgen/internal/logging"
)

var (
	genRows         int
	genOutput       string
	genSeed         uint64
	genOutlierRate  float64
	genPreview      int
	genDelimiter    string
	genAsOf         string
	genLoad         bool
	genTable        string
	genDropExisting bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the credit profile dataset",
	Long: `Generate a table of synthetic credit profiles, write it to a
delimited file (overwriting any existing file) and print the credit
score distribution with a preview of the first rows.

With --load, the table is also copied into PostgreSQL.

Example:
  pgedge-creditgen generate --rows 50000 --seed 42 --output profiles.csv
  pgedge-creditgen generate --load --connection "postgres://..." --drop-existing`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&genRows, "rows", 0,
		"number of customer profiles (default: 10000)")
	cmd.Flags().StringVar(&genOutput, "output", "",
		"output file path (default: enhanced_credit_risk_data.csv)")
	cmd.Flags().Uint64Var(&genSeed, "seed", 0,
		"random seed for a reproducible dataset (0 = seed from clock)")
	cmd.Flags().Float64Var(&genOutlierRate, "outlier-rate", -1,
		"fraction of rows with inflated income and debt (default: 0.01)")
	cmd.Flags().IntVar(&genPreview, "preview", -1,
		"number of rows to preview on the console (default: 5)")
	cmd.Flags().StringVar(&genDelimiter, "delimiter", "",
		"output field delimiter (default: ,)")
	cmd.Flags().StringVar(&genAsOf, "as-of", "",
		"reference time for bankruptcy dates, RFC 3339 or YYYY-MM-DD (default: now)")
	cmd.Flags().BoolVar(&genLoad, "load", false,
		"copy the dataset into PostgreSQL after writing the file")
	cmd.Flags().StringVar(&genTable, "table", "",
		"destination table for --load (default: credit_profiles)")
	cmd.Flags().BoolVar(&genDropExisting, "drop-existing", false,
		"drop the destination table before loading")
}

func applyGenerateFlags() {
	if genRows > 0 {
		cfg.Generate.Rows = genRows
	}
	if genOutput != "" {
		cfg.Generate.Output = genOutput
	}
	if genSeed > 0 {
		cfg.Generate.Seed = genSeed
	}
	if genOutlierRate >= 0 {
		cfg.Generate.OutlierRate = genOutlierRate
	}
	if genPreview >= 0 {
		cfg.Generate.PreviewRows = genPreview
	}
	if genDelimiter != "" {
		cfg.Generate.Delimiter = genDelimiter
	}
	if genAsOf != "" {
		cfg.Generate.AsOf = genAsOf
	}
	if genLoad {
		cfg.Load.Enabled = true
	}
	if genTable != "" {
		cfg.Load.Table = genTable
	}
	if genDropExisting {
		cfg.Load.DropExisting = true
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyGenerateFlags()

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}
	if cfg.Load.Enabled {
		if err := cfg.ValidateLoad(); err != nil {
			return err
		}
	}

	seed := cfg.Generate.Seed
	if seed == 0 {
		seed = datagen.ClockSeed()
	}

	asOf, err := cfg.AsOfTime()
	if err != nil {
		return err
	}

	params := credit.DefaultParams()
	params.OutlierRate = cfg.Generate.OutlierRate

	logging.Info().
		Int("rows", cfg.Generate.Rows).
		Uint64("seed", seed).
		Str("as_of", asOf.Format(time.RFC3339)).
		Str("output", cfg.Generate.Output).
		Msg("Starting generation")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	gen := credit.NewGenerator(datagen.NewFakerWithSeed(seed), params).
		WithClock(func() time.Time { return asOf })
	table, err := gen.Generate(ctx, cfg.Generate.Rows)
	if err != nil {
		return fmt.Errorf("failed to generate profiles: %w", err)
	}

	if err := export.WriteCSV(cfg.Generate.Output, cfg.DelimiterRune(), table); err != nil {
		return err
	}

	if err := credit.WriteSummary(cmd.OutOrStdout(), table, cfg.Generate.PreviewRows); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	if cfg.Load.Enabled {
		if err := loadTable(ctx, table, seed); err != nil {
			return err
		}
	}

	return nil
}

func loadTable(ctx context.Context, table *credit.Table, seed uint64) error {
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Load.DropExisting {
		logging.Info().
			Str("table", cfg.Load.Table).
			Msg("Dropping existing table")
		if err := db.DropSchema(ctx, pool, cfg.Load.Table); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	if err := db.CreateSchema(ctx, pool, cfg.Load.Table); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	if _, err := db.LoadProfiles(ctx, pool, cfg.Load.Table, table); err != nil {
		return err
	}

	meta := db.RunMetadata{
		Table:  cfg.Load.Table,
		Rows:   table.Len(),
		Seed:   seed,
		AsOf:   table.GeneratedAt,
		Output: cfg.Generate.Output,
	}
	if err := db.SaveMetadata(ctx, pool, meta); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	return nil
}

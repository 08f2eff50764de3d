//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-creditgen.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-creditgen/internal/config"
	"github.com/pgEdge/pgedge-creditgen/internal/credit"
	"github.com/pgEdge/pgedge-creditgen/internal/logging"
	"github.com/pgEdge/pgedge-creditgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-creditgen",
		Short: "Synthetic consumer credit profile generator",
		Long: `pgedge-creditgen generates a table of simulated consumer credit
profiles for credit-risk modeling experiments. Each customer gets
correlated income, debt, credit score and payment history attributes,
and the result is written to a delimited file with a console summary.

Run without a subcommand to generate the default dataset.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. An interrupt cancels generation between
// stages.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-creditgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string for --load")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(bandsCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "List credit score bands",
	Long: `List the five credit score bands. The weights are the population
shares used to draw base scores; the ranges are also the edges used to
label final scores.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Credit score bands:")
		cmd.Println()
		for _, b := range credit.ScoreBands {
			upper := "<"
			if b.Max == credit.MaxScore {
				upper = "<="
			}
			cmd.Printf("  %-10s %3.0f <= score %-2s %3.0f  (weight %d%%)\n",
				b.Label, b.Min, upper, b.Max, b.Weight)
		}
	},
}

// Package main provides the CLI entry point for platesort.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/platekit/platesort/pkg/platesort"
	"github.com/platekit/platesort/pkg/platesort/layout"
)

var (
	outputPath string
	mode       string
	headerRow  int
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "platesort [input.xlsx|input.csv]",
		Short: "Reorder plate sample sheets between 96-well and 384-well layouts",
		Long: `platesort locates the header row of a sample sheet, reconciles its
columns onto the Plate / 96 Well / 384 Well fields, and writes the rows
reordered for the selected layout.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "sorted_plate_layout.xlsx", "Output file path")
	rootCmd.Flags().StringVar(&mode, "mode", "96-well", "Layout mode: 96-well or 384-well")
	rootCmd.Flags().IntVar(&headerRow, "header", -1, "0-based header row (default: auto-detect)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := newLogger()
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := platesort.DefaultOptions()
	switch mode {
	case "96-well":
		opts.Mode = layout.Mode96
	case "384-well":
		opts.Mode = layout.Mode384
	default:
		return fmt.Errorf("invalid mode: %s (must be 96-well or 384-well)", mode)
	}
	if headerRow >= 0 {
		opts = opts.WithHeaderRow(headerRow)
	}

	res, err := platesort.Process(inputPath, opts)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	log.Debug().
		Int("header_row", res.HeaderRow).
		Int("rows", len(res.Table.Rows)).
		Str("mode", string(opts.Mode)).
		Msg("table processed")
	for _, w := range res.Warnings {
		log.Warn().Msg(w)
	}

	data, err := platesort.Export(res)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info().Str("path", outputPath).Msg("sorted sheet written")
	return nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

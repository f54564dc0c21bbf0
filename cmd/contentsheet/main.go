// Package main provides the CLI entry point for contentsheet-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/contentsheet-go/internal/config"
	"github.com/ukaji3/contentsheet-go/internal/logger"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/export"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/media"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/normalize"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/output"
	"go.uber.org/zap"
)

var errValidation = errors.New("workbook has validation issues, not saving")

var (
	configPath string
	logLevel   string
	prefix     string
	outputDir  string
	mediaURL   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contentsheet",
		Short: "Validate content workbooks and export them as import bundles",
		Long: `contentsheet-go cleans multilingual chat content workbooks (keywords, languages,
titles, missing translations) and exports them as JSON import bundles, one per
destination number listed in the ImportInfo sheet.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	normalizeCmd := &cobra.Command{
		Use:   "normalize [workbook.xlsx]",
		Short: "Validate and clean a content workbook",
		Long: `normalize runs every cleaning pass over the workbook, prints every issue found,
and writes the cleaned copy next to the input only when there were no issues.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNormalize,
	}
	normalizeCmd.Flags().StringVar(&prefix, "prefix", "", "File name prefix of the cleaned workbook (default \"2\")")

	exportCmd := &cobra.Command{
		Use:   "export [workbook.xlsx]",
		Short: "Export a content workbook as JSON import bundles",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the bundle files (default \".\")")
	exportCmd.Flags().StringVar(&mediaURL, "media-url", "", "Media export endpoint")

	rootCmd.AddCommand(normalizeCmd, exportCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setup(args []string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if len(args) == 1 {
		cfg.Workbook = args[0]
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(args)
	if err != nil {
		return err
	}
	defer log.Sync()
	if prefix != "" {
		cfg.OutputPrefix = prefix
	}

	doc, err := contentsheet.Open(cfg.Workbook)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer doc.Close()

	report, err := normalize.Run(doc.Workbook, cfg.Options(), log)
	if err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}
	if err := report.Err(); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), err)
		return fmt.Errorf("%w: %d issue(s)", errValidation, report.Len())
	}

	outPath := contentsheet.PrefixedPath(cfg.Workbook, cfg.OutputPrefix)
	if err := doc.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Info("saved cleaned workbook", zap.String("path", outPath))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(args)
	if err != nil {
		return err
	}
	defer log.Sync()
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if mediaURL != "" {
		cfg.MediaURL = mediaURL
	}

	client := media.NewClient(cfg.MediaURL, cfg.Token, cfg.RequestTimeout)
	catalog, err := client.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch media: %w", err)
	}
	log.Info("fetched media catalog", zap.Int("entries", len(catalog)))

	doc, err := contentsheet.Open(cfg.Workbook)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer doc.Close()

	result, err := export.New(cfg.Options(), catalog, log).Export(doc.Workbook)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	for _, out := range result.Outputs {
		path, err := output.WriteBundle(cfg.OutputDir, out.Filename, out.Bundle)
		if err != nil {
			return fmt.Errorf("failed to write bundle: %w", err)
		}
		log.Info("wrote bundle", zap.String("path", path), zap.Int("content", len(out.Bundle.Data)))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "done")
	return output.RenderSummary(cmd.OutOrStdout(), result.Stats)
}

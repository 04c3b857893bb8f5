package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vehicle-wrangler/charts"
	"vehicle-wrangler/config"
	"vehicle-wrangler/models"
	"vehicle-wrangler/renderer"
	"vehicle-wrangler/services"
	"vehicle-wrangler/storage"
	"vehicle-wrangler/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(cfg.LogLevel)

	if len(os.Args) > 1 && os.Args[1] != "" {
		cfg.DatasetPath = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Vehicle Fuel Economy Wrangler")
	logger.Info("Dataset: %s | Persist normalization: %v", cfg.DatasetPath, cfg.PersistNormalized)

	// =============== Load, clean, summarize ===================
	pipeline := services.NewPipeline(services.PipelineOptions{
		HeadRows:          cfg.HeadRows,
		PersistNormalized: cfg.PersistNormalized,
	}, logger)

	report, err := pipeline.Run(cfg.DatasetPath)
	if err != nil {
		logger.Error("Pipeline failed: %v", err)
		os.Exit(1)
	}

	services.PrintAnalysisReport(os.Stdout, report, cfg.TopCounts)

	// =========== Charts ======================
	plotPaths, err := charts.NewScatterRenderer(cfg.PlotDir, logger).Render(report.Series)
	if err != nil {
		logger.Error("Failed to render charts: %v", err)
		// Non-fatal: the exports below do not depend on the images
	}

	// ========= Exports (non-fatal) ============
	if err := storage.NewCSVWriter(cfg.CleanCSVPath, logger).WriteDataset(report.Cleaned); err != nil {
		logger.Error("Failed to write CSV: %v", err)
	}

	if err := storage.NewXLSXWriter(cfg.XLSXFilePath, logger).SaveSummary(report); err != nil {
		logger.Error("Failed to write workbook: %v", err)
	}

	if err := renderer.WriteHTMLFile(cfg.HTMLFilePath, report, plotPaths, cfg.TopCounts); err != nil {
		logger.Error("Failed to write HTML report: %v", err)
	} else if cfg.PDFReport {
		pdf := renderer.NewPDFRenderer(cfg.RenderTimeout, cfg.MaxRetries, cfg.RetryBackoff, logger)
		if err := pdf.Render(ctx, cfg.HTMLFilePath, cfg.PDFFilePath); err != nil {
			logger.Error("Failed to render PDF: %v", err)
		}
	}

	// ========= PostgreSQL: store clean data ============
	if cfg.DatabaseURL != "" {
		if err := exportToPostgres(ctx, cfg, report, logger); err != nil {
			logger.Error("Failed to export to PostgreSQL: %v", err)
		}
	} else {
		logger.Debug("DATABASE_URL not set, skipping PostgreSQL export")
	}

	fmt.Println(" Done! Clean data →", cfg.CleanCSVPath)
	fmt.Println(" Summary workbook →", cfg.XLSXFilePath)
	fmt.Println(" Report →", cfg.HTMLFilePath)
}

func exportToPostgres(ctx context.Context, cfg *config.Config, report *models.AnalysisReport, logger *utils.Logger) error {
	var pgWriter *storage.PostgresWriter
	err := utils.RetryWithBackoff(ctx, cfg.MaxRetries, cfg.RetryBackoff, func() error {
		w, err := storage.NewPostgresWriter(ctx, cfg.DatabaseURL, cfg.TableName, logger)
		if err != nil {
			return err
		}
		pgWriter = w
		return nil
	}, logger)
	if err != nil {
		return err
	}
	defer pgWriter.Close()

	var store storage.DatasetStorage = pgWriter
	return store.SaveDataset(ctx, report.RunID, report.Cleaned)
}

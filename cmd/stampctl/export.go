package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/VishnuKaku/workshipai/internal/export"
	"github.com/VishnuKaku/workshipai/internal/geocode"
	"github.com/VishnuKaku/workshipai/internal/repository"
)

func newExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved passport entries with geocoded coordinates to XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := repository.Open(cfg.Store.Path, logger)
			if err != nil {
				return err
			}
			defer repository.Close(db, logger)

			repo, err := repository.NewEntryRepository(db, logger)
			if err != nil {
				return err
			}
			cache, err := geocode.NewSQLiteCache(db, cfg.Geocoder.CacheTTL, logger)
			if err != nil {
				return err
			}
			svc := geocode.NewService(geocode.NewClient(cfg.Geocoder, logger), cache, logger,
				geocode.WithBatchSize(cfg.Geocoder.BatchSize),
				geocode.WithBatchDelay(cfg.Geocoder.BatchDelay),
			)

			data, err := export.NewService(repo, svc, logger).ExportEntriesXLSX(cmd.Context())
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			logger.Info("export written", "path", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "passport-stamps.xlsx", "output XLSX path")
	return cmd
}

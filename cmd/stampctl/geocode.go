package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VishnuKaku/workshipai/internal/geocode"
	"github.com/VishnuKaku/workshipai/internal/repository"
)

func newGeocodeCmd() *cobra.Command {
	var noCache bool
	cmd := &cobra.Command{
		Use:   "geocode <airport-name>...",
		Short: "Resolve airport names to coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := buildGeocodeService(noCache)
			if err != nil {
				return err
			}
			defer cleanup()

			results := svc.BatchGeocode(cmd.Context(), args)
			for i, name := range args {
				if results[i] == nil {
					fmt.Printf("%-40s unresolved\n", name)
					continue
				}
				fmt.Printf("%-40s %9.5f, %9.5f\n", name, results[i].Latitude, results[i].Longitude)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the durable cache tier")
	return cmd
}

// buildGeocodeService wires the client, durable cache, and service. The
// returned cleanup closes the cache database.
func buildGeocodeService(noCache bool) (*geocode.Service, func(), error) {
	client := geocode.NewClient(cfg.Geocoder, logger)

	var durable geocode.DurableCache
	cleanup := func() {}
	if !noCache {
		db, err := repository.Open(cfg.Store.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		cache, err := geocode.NewSQLiteCache(db, cfg.Geocoder.CacheTTL, logger)
		if err != nil {
			repository.Close(db, logger)
			return nil, nil, err
		}
		durable = cache
		cleanup = func() { repository.Close(db, logger) }
	}

	svc := geocode.NewService(client, durable, logger,
		geocode.WithBatchSize(cfg.Geocoder.BatchSize),
		geocode.WithBatchDelay(cfg.Geocoder.BatchDelay),
	)
	return svc, cleanup, nil
}

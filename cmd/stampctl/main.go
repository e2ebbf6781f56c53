package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/VishnuKaku/workshipai/internal/common"
)

var (
	cfgFile string
	cfg     *common.Config
	logger  *slog.Logger
)

func main() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:   "stampctl",
		Short: "Extract border-crossing stamps from OCR'd passport pages and geocode airports",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = common.LoadConfig()
			if err := cfg.ApplyFile(cfgFile); err != nil {
				return err
			}
			return cfg.Validate()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")

	root.AddCommand(newExtractCmd())
	root.AddCommand(newGeocodeCmd())
	root.AddCommand(newExportCmd())

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

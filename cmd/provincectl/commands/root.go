package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clausemap/internal/config"
	"clausemap/internal/infra"
)

var (
	provincesFile string
	staticDir     string
	debug         bool

	logger *zap.Logger
)

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "provincectl",
		Short:        "Inspect the provinces dataset and map layers offline",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("file") {
				provincesFile = cfg.ProvincesFile
			}
			if !cmd.Flags().Changed("static") {
				staticDir = cfg.StaticDir
			}

			level := "warn"
			if debug {
				level = "debug"
			}
			logger, err = infra.NewLogger(level, "console")
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&provincesFile, "file", "f", "provinces.json", "provinces JSON file (default from PROVINCES_FILE)")
	root.PersistentFlags().StringVar(&staticDir, "static", "static", "static asset directory (default from STATIC_DIR)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(validateCmd(), showCmd(), layersCmd())
	return root
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

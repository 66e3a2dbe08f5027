package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clausemap/internal/repositories"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the provinces file parses and matches the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := repositories.LoadProvinces(provincesFile)
			if err != nil {
				return err
			}
			logger.Debug("validated provinces", zap.String("path", provincesFile), zap.Int("count", data.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d provinces\n", data.Len())
			return nil
		},
	}
}

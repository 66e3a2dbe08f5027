package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clausemap/internal/repositories"
	"clausemap/pkg/utils"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [key]",
		Short: "Print the whole dataset, or one province by lookup key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := repositories.LoadProvinces(provincesFile)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return writeJSON(cmd.OutOrStdout(), data)
			}

			province, ok := data.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%q: %w", args[0], utils.ErrProvinceNotFound)
			}
			return writeJSON(cmd.OutOrStdout(), province)
		},
	}
}

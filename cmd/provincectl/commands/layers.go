package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clausemap/internal/repositories"
)

func layersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List the map overlay images in the static directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layers, err := repositories.NewMapLayerRepository(staticDir).ListMapLayers(cmd.Context())
			if err != nil {
				return err
			}
			for _, l := range layers {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}

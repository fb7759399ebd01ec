// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/indiebuilderkit/assetkit/internal/catalog"
	"github.com/indiebuilderkit/assetkit/internal/imageset"
)

func newListCommand(app *App, flags *rootFlags) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the assets in provisioning order",
		Long: `List the assets in provisioning order, with the source URL of each
asset and the image set directory it is written to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flags)
			if err != nil {
				return err
			}
			if dest == "" {
				dest = cfg.Destination
			}

			if err := catalog.Validate(app.Assets); err != nil {
				return &ExitError{Code: ExitConfig, Err: err}
			}

			fmt.Fprintln(app.stdout, TitleStyle.Render(fmt.Sprintf("%d assets", len(app.Assets))))
			for i, spec := range app.Assets {
				fmt.Fprintf(app.stdout, "%2d. %s %s\n    %s %s\n",
					i+1,
					assetNameStyle.Render(spec.Name),
					SubtitleStyle.Render(spec.Source),
					CmdStyle.Render("→"),
					imageset.Dir(dest, spec.Name))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "asset catalog to show target paths for (default from config)")

	return cmd
}

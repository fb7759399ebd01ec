// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/indiebuilderkit/assetkit/internal/issue"
)

func newTroubleshootCommand(app *App, flags *rootFlags) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "troubleshoot",
		Short: "Show the troubleshooting pages for known problems",
		Long: `Show the troubleshooting pages for known problems.

These are the same pages assetkit prints when a run hits one of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, page := range issue.Values() {
					fmt.Fprintf(app.stdout, "%s %s\n", CmdStyle.Render(fmt.Sprintf("%d.", page.Id())), page.Title())
				}
				return nil
			}

			cfg, err := app.loadConfig(cmd.Context(), flags)
			if err != nil {
				return err
			}
			style := issueStyle(cfg)
			for _, page := range issue.Values() {
				rendered, err := page.Render(style)
				if err != nil {
					return fmt.Errorf("rendering %q: %w", page.Title(), err)
				}
				fmt.Fprint(app.stdout, rendered)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print only the page titles")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyler-dunkel/vendo/internal/domain"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect catalog files",
	}

	cmd.AddCommand(
		newCatalogShowCmd(app),
	)

	return cmd
}

func newCatalogShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Validate a catalog file and list its products",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override := ""
			if len(args) == 1 {
				override = args[0]
			}

			source, err := app.catalogSource(override)
			if err != nil {
				return err
			}

			entries, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, entry := range entries {
				fmt.Fprintf(out, "%-20s %8s  x%d\n", entry.Name, domain.FormatUSD(entry.Price), entry.Amount)
			}
			fmt.Fprintf(out, "catalog OK: %d products\n", len(entries))

			return nil
		},
	}
}

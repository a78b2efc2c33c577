package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	authadapter "github.com/tyler-dunkel/vendo/internal/adapters/auth"
)

func newHashCmd(app *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "hash <password>",
		Short: "Generate a bcrypt reference hash for the admin credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := authadapter.HashPassword(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)

			if !save {
				return nil
			}

			key := authadapter.SecretKey(app.environment)
			if err := app.secretStore.Put(cmd.Context(), key, hash); err != nil {
				return fmt.Errorf("save reference hash: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved as %s\n", key)

			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the hash for the configured environment")

	return cmd
}

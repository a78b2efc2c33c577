package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vendo",
		Short:         "vendo: a coin-operated vending machine in your terminal",
		Long:          "vendo simulates a coin-operated vending machine: insert coins, check prices, buy products, and (with the admin credential) stock the machine, reprice compartments, and collect the earnings.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionCmd(app),
		newCatalogCmd(app),
		newHashCmd(app),
	)

	return rootCmd
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/valeriusec/sv-nft-onchain-metadata/api/logging"
)

func main() {
	logging.Init()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hhconfig",
		Short:        "Load and validate the contract toolchain configuration",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("network", "", "network profile name (default \"amoy\")")
	rootCmd.PersistentFlags().String("solc", "", "Solidity compiler version (default \"0.8.24\")")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd())
	return rootCmd
}

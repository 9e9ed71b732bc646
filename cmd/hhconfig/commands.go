package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valeriusec/sv-nft-onchain-metadata/api/bootstrap"
	"github.com/valeriusec/sv-nft-onchain-metadata/api/config"
)

func loadOptions(cmd *cobra.Command) []config.Option {
	var opts []config.Option
	if name := flagValue(cmd, "network"); name != "" {
		opts = append(opts, config.WithNetworkName(name))
	}
	if solc := flagValue(cmd, "solc"); solc != "" {
		opts = append(opts, config.WithCompilerVersion(solc))
	}
	return opts
}

// flagValue resolves local and inherited persistent flags.
func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Ensure(summaryWriter(cmd.OutOrStdout()), loadOptions(cmd)...)
		},
	}
}

func newExportCmd() *cobra.Command {
	var redact bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the configuration as Hardhat JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Ensure(hardhatWriter(cmd.OutOrStdout(), redact), loadOptions(cmd)...)
		},
	}
	cmd.Flags().BoolVar(&redact, "redact", false, "mask signing and verifier keys")
	return cmd
}

func summaryWriter(w io.Writer) bootstrap.Consumer {
	return bootstrap.ConsumerFunc(func(cfg config.ToolConfig) error {
		parts := []string{"solidity " + cfg.CompilerVersion}
		for _, name := range cfg.NetworkNames() {
			p := cfg.Networks[name]
			mode := "load-only"
			if p.CanSign() {
				mode = "signing"
			}
			parts = append(parts, fmt.Sprintf("network %s (%s, %s)", name, p.RPCURL, mode))
		}
		if cfg.HasVerifier() {
			parts = append(parts, "verifier configured")
		} else {
			parts = append(parts, "no verifier")
		}
		_, err := fmt.Fprintf(w, "ok: %s\n", strings.Join(parts, "; "))
		return err
	})
}

func hardhatWriter(w io.Writer, redact bool) bootstrap.Consumer {
	return bootstrap.ConsumerFunc(func(cfg config.ToolConfig) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg.Hardhat(redact))
	})
}

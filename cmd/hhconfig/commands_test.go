package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriusec/sv-nft-onchain-metadata/api/bootstrap"
	"github.com/valeriusec/sv-nft-onchain-metadata/api/config"
)

func loadTestConfig(t *testing.T) config.ToolConfig {
	t.Helper()
	cfg, err := config.Load(map[string]string{
		config.EnvRPCURL:         "https://rpc.example/amoy",
		config.EnvPrivateKey:     "0xabcdef12",
		config.EnvVerifierAPIKey: "key123",
	})
	require.NoError(t, err)
	return *cfg
}

func TestSummaryWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, summaryWriter(&buf).Apply(loadTestConfig(t)))
	assert.Equal(t, "ok: solidity 0.8.24; network amoy (https://rpc.example/amoy, signing); verifier configured\n", buf.String())
	assert.NotContains(t, buf.String(), "0xabcdef12")
}

func TestHardhatWriter_Redacted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, hardhatWriter(&buf, true).Apply(loadTestConfig(t)))

	var out config.HardhatConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "0.8.24", out.Solidity)
	assert.Equal(t, []string{"****ef12"}, out.Networks["amoy"].Accounts)
	require.NotNil(t, out.Etherscan)
	assert.Equal(t, "****y123", out.Etherscan.APIKey)
}

func TestLoadOptions(t *testing.T) {
	root := newRootCmd()
	export, _, err := root.Find([]string{"export"})
	require.NoError(t, err)
	require.NoError(t, root.PersistentFlags().Set("network", "sepolia"))
	require.NoError(t, root.PersistentFlags().Set("solc", "0.8.20"))

	cfg, err := config.Load(map[string]string{config.EnvRPCURL: "https://rpc.example"}, loadOptions(export)...)
	require.NoError(t, err)
	assert.Equal(t, "0.8.20", cfg.CompilerVersion)
	assert.Equal(t, []string{"sepolia"}, cfg.NetworkNames())
}

// runCLI executes the root command in an empty working directory with a
// fresh bootstrap once-state.
func runCLI(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	bootstrap.Reset()
	t.Cleanup(bootstrap.Reset)
	chdir(t, t.TempDir())
	for _, k := range []string{config.EnvRPCURL, config.EnvLegacyRPCURL, config.EnvPrivateKey, config.EnvVerifierAPIKey, config.EnvLegacyVerifierAPIKey} {
		t.Setenv(k, env[k])
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestExportCmd_Redacted(t *testing.T) {
	out, err := runCLI(t, map[string]string{
		config.EnvRPCURL:         "https://rpc.example/amoy",
		config.EnvPrivateKey:     "0xabcdef12",
		config.EnvVerifierAPIKey: "key123",
	}, "export", "--redact")
	require.NoError(t, err)

	var hh config.HardhatConfig
	require.NoError(t, json.Unmarshal([]byte(out), &hh))
	assert.Equal(t, "0.8.24", hh.Solidity)
	assert.Equal(t, "https://rpc.example/amoy", hh.Networks["amoy"].URL)
	assert.Equal(t, []string{"****ef12"}, hh.Networks["amoy"].Accounts)
	require.NotNil(t, hh.Etherscan)
	assert.Equal(t, "****y123", hh.Etherscan.APIKey)
	assert.NotContains(t, out, "0xabcdef12")
}

func TestExportCmd_FullWithFlags(t *testing.T) {
	out, err := runCLI(t, map[string]string{
		config.EnvRPCURL:     "https://rpc.example/sepolia",
		config.EnvPrivateKey: "0xabcdef12",
	}, "export", "--network", "sepolia", "--solc", "0.8.20")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"solidity": "0.8.20",
		"networks": {"sepolia": {"url": "https://rpc.example/sepolia", "accounts": ["0xabcdef12"]}}
	}`, out)
}

func TestCheckCmd_Summary(t *testing.T) {
	out, err := runCLI(t, map[string]string{config.EnvRPCURL: "https://rpc.example/amoy"}, "check")
	require.NoError(t, err)
	assert.Equal(t, "ok: solidity 0.8.24; network amoy (https://rpc.example/amoy, load-only); no verifier\n", out)
}

func TestCheckCmd_MissingRPCURLFails(t *testing.T) {
	out, err := runCLI(t, map[string]string{}, "check")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "rpcUrl", cfgErr.Field)
	assert.Equal(t, "missing", cfgErr.Reason)
	assert.Empty(t, out)
}

func TestExportCmd_MalformedRPCURLFails(t *testing.T) {
	_, err := runCLI(t, map[string]string{config.EnvRPCURL: "ftp://rpc.example"}, "export")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

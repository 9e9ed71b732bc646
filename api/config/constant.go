package config

const (
	// DefaultCompilerVersion is the Solidity compiler the contracts are built with.
	DefaultCompilerVersion = "0.8.24"

	// DefaultNetworkName names the single test network profile.
	DefaultNetworkName = "amoy"
)

// Recognized environment variables.
const (
	EnvRPCURL         = "RPC_URL"
	EnvPrivateKey     = "PRIVATE_KEY"
	EnvVerifierAPIKey = "VERIFIER_API_KEY"

	// Legacy names still found in older .env files. The canonical names win.
	EnvLegacyRPCURL         = "TESTNET_RPC"
	EnvLegacyVerifierAPIKey = "POLYGONSCAN_API_KEY"
)

package config

import (
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NetworkProfile holds the connection and signing parameters of one network.
type NetworkProfile struct {
	Name        string
	RPCURL      string
	SigningKeys []string
}

// CanSign reports whether the profile carries a usable signing key.
// A profile without one is load-only.
func (p NetworkProfile) CanSign() bool {
	for _, k := range p.SigningKeys {
		if k != "" {
			return true
		}
	}
	return false
}

// ToolConfig is the root record handed to the build/deployment tool.
// It is built once by Load and must not be mutated afterwards.
type ToolConfig struct {
	CompilerVersion string
	Networks        map[string]NetworkProfile
	// VerifierAPIKey is nil when no verifier credential is configured.
	VerifierAPIKey *string
}

// Network returns a copy of the named profile.
func (c *ToolConfig) Network(name string) (NetworkProfile, bool) {
	p, ok := c.Networks[name]
	if !ok {
		return NetworkProfile{}, false
	}
	p.SigningKeys = append([]string(nil), p.SigningKeys...)
	return p, true
}

// Clone returns a deep copy that shares no map, slice or pointer with c.
func (c *ToolConfig) Clone() *ToolConfig {
	out := &ToolConfig{
		CompilerVersion: c.CompilerVersion,
		Networks:        make(map[string]NetworkProfile, len(c.Networks)),
	}
	for name, p := range c.Networks {
		p.SigningKeys = append([]string(nil), p.SigningKeys...)
		out.Networks[name] = p
	}
	if c.VerifierAPIKey != nil {
		key := *c.VerifierAPIKey
		out.VerifierAPIKey = &key
	}
	return out
}

// HasVerifier reports whether a verifier API key is configured.
func (c *ToolConfig) HasVerifier() bool { return c.VerifierAPIKey != nil }

// rawEnv is the recognized subset of the environment mapping.
type rawEnv struct {
	RPCURL               string `env:"RPC_URL"`
	LegacyRPCURL         string `env:"TESTNET_RPC"`
	PrivateKey           string `env:"PRIVATE_KEY"`
	VerifierAPIKey       string `env:"VERIFIER_API_KEY"`
	LegacyVerifierAPIKey string `env:"POLYGONSCAN_API_KEY"`
}

type options struct {
	compilerVersion string
	networkName     string
}

// Option adjusts the static parts of the configuration.
type Option func(*options)

// WithCompilerVersion overrides DefaultCompilerVersion.
func WithCompilerVersion(v string) Option { return func(o *options) { o.compilerVersion = v } }

// WithNetworkName overrides DefaultNetworkName.
func WithNetworkName(name string) Option { return func(o *options) { o.networkName = name } }

// Load assembles a ToolConfig from an environment mapping. It reads nothing
// but envVars, so identical input always yields an equal record.
func Load(envVars map[string]string, opts ...Option) (*ToolConfig, error) {
	o := options{compilerVersion: DefaultCompilerVersion, networkName: DefaultNetworkName}
	for _, opt := range opts {
		opt(&o)
	}

	if envVars == nil {
		// env falls back to os.Environ for a nil map.
		envVars = map[string]string{}
	}
	raw, err := env.ParseAsWithOptions[rawEnv](env.Options{Environment: envVars})
	if err != nil {
		return nil, Invalid("environment", err.Error())
	}

	if err := validateCompilerVersion(o.compilerVersion); err != nil {
		return nil, err
	}
	if o.networkName == "" {
		return nil, Invalid("networkName", "missing")
	}

	rpcURL := firstNonEmpty(raw.RPCURL, raw.LegacyRPCURL)
	if err := validateRPCURL(rpcURL); err != nil {
		return nil, err
	}

	cfg := &ToolConfig{
		CompilerVersion: o.compilerVersion,
		Networks: map[string]NetworkProfile{
			o.networkName: {
				Name:        o.networkName,
				RPCURL:      rpcURL,
				SigningKeys: []string{raw.PrivateKey},
			},
		},
	}
	if key := firstNonEmpty(raw.VerifierAPIKey, raw.LegacyVerifierAPIKey); key != "" {
		cfg.VerifierAPIKey = &key
	}
	return cfg, nil
}

func validateCompilerVersion(v string) error {
	if v == "" {
		return Invalid("compilerVersion", "missing")
	}
	if err := validate.Var(v, "semver"); err != nil {
		return Invalid("compilerVersion", "not a semantic version")
	}
	return nil
}

func validateRPCURL(raw string) error {
	if raw == "" {
		return Invalid("rpcUrl", "missing")
	}
	if err := validate.Var(raw, "url"); err != nil {
		return Invalid("rpcUrl", "malformed url")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return Invalid("rpcUrl", "malformed url")
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss":
		return nil
	default:
		return Invalid("rpcUrl", "unsupported scheme")
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

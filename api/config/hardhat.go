package config

import "sort"

// HardhatConfig mirrors the layout of a hardhat.config user config.
type HardhatConfig struct {
	Solidity  string                    `json:"solidity"`
	Networks  map[string]HardhatNetwork `json:"networks"`
	Etherscan *HardhatEtherscan         `json:"etherscan,omitempty"`
}

// HardhatNetwork is one entry of the networks section.
type HardhatNetwork struct {
	URL      string   `json:"url"`
	Accounts []string `json:"accounts"`
}

// HardhatEtherscan carries the verifier credential.
type HardhatEtherscan struct {
	APIKey string `json:"apiKey"`
}

// Hardhat renders the record for the build tool. With redact set, signing
// keys and the verifier key are masked.
func (c *ToolConfig) Hardhat(redact bool) HardhatConfig {
	out := HardhatConfig{
		Solidity: c.CompilerVersion,
		Networks: make(map[string]HardhatNetwork, len(c.Networks)),
	}
	for name, p := range c.Networks {
		accounts := make([]string, len(p.SigningKeys))
		for i, k := range p.SigningKeys {
			accounts[i] = maskIf(redact, k)
		}
		out.Networks[name] = HardhatNetwork{URL: p.RPCURL, Accounts: accounts}
	}
	if c.VerifierAPIKey != nil {
		out.Etherscan = &HardhatEtherscan{APIKey: maskIf(redact, *c.VerifierAPIKey)}
	}
	return out
}

// NetworkNames returns the configured network names in sorted order.
func (c *ToolConfig) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func maskIf(redact bool, secret string) string {
	if !redact {
		return secret
	}
	return Mask(secret)
}

// Mask hides all but the last four runes of secret.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 4 {
		return "****"
	}
	return "****" + string(runes[len(runes)-4:])
}

package bootstrap

import "github.com/valeriusec/sv-nft-onchain-metadata/api/config"

//go:generate mockgen -destination=mocks/mock_consumer.go -package=mocks github.com/valeriusec/sv-nft-onchain-metadata/api/bootstrap Consumer

// Consumer is the build/deployment tool that receives the loaded record.
type Consumer interface {
	Apply(cfg config.ToolConfig) error
}

// ConsumerFunc adapts a function to Consumer.
type ConsumerFunc func(cfg config.ToolConfig) error

// Apply calls f(cfg).
func (f ConsumerFunc) Apply(cfg config.ToolConfig) error { return f(cfg) }

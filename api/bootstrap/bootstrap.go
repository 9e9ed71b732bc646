package bootstrap

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/valeriusec/sv-nft-onchain-metadata/api/config"
)

var appConfig *config.ToolConfig
var initOnce sync.Once
var initErr error

// Init loads the configuration from envVars and hands it to consumer.
// Startup must abort on any returned error.
func Init(envVars map[string]string, consumer Consumer, opts ...config.Option) error {
	cfg, err := config.Load(envVars, opts...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logSummary(cfg)

	if consumer != nil {
		if err := consumer.Apply(*cfg.Clone()); err != nil {
			return fmt.Errorf("failed to apply config: %w", err)
		}
	}
	appConfig = cfg
	return nil
}

// Ensure runs Init once per process against the process environment and
// returns the same result on every call.
func Ensure(consumer Consumer, opts ...config.Option) error {
	initOnce.Do(func() {
		envVars, err := config.Environment()
		if err != nil {
			initErr = fmt.Errorf("failed to read environment: %w", err)
			return
		}
		initErr = Init(envVars, consumer, opts...)
	})
	return initErr
}

// Config returns a copy of the loaded configuration, or nil before a
// successful Init.
func Config() *config.ToolConfig {
	if appConfig == nil {
		return nil
	}
	return appConfig.Clone()
}

// Reset clears the loaded configuration and the once-state so tests can
// run Ensure again.
func Reset() {
	appConfig = nil
	initOnce = sync.Once{}
	initErr = nil
}

func logSummary(cfg *config.ToolConfig) {
	for _, name := range cfg.NetworkNames() {
		p := cfg.Networks[name]
		slog.Info("configuration loaded",
			"compiler_version", cfg.CompilerVersion,
			"network", name,
			"can_sign", p.CanSign(),
			"verifier_configured", cfg.HasVerifier(),
		)
		if !p.CanSign() {
			slog.Warn("no signing key configured, network is load-only", "network", name)
		}
	}
}

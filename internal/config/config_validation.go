package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants a service needs before accepting traffic.
//
// Missing signing credentials are a configuration error and must prevent
// startup: a service that cannot sign or verify must never serve requests.
func (cfg *StructuredConfig) validate() error {
	if cfg.Trust.ServiceID == "" {
		return fmt.Errorf("%w: service ID is not set", ErrInvalidTrustConfigs)
	}
	if cfg.Trust.APIKey == "" {
		return fmt.Errorf("%w: API key is not set", ErrInvalidTrustConfigs)
	}
	if cfg.Trust.Secret == "" {
		return fmt.Errorf("%w: shared secret is not set", ErrInvalidTrustConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

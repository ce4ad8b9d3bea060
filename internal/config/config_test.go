package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "sign-key",
			TokenIssuer:   "user-service",
			TokenDuration: time.Hour,
		},
		Trust: Trust{
			ServiceID: "course-service",
			APIKey:    "key-1",
			Secret:    "s3cr3t",
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_MissingTrustFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
	}{
		{name: "missing service ID", mutate: func(c *StructuredConfig) { c.Trust.ServiceID = "" }},
		{name: "missing API key", mutate: func(c *StructuredConfig) { c.Trust.APIKey = "" }},
		{name: "missing secret", mutate: func(c *StructuredConfig) { c.Trust.Secret = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), ErrInvalidTrustConfigs)
		})
	}
}

func TestValidate_MissingAppConfigs(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_MissingServerAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestParseEnv_TrustGroup(t *testing.T) {
	t.Setenv("TRUST_SERVICE_ID", "payment-service")
	t.Setenv("TRUST_SECRET", "env-secret")
	t.Setenv("TRUST_MAX_SKEW", "120s")
	t.Setenv("TRUST_REPLAY_PROTECTION", "true")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "payment-service", cfg.Trust.ServiceID)
	assert.Equal(t, "env-secret", cfg.Trust.Secret)
	assert.Equal(t, 120*time.Second, cfg.Trust.MaxSkew)
	assert.True(t, cfg.Trust.ReplayProtection)
}

func TestParseJSON_FullFile(t *testing.T) {
	content := `{
		"app": {
			"token_sign_key": "json-sign-key",
			"token_issuer": "user-service",
			"token_duration": "1h",
			"environment": "development"
		},
		"trust": {
			"service_id": "course-service",
			"api_key": "key-json",
			"secret": "json-secret",
			"max_skew": "300s",
			"replay_protection": true,
			"peer_secrets": {"payment-service": "peer-secret"}
		},
		"server": {"http_address": "localhost:9090", "request_timeout": "30s"},
		"adapter": {"payment_address": "http://localhost:8081"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "course-service", cfg.Trust.ServiceID)
	assert.Equal(t, 300*time.Second, cfg.Trust.MaxSkew)
	assert.Equal(t, "peer-secret", cfg.Trust.PeerSecrets["payment-service"])
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8081", cfg.Adapter.PaymentAddress)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost with port", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip with port", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

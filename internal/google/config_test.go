package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "complete config",
			config: Config{ClientID: "id", ClientSecret: "secret", RefreshToken: "token"},
		},
		{
			name:    "missing client ID",
			config:  Config{ClientSecret: "secret", RefreshToken: "token"},
			wantErr: EnvClientID,
		},
		{
			name:    "missing client secret",
			config:  Config{ClientID: "id", RefreshToken: "token"},
			wantErr: EnvClientSecret,
		},
		{
			name:    "missing refresh token",
			config:  Config{ClientID: "id", ClientSecret: "secret"},
			wantErr: EnvRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvClientID, "test-id")
	t.Setenv(EnvClientSecret, "test-secret")
	t.Setenv(EnvRefreshToken, "test-refresh")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "test-id", cfg.ClientID)
	assert.Equal(t, "test-secret", cfg.ClientSecret)
	assert.Equal(t, "test-refresh", cfg.RefreshToken)
}

func TestLoadConfigMissingEnv(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")
	t.Setenv(EnvRefreshToken, "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

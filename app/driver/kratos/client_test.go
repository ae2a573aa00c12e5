package kratos

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenant-gateway/app/config"
	"tenant-gateway/app/utils/logger"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		config    *config.Config
		wantError bool
	}{
		{
			name: "valid kratos configuration",
			config: &config.Config{
				KratosPublicURL: "http://kratos-public:4433",
				RemoteTimeout:   3 * time.Second,
			},
			wantError: false,
		},
		{
			name: "empty public URL",
			config: &config.Config{
				KratosPublicURL: "",
				RemoteTimeout:   3 * time.Second,
			},
			wantError: true,
		},
		{
			name: "invalid public URL",
			config: &config.Config{
				KratosPublicURL: "invalid-url",
				RemoteTimeout:   3 * time.Second,
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := logger.NewWithWriter("info", "development", &buf)
			require.NoError(t, err)

			client, err := NewClient(tt.config, logger)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
				assert.NotNil(t, client.PublicAPI())
			}
		})
	}
}

func TestClient_BoundedTimeout(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logger.NewWithWriter("info", "development", &buf)
	require.NoError(t, err)

	cfg := &config.Config{
		KratosPublicURL: "http://kratos-public:4433",
		RemoteTimeout:   500 * time.Millisecond,
	}

	client, err := NewClient(cfg, logger)
	require.NoError(t, err)

	httpClient := client.PublicAPI().GetConfig().HTTPClient
	require.NotNil(t, httpClient)
	assert.Equal(t, 500*time.Millisecond, httpClient.Timeout)
}

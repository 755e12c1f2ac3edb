package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infrahttp "github.com/punnatorn6420/Nokair-Platform/infrastructure/http"
)

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := infrahttp.NewClient(nil)
	assert.Equal(t, infrahttp.DefaultTimeout, c.Timeout)

	transport, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, infrahttp.DefaultMaxIdleConnsPerHost, transport.MaxIdleConnsPerHost)
	assert.False(t, transport.DisableKeepAlives)
}

func TestNewClient_Overrides(t *testing.T) {
	t.Parallel()

	c := infrahttp.NewClient(&infrahttp.ClientConfig{
		Timeout:           2 * time.Second,
		DisableKeepAlives: true,
	})
	assert.Equal(t, 2*time.Second, c.Timeout)

	transport, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, transport.DisableKeepAlives)
}

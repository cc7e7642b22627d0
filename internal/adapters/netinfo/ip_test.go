package netinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/konnex-agent/internal/adapters/httpclient"
	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newDoer() *httpclient.Client {
	return httpclient.New(httpclient.Config{
		MaxAttempts: 1,
		Sleep:       func(context.Context, time.Duration) error { return nil },
	}, zap.NewNop())
}

func TestPublicIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "address", body: `{"ip":"198.51.100.4"}`, want: "198.51.100.4"},
		{name: "empty", body: `{}`, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "json", r.URL.Query().Get("format"))
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			ip, err := IPLookup{URL: server.URL + "?format=json", HTTP: newDoer()}.PublicIP(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ip)
		})
	}
}

func TestPublicIPWrapsTransportErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := IPLookup{URL: server.URL, HTTP: newDoer()}.PublicIP(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestPublicIPSendsNoHubHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Referer"))
		assert.Empty(t, r.Header.Get("Sec-Fetch-Site"))
		_, _ = w.Write([]byte(`{"ip":"198.51.100.9"}`))
	}))
	t.Cleanup(server.Close)

	limiter := rate.NewLimiter(rate.Limit(0.001), 1)
	require.True(t, limiter.Allow())

	doer := httpclient.New(httpclient.Config{
		MaxAttempts: 1,
		Referer:     "https://hub.konnex.world",
		Limiter:     limiter,
	}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ip, err := IPLookup{URL: server.URL, HTTP: doer}.PublicIP(ctx)
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.9", ip)
}

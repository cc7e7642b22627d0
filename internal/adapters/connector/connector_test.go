package connector

import (
	"testing"

	"github.com/bnema/konnex-agent/internal/adapters/wallet"
	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectOmitsSocialWithoutCredentials(t *testing.T) {
	t.Parallel()

	c := New(Config{}, wallet.NewSigner(), zap.NewNop())

	clients, err := c.Connect(domain.Account{Index: 0, PrivateKey: "k", Social: domain.SocialCredentials{AppKey: "only-one"}})
	require.NoError(t, err)
	assert.NotNil(t, clients.Loyalty)
	assert.NotNil(t, clients.IP)
	assert.Nil(t, clients.Social)
}

func TestConnectBuildsSocialWithCredentials(t *testing.T) {
	t.Parallel()

	c := New(Config{}, wallet.NewSigner(), zap.NewNop())

	clients, err := c.Connect(domain.Account{
		Index:      1,
		PrivateKey: "k",
		Proxy:      "socks5://127.0.0.1:1080",
		Social: domain.SocialCredentials{
			AppKey:            "a",
			AppKeySecret:      "b",
			AccessToken:       "c",
			AccessTokenSecret: "d",
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, clients.Social)
}

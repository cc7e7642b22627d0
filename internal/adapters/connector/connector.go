// Package connector binds the HTTP adapters to one account's proxy.
package connector

import (
	"github.com/bnema/konnex-agent/internal/adapters/httpclient"
	"github.com/bnema/konnex-agent/internal/adapters/loyalty"
	"github.com/bnema/konnex-agent/internal/adapters/netinfo"
	"github.com/bnema/konnex-agent/internal/adapters/social"
	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports"
	"go.uber.org/zap"
)

type Config struct {
	HTTP        httpclient.Config
	Loyalty     loyalty.Config
	Social      social.Config
	IPLookupURL string
}

type Connector struct {
	cfg    Config
	signer ports.Signer
	log    *zap.Logger
}

var _ ports.Connector = (*Connector)(nil)

func New(cfg Config, signer ports.Signer, log *zap.Logger) *Connector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Connector{cfg: cfg, signer: signer, log: log}
}

// Connect builds a fresh transport for the account so no connection or
// cookie state is shared between accounts.
func (c *Connector) Connect(account domain.Account) (ports.AccountClients, error) {
	log := c.log.With(zap.String("account", account.Label()))

	httpCfg := c.cfg.HTTP
	httpCfg.Proxy = account.Proxy
	client := httpclient.New(httpCfg, log)

	clients := ports.AccountClients{
		Loyalty: loyalty.NewClient(c.cfg.Loyalty, client, c.signer, log),
		IP:      netinfo.IPLookup{URL: c.cfg.IPLookupURL, HTTP: client},
	}
	if account.Social.Complete() {
		clients.Social = social.NewClient(c.cfg.Social, client.HTTPClient(), account.Social)
	}
	return clients, nil
}

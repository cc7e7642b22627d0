// Package loyalty talks to the loyalty hub's REST API: wallet login and task endpoints.
package loyalty

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/konnex-agent/internal/adapters/httpclient"
	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL       = "https://hub.konnex.world"
	DefaultPostRuleMatch = "post about konnex"
)

type Config struct {
	BaseURL            string
	ReferralCode       string
	WebsiteID          string
	OrganizationID     string
	DailyCheckinRuleID string
	PostRuleGroupID    string
	// PostRuleMatch is matched case-insensitively against rule names.
	PostRuleMatch string
}

type Doer interface {
	Do(ctx context.Context, req httpclient.Request) (httpclient.Response, error)
	Get(ctx context.Context, url string, header http.Header) (httpclient.Response, error)
}

type Client struct {
	cfg    Config
	http   Doer
	signer ports.Signer
	log    *zap.Logger
}

var _ ports.LoyaltyClient = (*Client)(nil)

func NewClient(cfg Config, doer Doer, signer ports.Signer, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.PostRuleMatch == "" {
		cfg.PostRuleMatch = DefaultPostRuleMatch
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{cfg: cfg, http: doer, signer: signer, log: log}
}

func (c *Client) endpoint(path string) string {
	return c.cfg.BaseURL + path
}

func (c *Client) authedGet(ctx context.Context, session domain.Session, url string, out any) error {
	if !session.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	resp, err := c.http.Get(ctx, url, http.Header{"Cookie": {session.Header()}})
	if err != nil {
		return err
	}
	return resp.DecodeJSON(out)
}

func cookiePairs(cookies []*http.Cookie) []string {
	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		pairs = append(pairs, fmt.Sprintf("%s=%s", cookie.Name, cookie.Value))
	}
	return pairs
}

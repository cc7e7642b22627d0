// Package social publishes and retracts posts on the social platform API using
// OAuth 1.0a user-context credentials.
package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports"
	"github.com/dghubble/oauth1"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL     = "https://api.twitter.com"
	DefaultPostURLBase = "https://x.com"
	DefaultTimeout     = 10 * time.Second
	retractTimeout     = 15 * time.Second
	userAgent          = "Konnex-Bot/1.0"
)

type Config struct {
	BaseURL     string
	PostURLBase string
	Timeout     time.Duration
}

type Client struct {
	rest        *resty.Client
	postURLBase string
	timeout     time.Duration
}

var _ ports.SocialPoster = (*Client)(nil)

// NewClient signs every request with creds. base supplies the transport,
// so the account proxy applies to platform calls too.
func NewClient(cfg Config, base *http.Client, creds domain.SocialCredentials) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PostURLBase == "" {
		cfg.PostURLBase = DefaultPostURLBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if base == nil {
		base = http.DefaultClient
	}

	ctx := context.WithValue(context.Background(), oauth1.HTTPClient, base)
	signed := oauth1.NewConfig(creds.AppKey, creds.AppKeySecret).
		Client(ctx, oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret))

	rest := resty.NewWithClient(signed).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("User-Agent", userAgent)

	return &Client{
		rest:        rest,
		postURLBase: strings.TrimRight(cfg.PostURLBase, "/"),
		timeout:     cfg.Timeout,
	}
}

type userResponse struct {
	Data struct {
		Username string `json:"username"`
	} `json:"data"`
}

type postResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (c *Client) Username(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rest.R().SetContext(ctx).Get("/2/users/me")
	if err := checkResponse("fetch user", resp, err); err != nil {
		return "", err
	}

	var payload userResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("decode user: %w", err)
	}
	if payload.Data.Username == "" {
		return "", fmt.Errorf("fetch user: %w: empty username", domain.ErrTransport)
	}
	return payload.Data.Username, nil
}

func (c *Client) Publish(ctx context.Context, username, text string) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"text": text}).
		Post("/2/tweets")
	if err := checkResponse("publish post", resp, err); err != nil {
		return domain.Post{}, err
	}

	var payload postResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return domain.Post{}, fmt.Errorf("decode post: %w", err)
	}
	if payload.Data.ID == "" {
		return domain.Post{}, fmt.Errorf("publish post: %w: empty post id", domain.ErrTransport)
	}

	return domain.Post{
		ID:  payload.Data.ID,
		URL: fmt.Sprintf("%s/%s/status/%s", c.postURLBase, username, payload.Data.ID),
	}, nil
}

func (c *Client) Retract(ctx context.Context, postID string) error {
	ctx, cancel := context.WithTimeout(ctx, retractTimeout)
	defer cancel()

	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		Delete("/2/tweets/{id}")
	return checkResponse("retract post", resp, err)
}

func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTransport, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s: %w: status %d: %s", op, domain.ErrTransport, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return nil
}

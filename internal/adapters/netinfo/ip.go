// Package netinfo reports the public address an account's traffic leaves from.
package netinfo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/konnex-agent/internal/adapters/httpclient"
	"github.com/bnema/konnex-agent/internal/ports"
)

const DefaultLookupURL = "https://api.ipify.org?format=json"

type Doer interface {
	Do(ctx context.Context, req httpclient.Request) (httpclient.Response, error)
}

type IPLookup struct {
	URL  string
	HTTP Doer
}

var _ ports.IPLookup = IPLookup{}

func (l IPLookup) PublicIP(ctx context.Context) (string, error) {
	url := l.URL
	if url == "" {
		url = DefaultLookupURL
	}

	resp, err := l.HTTP.Do(ctx, httpclient.Request{Method: http.MethodGet, URL: url, ThirdParty: true})
	if err != nil {
		return "", fmt.Errorf("lookup public ip: %w", err)
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := resp.DecodeJSON(&payload); err != nil {
		return "", fmt.Errorf("lookup public ip: %w", err)
	}
	if payload.IP == "" {
		return "Unknown", nil
	}
	return payload.IP, nil
}

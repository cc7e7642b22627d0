package loyalty

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/konnex-agent/internal/adapters/httpclient"
	"github.com/bnema/konnex-agent/internal/domain"
	"go.uber.org/zap"
)

func (c *Client) referralCookie() string {
	return "referral_code=" + c.cfg.ReferralCode
}

func (c *Client) FetchNonce(ctx context.Context, address string) (domain.Nonce, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		URL:    c.endpoint("/api/auth/csrf"),
		Header: http.Header{
			"Content-Type": {"application/json"},
			"Cookie":       {c.referralCookie()},
		},
	})
	if err != nil {
		return domain.Nonce{}, fmt.Errorf("%w: %w", domain.ErrNonceFetchFailed, err)
	}

	var payload csrfResponse
	if err := resp.DecodeJSON(&payload); err != nil {
		return domain.Nonce{}, fmt.Errorf("%w: %w", domain.ErrNonceFetchFailed, err)
	}
	if payload.CSRFToken == "" {
		return domain.Nonce{}, fmt.Errorf("%w: response has no csrf token", domain.ErrNonceFetchFailed)
	}

	c.log.Debug("nonce fetched", zap.String("address", domain.MaskAddress(address)))
	return domain.Nonce{CSRFToken: payload.CSRFToken, Cookies: cookiePairs(resp.Cookies)}, nil
}

// Login signs the sign-in message and exchanges it for a session cookie.
func (c *Client) Login(ctx context.Context, privateKey, address string, nonce domain.Nonce) (domain.Session, error) {
	signed, err := c.signer.SignAuthMessage(privateKey, address, nonce.CSRFToken)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrLoginFailed, err)
	}

	form := url.Values{}
	form.Set("message", signed.Message)
	form.Set("accessToken", signed.Signature)
	form.Set("signature", signed.Signature)
	form.Set("walletConnectorName", "MetaMask")
	form.Set("walletAddress", address)
	form.Set("redirect", "false")
	form.Set("callbackUrl", "/protected")
	form.Set("chainType", "evm")
	form.Set("walletProvider", "undefined")
	form.Set("csrfToken", nonce.CSRFToken)
	form.Set("json", "true")

	session := domain.NewSession(c.referralCookie())
	session.Add(withoutSessionToken(nonce.Cookies)...)

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		URL:    c.endpoint("/api/auth/callback/credentials"),
		Body:   []byte(form.Encode()),
		Header: http.Header{
			"Content-Type": {"application/x-www-form-urlencoded"},
			"Cookie":       {session.Header()},
		},
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrLoginFailed, err)
	}

	if !issuesSessionToken(resp.Cookies) {
		return domain.Session{}, fmt.Errorf("%w: no session token", domain.ErrLoginFailed)
	}
	session.Add(cookiePairs(liveCookies(resp.Cookies))...)
	return session, nil
}

// issuesSessionToken reports whether cookies set a usable session token. A
// cleared token (empty value or negative Max-Age) does not count.
func issuesSessionToken(cookies []*http.Cookie) bool {
	for _, cookie := range cookies {
		if cookie.Name == domain.SessionTokenCookie && cookie.Value != "" && cookie.MaxAge >= 0 {
			return true
		}
	}
	return false
}

func liveCookies(cookies []*http.Cookie) []*http.Cookie {
	live := make([]*http.Cookie, 0, len(cookies))
	for _, cookie := range cookies {
		if cookie.Value == "" || cookie.MaxAge < 0 {
			continue
		}
		live = append(live, cookie)
	}
	return live
}

func withoutSessionToken(pairs []string) []string {
	kept := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if strings.HasPrefix(strings.TrimSpace(pair), domain.SessionTokenCookie+"=") {
			continue
		}
		kept = append(kept, pair)
	}
	return kept
}

func (c *Client) FetchUserID(ctx context.Context, session domain.Session) (string, error) {
	var payload sessionResponse
	if err := c.authedGet(ctx, session, c.endpoint("/api/auth/session"), &payload); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSessionLookupFailed, err)
	}
	if payload.User == nil || payload.User.ID == "" {
		return "", fmt.Errorf("%w: session has no user", domain.ErrSessionLookupFailed)
	}
	return payload.User.ID, nil
}

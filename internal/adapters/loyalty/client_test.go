package loyalty

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/konnex-agent/internal/adapters/httpclient"
	"github.com/bnema/konnex-agent/internal/adapters/wallet"
	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testKey     = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

var authedSession = domain.NewSession("referral_code=ref", domain.SessionTokenCookie+"=tok")

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	doer := httpclient.New(httpclient.Config{
		Sleep: func(context.Context, time.Duration) error { return nil },
	}, zap.NewNop())

	return NewClient(Config{
		BaseURL:            server.URL,
		ReferralCode:       "ref",
		WebsiteID:          "web-1",
		OrganizationID:     "org-1",
		DailyCheckinRuleID: "daily-1",
		PostRuleGroupID:    "group-1",
	}, doer, wallet.NewSigner(), zap.NewNop())
}

func TestFetchNonceReturnsTokenAndCookies(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/csrf", r.URL.Path)
		assert.Equal(t, "referral_code=ref", r.Header.Get("Cookie"))
		http.SetCookie(w, &http.Cookie{Name: "__Host-next-auth.csrf-token", Value: "csrf-cookie"})
		_, _ = w.Write([]byte(`{"csrfToken":"nonce-123"}`))
	}))

	nonce, err := client.FetchNonce(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, "nonce-123", nonce.CSRFToken)
	assert.Equal(t, []string{"__Host-next-auth.csrf-token=csrf-cookie"}, nonce.Cookies)
}

func TestFetchNonceFailsWithoutToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.FetchNonce(context.Background(), testAddress)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonceFetchFailed)
}

func TestLoginPostsSignedFormAndKeepsCookies(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/callback/credentials", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "referral_code=ref; csrf=abc", r.Header.Get("Cookie"))
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "MetaMask", r.Form.Get("walletConnectorName"))
		assert.Equal(t, testAddress, r.Form.Get("walletAddress"))
		assert.Equal(t, "false", r.Form.Get("redirect"))
		assert.Equal(t, "/protected", r.Form.Get("callbackUrl"))
		assert.Equal(t, "evm", r.Form.Get("chainType"))
		assert.Equal(t, "undefined", r.Form.Get("walletProvider"))
		assert.Equal(t, "nonce-123", r.Form.Get("csrfToken"))
		assert.Equal(t, "true", r.Form.Get("json"))
		assert.NotEmpty(t, r.Form.Get("signature"))
		assert.Equal(t, r.Form.Get("signature"), r.Form.Get("accessToken"))

		var message map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.Form.Get("message")), &message))
		assert.Equal(t, "nonce-123", message["nonce"])
		assert.Equal(t, testAddress, message["address"])

		http.SetCookie(w, &http.Cookie{Name: domain.SessionTokenCookie, Value: "session-1", Secure: true})
		_, _ = w.Write([]byte(`{"url":"/protected"}`))
	}))

	session, err := client.Login(context.Background(), testKey, testAddress, domain.Nonce{CSRFToken: "nonce-123", Cookies: []string{"csrf=abc"}})
	require.NoError(t, err)
	assert.True(t, session.Authenticated())
	assert.Equal(t, "referral_code=ref; csrf=abc; "+domain.SessionTokenCookie+"=session-1", session.Header())
}

func TestLoginIgnoresSessionTokenFromNonceStep(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotContains(t, r.Header.Get("Cookie"), domain.SessionTokenCookie)
		_, _ = w.Write([]byte(`{"url":"/protected"}`))
	}))

	nonce := domain.Nonce{
		CSRFToken: "nonce-123",
		Cookies:   []string{"csrf=abc", domain.SessionTokenCookie + "=stale"},
	}
	_, err := client.Login(context.Background(), testKey, testAddress, nonce)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoginFailed)
}

func TestLoginRejectsClearedSessionToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: domain.SessionTokenCookie, Value: "", MaxAge: -1})
		_, _ = w.Write([]byte(`{"url":"/protected"}`))
	}))

	_, err := client.Login(context.Background(), testKey, testAddress, domain.Nonce{CSRFToken: "nonce-123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoginFailed)
}

func TestLoginDropsExpiredCookiesFromSession(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "__Host-next-auth.csrf-token", Value: "", MaxAge: -1})
		http.SetCookie(w, &http.Cookie{Name: domain.SessionTokenCookie, Value: "session-2"})
		_, _ = w.Write([]byte(`{"url":"/protected"}`))
	}))

	session, err := client.Login(context.Background(), testKey, testAddress, domain.Nonce{CSRFToken: "nonce-123"})
	require.NoError(t, err)
	assert.Equal(t, "referral_code=ref; "+domain.SessionTokenCookie+"=session-2", session.Header())
}

func TestLoginFailsWithoutSessionCookie(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"url":"/protected"}`))
	}))

	_, err := client.Login(context.Background(), testKey, testAddress, domain.Nonce{CSRFToken: "n"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoginFailed)
}

func TestLoginWrapsSigningFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := client.Login(context.Background(), "bad-key", testAddress, domain.Nonce{CSRFToken: "n"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoginFailed)
	assert.ErrorIs(t, err, domain.ErrSigning)
	assert.Zero(t, calls.Load())
}

func TestFetchUserID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/session", r.URL.Path)
		_, _ = w.Write([]byte(`{"user":{"id":"user-7"}}`))
	}))

	id, err := client.FetchUserID(context.Background(), authedSession)
	require.NoError(t, err)
	assert.Equal(t, "user-7", id)
}

func TestFetchUserIDFailsForEmptySession(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.FetchUserID(context.Background(), authedSession)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionLookupFailed)
}

func TestTaskCallsRequireAuthenticatedSession(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	ctx := context.Background()
	anonymous := domain.NewSession("referral_code=ref")

	_, err := client.Balance(ctx, anonymous, testAddress)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = client.DailyCheckin(ctx, anonymous, testAddress)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = client.FindPostRule(ctx, anonymous)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = client.TaskStatuses(ctx, anonymous, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	err = client.SubmitPostCompletion(ctx, anonymous, "rule-1", "https://x.com/a/status/1")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	assert.Zero(t, calls.Load())
}

func TestBalanceParsesAmounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int64
	}{
		{name: "number", body: `{"data":[{"amount":150}]}`, want: 150},
		{name: "string", body: `{"data":[{"amount":"42"}]}`, want: 42},
		{name: "fractional", body: `{"data":[{"amount":12.75}]}`, want: 12},
		{name: "no records", body: `{"data":[]}`, want: 0},
		{name: "negative", body: `{"data":[{"amount":"-5"}]}`, want: 0},
		{name: "negative fractional", body: `{"data":[{"amount":-0.5}]}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/loyalty/accounts", r.URL.Path)
				assert.Equal(t, "100", r.URL.Query().Get("limit"))
				assert.Equal(t, "web-1", r.URL.Query().Get("websiteId"))
				assert.Equal(t, "org-1", r.URL.Query().Get("organizationId"))
				assert.Equal(t, testAddress, r.URL.Query().Get("walletAddress"))
				assert.Contains(t, r.Header.Get("Cookie"), domain.SessionTokenCookie+"=tok")
				_, _ = w.Write([]byte(tt.body))
			}))

			points, err := client.Balance(context.Background(), authedSession, testAddress)
			require.NoError(t, err)
			assert.Equal(t, tt.want, points)
		})
	}
}

func TestDailyCheckinOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		want    domain.CheckinOutcome
		wantErr bool
	}{
		{name: "claimed", status: http.StatusOK, want: domain.CheckinOutcome{Success: true, Message: "Success"}},
		{name: "already claimed", status: http.StatusBadRequest, want: domain.CheckinOutcome{Success: true, Message: "Done"}},
		{name: "forbidden", status: http.StatusForbidden, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, "/api/loyalty/rules/daily-1/complete", r.URL.Path)
				body, _ := io.ReadAll(r.Body)
				assert.Equal(t, `{}`, string(body))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"Already completed"}`))
			}))

			outcome, err := client.DailyCheckin(context.Background(), authedSession, testAddress)
			assert.Equal(t, int32(1), calls.Load())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.status, httpclient.StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome)
		})
	}
}

func TestFindPostRuleMatchesCaseInsensitively(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/loyalty/rules", r.URL.Path)
		assert.Equal(t, "group-1", q.Get("loyaltyRuleGroupId"))
		assert.Equal(t, "false", q.Get("isSpecial"))
		assert.Equal(t, "true", q.Get("excludeExpired"))
		_, _ = w.Write([]byte(`{"data":[{"id":"r1","name":"Follow on X"},{"id":"r2","name":"Daily: Post About KONNEX"}]}`))
	}))

	ruleID, err := client.FindPostRule(context.Background(), authedSession)
	require.NoError(t, err)
	assert.Equal(t, "r2", ruleID)
}

func TestFindPostRuleReportsMissingRule(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"r1","name":"Follow on X"}]}`))
	}))

	_, err := client.FindPostRule(context.Background(), authedSession)
	assert.ErrorIs(t, err, domain.ErrRuleNotFound)
}

func TestTaskStatusesMapsEntries(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/loyalty/rules/status", r.URL.Path)
		assert.Equal(t, "user-7", r.URL.Query().Get("userId"))
		_, _ = w.Write([]byte(`{"data":[{"loyaltyRuleId":"r1","status":"completed"},{"loyaltyRuleId":"r2","status":"pending"},{"loyaltyRuleId":"r3","status":"processing"}]}`))
	}))

	rules, err := client.TaskStatuses(context.Background(), authedSession, "user-7")
	require.NoError(t, err)
	assert.Equal(t, []domain.TaskRule{
		{ID: "r1", Status: domain.RuleStatusCompleted},
		{ID: "r2", Status: domain.RuleStatusPending},
		{ID: "r3", Status: domain.RuleStatusUnknown},
	}, rules)
}

func TestSubmitPostCompletionSendsContentURL(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/loyalty/rules/r2/complete", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://x.com/alice/status/9", body["contentUrl"])
		_, _ = w.Write([]byte(`{"queued":true}`))
	}))

	require.NoError(t, client.SubmitPostCompletion(context.Background(), authedSession, "r2", "https://x.com/alice/status/9"))
}

func TestSubmitPostCompletionAcceptsPersistentRateLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	require.NoError(t, client.SubmitPostCompletion(context.Background(), authedSession, "r2", "https://x.com/alice/status/9"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestSubmitPostCompletionFailsOnServerError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.SubmitPostCompletion(context.Background(), authedSession, "r2", "https://x.com/alice/status/9")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

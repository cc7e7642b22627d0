package loyalty

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/konnex-agent/internal/adapters/httpclient"
	"github.com/bnema/konnex-agent/internal/domain"
	"go.uber.org/zap"
)

func (c *Client) Balance(ctx context.Context, session domain.Session, address string) (int64, error) {
	query := url.Values{}
	query.Set("limit", "100")
	query.Set("websiteId", c.cfg.WebsiteID)
	query.Set("organizationId", c.cfg.OrganizationID)
	query.Set("walletAddress", address)

	var payload accountsResponse
	if err := c.authedGet(ctx, session, c.endpoint("/api/loyalty/accounts?"+query.Encode()), &payload); err != nil {
		return 0, fmt.Errorf("retrieve balance: %w", err)
	}
	if len(payload.Data) == 0 || payload.Data[0].Amount == "" {
		return 0, nil
	}
	return parseAmount(payload.Data[0].Amount)
}

// parseAmount floors fractional amounts and clamps negative ones to zero.
func parseAmount(raw json.Number) (int64, error) {
	if n, err := raw.Int64(); err == nil {
		return max(n, 0), nil
	}
	f, err := raw.Float64()
	if err != nil {
		return 0, fmt.Errorf("parse balance %q: %w", raw.String(), err)
	}
	return max(int64(math.Floor(f)), 0), nil
}

// DailyCheckin claims the daily check-in rule. A 400 means it was already claimed today.
func (c *Client) DailyCheckin(ctx context.Context, session domain.Session, address string) (domain.CheckinOutcome, error) {
	if !session.Authenticated() {
		return domain.CheckinOutcome{}, domain.ErrNotAuthenticated
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		URL:    c.endpoint("/api/loyalty/rules/" + url.PathEscape(c.cfg.DailyCheckinRuleID) + "/complete"),
		Body:   []byte(`{}`),
		Header: http.Header{"Cookie": {session.Header()}},
		Accept: httpclient.AcceptBelow500,
	})
	if err != nil {
		return domain.CheckinOutcome{}, fmt.Errorf("daily check-in: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		var payload errorResponse
		_ = resp.DecodeJSON(&payload)
		c.log.Info("already checked in today",
			zap.String("address", domain.MaskAddress(address)),
			zap.String("message", payload.Message),
		)
		return domain.CheckinOutcome{Success: true, Message: "Done"}, nil
	case httpclient.Accept2xx(resp.StatusCode):
		return domain.CheckinOutcome{Success: true, Message: "Success"}, nil
	default:
		return domain.CheckinOutcome{}, fmt.Errorf("daily check-in: %w", &httpclient.StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(resp.Body)),
		})
	}
}

func (c *Client) FindPostRule(ctx context.Context, session domain.Session) (string, error) {
	query := url.Values{}
	query.Set("limit", "50")
	query.Set("websiteId", c.cfg.WebsiteID)
	query.Set("organizationId", c.cfg.OrganizationID)
	query.Set("excludeHidden", "true")
	query.Set("excludeExpired", "true")
	query.Set("isActive", "true")
	query.Set("loyaltyRuleGroupId", c.cfg.PostRuleGroupID)
	query.Set("isSpecial", "false")

	var payload rulesResponse
	if err := c.authedGet(ctx, session, c.endpoint("/api/loyalty/rules?"+query.Encode()), &payload); err != nil {
		return "", fmt.Errorf("fetch post rule: %w", err)
	}

	match := strings.ToLower(c.cfg.PostRuleMatch)
	for _, rule := range payload.Data {
		if strings.Contains(strings.ToLower(rule.Name), match) {
			return rule.ID, nil
		}
	}
	return "", domain.ErrRuleNotFound
}

func (c *Client) TaskStatuses(ctx context.Context, session domain.Session, userID string) ([]domain.TaskRule, error) {
	query := url.Values{}
	query.Set("websiteId", c.cfg.WebsiteID)
	query.Set("organizationId", c.cfg.OrganizationID)
	query.Set("userId", userID)

	var payload ruleStatusResponse
	if err := c.authedGet(ctx, session, c.endpoint("/api/loyalty/rules/status?"+query.Encode()), &payload); err != nil {
		return nil, fmt.Errorf("check task status: %w", err)
	}

	rules := make([]domain.TaskRule, 0, len(payload.Data))
	for _, entry := range payload.Data {
		rules = append(rules, domain.TaskRule{
			ID:     entry.LoyaltyRuleID,
			Status: domain.ParseRuleStatus(entry.Status),
		})
	}
	return rules, nil
}

// SubmitPostCompletion asks the hub to verify postURL against ruleID. A
// request still rate limited after all retries is treated as queued.
func (c *Client) SubmitPostCompletion(ctx context.Context, session domain.Session, ruleID, postURL string) error {
	if !session.Authenticated() {
		return domain.ErrNotAuthenticated
	}

	body, err := json.Marshal(map[string]string{"contentUrl": postURL})
	if err != nil {
		return fmt.Errorf("encode post completion: %w", err)
	}

	_, err = c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		URL:    c.endpoint("/api/loyalty/rules/" + url.PathEscape(ruleID) + "/complete"),
		Body:   body,
		Header: http.Header{"Cookie": {session.Header()}},
	})
	if err != nil {
		if httpclient.StatusCode(err) == http.StatusTooManyRequests {
			c.log.Info("post task accepted while rate limited", zap.String("rule", ruleID))
			return nil
		}
		return fmt.Errorf("complete post task: %w", err)
	}
	return nil
}

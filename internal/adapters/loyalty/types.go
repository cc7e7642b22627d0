package loyalty

import "encoding/json"

type csrfResponse struct {
	CSRFToken string `json:"csrfToken"`
}

type sessionResponse struct {
	User *struct {
		ID string `json:"id"`
	} `json:"user"`
}

type accountsResponse struct {
	Data []struct {
		Amount json.Number `json:"amount"`
	} `json:"data"`
}

type rulesResponse struct {
	Data []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

type ruleStatusResponse struct {
	Data []struct {
		LoyaltyRuleID string `json:"loyaltyRuleId"`
		Status        string `json:"status"`
	} `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

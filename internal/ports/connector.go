package ports

import "github.com/bnema/konnex-agent/internal/domain"

// AccountClients are the adapters bound to one account's proxy.
// Social is nil when the account carries no complete social credentials.
type AccountClients struct {
	Loyalty LoyaltyClient
	Social  SocialPoster
	IP      IPLookup
}

type Connector interface {
	Connect(account domain.Account) (AccountClients, error)
}

package ports

import (
	"context"

	"github.com/bnema/konnex-agent/internal/domain"
)

type Authenticator interface {
	FetchNonce(ctx context.Context, address string) (domain.Nonce, error)
	Login(ctx context.Context, privateKey, address string, nonce domain.Nonce) (domain.Session, error)
	FetchUserID(ctx context.Context, session domain.Session) (string, error)
}

type TaskService interface {
	Balance(ctx context.Context, session domain.Session, address string) (int64, error)
	DailyCheckin(ctx context.Context, session domain.Session, address string) (domain.CheckinOutcome, error)
	FindPostRule(ctx context.Context, session domain.Session) (string, error)
	TaskStatuses(ctx context.Context, session domain.Session, userID string) ([]domain.TaskRule, error)
	SubmitPostCompletion(ctx context.Context, session domain.Session, ruleID, postURL string) error
}

type LoyaltyClient interface {
	Authenticator
	TaskService
}

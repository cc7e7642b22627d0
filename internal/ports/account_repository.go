package ports

import (
	"context"

	"github.com/bnema/konnex-agent/internal/domain"
)

type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
}

package ports

import (
	"context"

	"github.com/bnema/konnex-agent/internal/domain"
)

type SocialPoster interface {
	Username(ctx context.Context) (string, error)
	Publish(ctx context.Context, username, text string) (domain.Post, error)
	Retract(ctx context.Context, postID string) error
}

type IPLookup interface {
	PublicIP(ctx context.Context) (string, error)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports"
	"github.com/bnema/konnex-agent/internal/retry"
	"go.uber.org/zap"
)

const (
	DefaultPostAttempts = 5
	DefaultRetryDelay   = 2 * time.Second
	DefaultPollAttempts = 12
	DefaultPollInterval = 10 * time.Second
)

type VerifierConfig struct {
	PostAttempts int
	RetryDelay   time.Duration
	PollAttempts int
	PollInterval time.Duration
}

func (c VerifierConfig) withDefaults() VerifierConfig {
	if c.PostAttempts <= 0 {
		c.PostAttempts = DefaultPostAttempts
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	if c.PollAttempts <= 0 {
		c.PollAttempts = DefaultPollAttempts
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	return c
}

// PostTask identifies the loyalty rule a social post must satisfy.
type PostTask struct {
	Tasks   ports.TaskService
	Poster  ports.SocialPoster
	Session domain.Session
	UserID  string
	RuleID  string
}

// Verifier publishes a post, submits it for the rule and waits for the hub to
// mark the rule completed. The post is always retracted once submitted.
type Verifier struct {
	cfg   VerifierConfig
	clock ports.Clock
	pick  func() string
}

func NewVerifier(cfg VerifierConfig, clock ports.Clock, pick func() string) *Verifier {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Verifier{cfg: cfg.withDefaults(), clock: clock, pick: pick}
}

// Verify returns PostOutcomeCompleted or PostOutcomeTimeout when a post was
// submitted, PostOutcomeSkipped without credentials and PostOutcomeFailed when
// every attempt failed.
func (v *Verifier) Verify(ctx context.Context, task PostTask, log *zap.Logger) (domain.PostOutcome, error) {
	if task.Poster == nil {
		log.Warn("social credentials missing, skipping post task")
		return domain.PostOutcomeSkipped, domain.ErrCredentialsMissing
	}

	log.Info("starting post task")
	policy := retry.Policy{
		MaxAttempts:    v.cfg.PostAttempts,
		InitialBackoff: v.cfg.RetryDelay,
		Sleep:          v.clock.Sleep,
		OnRetry: func(attempt int, err error, _ time.Duration) {
			log.Warn("post attempt failed",
				zap.String("attempt", fmt.Sprintf("%d/%d", attempt, v.cfg.PostAttempts)),
				zap.Error(err),
			)
		},
	}

	outcome, err := retry.Do(ctx, policy, func(ctx context.Context) (domain.PostOutcome, error) {
		return v.attempt(ctx, task, log)
	})
	if err != nil {
		log.Error("post task failed", zap.Error(err))
		return domain.PostOutcomeFailed, err
	}
	return outcome, nil
}

func (v *Verifier) attempt(ctx context.Context, task PostTask, log *zap.Logger) (domain.PostOutcome, error) {
	username, err := task.Poster.Username(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch username: %w", err)
	}

	post, err := task.Poster.Publish(ctx, username, v.pick())
	if err != nil {
		return "", fmt.Errorf("publish post: %w", err)
	}
	log.Info("post published", zap.String("url", post.URL))
	defer v.retract(ctx, task.Poster, post, log)

	if err := task.Tasks.SubmitPostCompletion(ctx, task.Session, task.RuleID, post.URL); err != nil {
		return "", fmt.Errorf("submit post completion: %w", err)
	}

	completed, err := v.poll(ctx, task, log)
	if err != nil {
		return "", err
	}
	if !completed {
		log.Warn("post task verification timed out", zap.Error(domain.ErrPostTimeout))
		return domain.PostOutcomeTimeout, nil
	}
	log.Info("post task completed")
	return domain.PostOutcomeCompleted, nil
}

// poll waits before each status check. A failed check counts as an attempt.
func (v *Verifier) poll(ctx context.Context, task PostTask, log *zap.Logger) (bool, error) {
	for i := 1; i <= v.cfg.PollAttempts; i++ {
		if err := v.clock.Sleep(ctx, v.cfg.PollInterval); err != nil {
			return false, err
		}

		progress := fmt.Sprintf("%d/%d", i, v.cfg.PollAttempts)
		rules, err := task.Tasks.TaskStatuses(ctx, task.Session, task.UserID)
		if err != nil {
			log.Warn("task status check failed", zap.String("poll", progress), zap.Error(err))
			continue
		}

		status := domain.FindRuleStatus(rules, task.RuleID)
		if status == domain.RuleStatusCompleted {
			return true, nil
		}
		log.Debug("waiting for task completion", zap.String("status", string(status)), zap.String("poll", progress))
	}
	return false, nil
}

func (v *Verifier) retract(ctx context.Context, poster ports.SocialPoster, post domain.Post, log *zap.Logger) {
	if err := poster.Retract(context.WithoutCancel(ctx), post.ID); err != nil {
		log.Warn("failed to retract post", zap.String("post", post.ID), zap.Error(err))
		return
	}
	log.Info("post retracted", zap.String("post", post.ID))
}

func isSkip(err error) bool {
	return errors.Is(err, domain.ErrCredentialsMissing)
}

package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports"
	"go.uber.org/zap"
)

type AccountProcessor interface {
	Process(ctx context.Context, account domain.Account) domain.AccountResult
}

// Workflow runs the daily pipeline for one account: login, balance, check-in,
// post task and final balance.
type Workflow struct {
	connector ports.Connector
	signer    ports.Signer
	verifier  *Verifier
	log       *zap.Logger
}

var _ AccountProcessor = (*Workflow)(nil)

func NewWorkflow(connector ports.Connector, signer ports.Signer, verifier *Verifier, log *zap.Logger) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{connector: connector, signer: signer, verifier: verifier, log: log}
}

// Process never fails: every problem ends up in the returned result.
func (w *Workflow) Process(ctx context.Context, account domain.Account) (result domain.AccountResult) {
	log := w.log.With(zap.String("account", account.Label()))
	result = domain.AccountResult{Index: account.Index, MaskedAddress: domain.MaskAddress("")}

	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Error = fmt.Sprintf("unexpected error: %v", r)
			log.Error("account processing panicked", zap.Any("panic", r))
		}
	}()

	address, err := w.signer.DeriveAddress(account.PrivateKey)
	if err != nil {
		return w.abort(log, result, ensureKind(domain.ErrInvalidKey, err))
	}
	result.MaskedAddress = domain.MaskAddress(address)
	log.Info("starting account", zap.String("address", result.MaskedAddress))

	clients, err := w.connector.Connect(account)
	if err != nil {
		return w.abort(log, result, err)
	}

	if ip, err := clients.IP.PublicIP(ctx); err != nil {
		log.Warn("failed to resolve public ip", zap.Error(err))
	} else {
		log.Info("using public ip", zap.String("ip", ip))
	}

	session, err := w.login(ctx, clients.Loyalty, account.PrivateKey, address, log)
	if err != nil {
		return w.abort(log, result, err)
	}

	result.Points = w.balance(ctx, clients.Loyalty, session, address, result.Points, log)

	ruleID, err := clients.Loyalty.FindPostRule(ctx, session)
	if err != nil {
		if errors.Is(err, domain.ErrRuleNotFound) {
			log.Warn("post rule not found")
		} else {
			log.Error("failed to fetch post rule", zap.Error(err))
		}
		ruleID = ""
	}

	checkin, err := clients.Loyalty.DailyCheckin(ctx, session, address)
	if err != nil {
		log.Error("daily check-in failed", zap.Error(err))
		checkin = domain.CheckinOutcome{Success: false, Message: err.Error()}
	} else {
		log.Info("daily check-in", zap.String("result", checkin.Message))
	}
	result.Checkin = checkin

	if ruleID == "" {
		result.PostTask = domain.PostOutcomeRuleNotFound
	} else {
		outcome, err := w.postTask(ctx, clients, session, ruleID, log)
		if err != nil {
			result.PostTask = domain.PostOutcomeFailed
			return w.abort(log, result, err)
		}
		result.PostTask = outcome
	}

	result.Points = w.balance(ctx, clients.Loyalty, session, address, result.Points, log)
	result.Success = true
	log.Info("account finished",
		zap.String("checkin", result.Checkin.Message),
		zap.String("post", result.PostTask.Label()),
		zap.Int64("points", result.Points),
	)
	return result
}

func (w *Workflow) login(ctx context.Context, client ports.LoyaltyClient, privateKey, address string, log *zap.Logger) (domain.Session, error) {
	nonce, err := client.FetchNonce(ctx, address)
	if err != nil {
		return domain.Session{}, ensureKind(domain.ErrNonceFetchFailed, err)
	}

	session, err := client.Login(ctx, privateKey, address, nonce)
	if err != nil {
		return domain.Session{}, ensureKind(domain.ErrLoginFailed, err)
	}
	log.Info("logged in")

	userID, err := client.FetchUserID(ctx, session)
	if err != nil {
		return domain.Session{}, ensureKind(domain.ErrSessionLookupFailed, err)
	}
	session.UserID = userID
	return session, nil
}

// balance keeps last when the lookup fails.
func (w *Workflow) balance(ctx context.Context, client ports.TaskService, session domain.Session, address string, last int64, log *zap.Logger) int64 {
	points, err := client.Balance(ctx, session, address)
	if err != nil {
		log.Warn("failed to retrieve balance", zap.Error(err))
		return last
	}
	log.Info("balance", zap.Int64("points", points))
	return points
}

func (w *Workflow) postTask(ctx context.Context, clients ports.AccountClients, session domain.Session, ruleID string, log *zap.Logger) (domain.PostOutcome, error) {
	rules, err := clients.Loyalty.TaskStatuses(ctx, session, session.UserID)
	if err != nil {
		return "", err
	}
	if domain.FindRuleStatus(rules, ruleID) == domain.RuleStatusCompleted {
		log.Info("post task already completed")
		return domain.PostOutcomeAlreadyDone, nil
	}

	outcome, err := w.verifier.Verify(ctx, PostTask{
		Tasks:   clients.Loyalty,
		Poster:  clients.Social,
		Session: session,
		UserID:  session.UserID,
		RuleID:  ruleID,
	}, log)
	if isSkip(err) {
		return domain.PostOutcomeSkipped, nil
	}

	rules, recheckErr := clients.Loyalty.TaskStatuses(ctx, session, session.UserID)
	if recheckErr != nil {
		log.Warn("failed to re-check task status", zap.Error(recheckErr))
		return outcome, nil
	}
	if domain.FindRuleStatus(rules, ruleID) == domain.RuleStatusCompleted {
		return domain.PostOutcomeCompleted, nil
	}
	return outcome, nil
}

var namedFailures = []error{
	domain.ErrInvalidKey,
	domain.ErrNonceFetchFailed,
	domain.ErrLoginFailed,
	domain.ErrSessionLookupFailed,
}

// abort records err in the result, using the bare failure name when err is one of namedFailures.
func (w *Workflow) abort(log *zap.Logger, result domain.AccountResult, err error) domain.AccountResult {
	result.Success = false
	result.Error = err.Error()
	for _, named := range namedFailures {
		if errors.Is(err, named) {
			result.Error = named.Error()
			break
		}
	}
	log.Error("account aborted", zap.String("reason", result.Error), zap.Error(err))
	return result
}

func ensureKind(kind, err error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

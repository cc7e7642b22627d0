package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/konnex-agent/internal/adapters/connector"
	"github.com/bnema/konnex-agent/internal/adapters/httpclient"
	"github.com/bnema/konnex-agent/internal/adapters/loyalty"
	summaryadapter "github.com/bnema/konnex-agent/internal/adapters/render/summary"
	accountsrepo "github.com/bnema/konnex-agent/internal/adapters/repo/accounts"
	"github.com/bnema/konnex-agent/internal/adapters/social"
	"github.com/bnema/konnex-agent/internal/adapters/wallet"
	"github.com/bnema/konnex-agent/internal/application"
	"github.com/bnema/konnex-agent/internal/config"
	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/logger"
	"github.com/bnema/konnex-agent/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type app struct {
	cfg            *config.Config
	log            *zap.Logger
	accounts       ports.AccountRepository
	signer         ports.Signer
	runner         application.Cycler
	schedule       application.DailySchedule
	clock          ports.Clock
	reportRenderer func(domain.CycleReport, summaryadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.Init(cfg.Log.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	repo, err := accountsrepo.NewRepository(cfg.AccountsPath)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	schedule, err := application.NewDailySchedule(cfg.Schedule.Hour, cfg.Schedule.Minute, cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("wire schedule: %w", err)
	}

	signer := wallet.NewSigner()
	signer.Domain = cfg.Loyalty.SignInDomain
	signer.URI = cfg.Loyalty.BaseURL
	signer.ChainID = cfg.Loyalty.ChainID

	clock := ports.SystemClock{}
	conn := connector.New(connectorConfig(cfg), signer, log)
	verifier := application.NewVerifier(application.VerifierConfig{
		PostAttempts: cfg.Verify.PostAttempts,
		RetryDelay:   cfg.Verify.RetryDelay,
		PollAttempts: cfg.Verify.PollAttempts,
		PollInterval: cfg.Verify.PollInterval,
	}, clock, social.RandomPost)
	workflow := application.NewWorkflow(conn, signer, verifier, log)

	log.Debug("configuration loaded",
		zap.String("config_file", cfg.File),
		zap.String("accounts", repo.Path()),
		zap.Stringer("schedule", schedule),
	)

	return &app{
		cfg:            cfg,
		log:            log,
		accounts:       repo,
		signer:         signer,
		runner:         application.NewCycleRunner(repo, workflow, clock, log),
		schedule:       schedule,
		clock:          clock,
		reportRenderer: summaryadapter.Render,
		now:            time.Now,
	}, nil
}

func connectorConfig(cfg *config.Config) connector.Config {
	httpCfg := httpclient.Config{
		Timeout:        cfg.HTTP.Timeout,
		MaxAttempts:    cfg.HTTP.MaxAttempts,
		InitialBackoff: cfg.HTTP.InitialBackoff,
		UserAgents:     cfg.HTTP.UserAgents,
		Referer:        cfg.Loyalty.BaseURL,
	}
	if cfg.HTTP.RequestsPerSecond > 0 {
		httpCfg.Limiter = rate.NewLimiter(rate.Limit(cfg.HTTP.RequestsPerSecond), 1)
	}

	return connector.Config{
		HTTP: httpCfg,
		Loyalty: loyalty.Config{
			BaseURL:            cfg.Loyalty.BaseURL,
			ReferralCode:       cfg.Loyalty.ReferralCode,
			WebsiteID:          cfg.Loyalty.WebsiteID,
			OrganizationID:     cfg.Loyalty.OrganizationID,
			DailyCheckinRuleID: cfg.Loyalty.DailyCheckinRuleID,
			PostRuleGroupID:    cfg.Loyalty.PostRuleGroupID,
			PostRuleMatch:      cfg.Loyalty.PostRuleMatch,
		},
		Social: social.Config{
			BaseURL:     cfg.Social.BaseURL,
			PostURLBase: cfg.Social.PostURLBase,
			Timeout:     cfg.Social.Timeout,
		},
		IPLookupURL: cfg.IPLookupURL,
	}
}

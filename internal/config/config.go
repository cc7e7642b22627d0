// Package config resolves kx settings from .env, the TOML config file and KX_* variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "KX"
	configEnvVar  = "KX_CONFIG"
	configDir     = ".konnex"
	configName    = "config"
	configType    = "toml"
	defaultAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"
	requiredGroup = "loyalty"
)

var ErrMissingSetting = errors.New("missing required setting")

type Config struct {
	AccountsPath string
	Loyalty      LoyaltyConfig
	HTTP         HTTPConfig
	Social       SocialConfig
	Verify       VerifyConfig
	Schedule     ScheduleConfig
	IPLookupURL  string
	Log          LogConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type LoyaltyConfig struct {
	BaseURL            string
	SignInDomain       string
	ChainID            int64
	ReferralCode       string
	WebsiteID          string
	OrganizationID     string
	DailyCheckinRuleID string
	PostRuleGroupID    string
	PostRuleMatch      string
}

type HTTPConfig struct {
	Timeout           time.Duration
	MaxAttempts       int
	InitialBackoff    time.Duration
	RequestsPerSecond float64
	UserAgents        []string
}

type SocialConfig struct {
	BaseURL     string
	PostURLBase string
	Timeout     time.Duration
}

type VerifyConfig struct {
	PollInterval time.Duration
	PollAttempts int
	PostAttempts int
	RetryDelay   time.Duration
}

type ScheduleConfig struct {
	Hour     int
	Minute   int
	Timezone string
}

type LogConfig struct {
	Env string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("accounts.path", "accounts.json")

	v.SetDefault("loyalty.base_url", "https://hub.konnex.world")
	v.SetDefault("loyalty.sign_in_domain", "hub.konnex.world")
	v.SetDefault("loyalty.chain_id", 1)
	v.SetDefault("loyalty.referral_code", "")
	v.SetDefault("loyalty.website_id", "")
	v.SetDefault("loyalty.organization_id", "")
	v.SetDefault("loyalty.daily_checkin_rule_id", "")
	v.SetDefault("loyalty.post_rule_group_id", "")
	v.SetDefault("loyalty.post_rule_match", "post about konnex")

	v.SetDefault("http.timeout", 60*time.Second)
	v.SetDefault("http.max_attempts", 3)
	v.SetDefault("http.initial_backoff", 2*time.Second)
	v.SetDefault("http.requests_per_second", 0)
	v.SetDefault("http.user_agents", []string{defaultAgent})

	v.SetDefault("social.base_url", "https://api.twitter.com")
	v.SetDefault("social.post_url_base", "https://x.com")
	v.SetDefault("social.timeout", 10*time.Second)

	v.SetDefault("verify.poll_interval", 10*time.Second)
	v.SetDefault("verify.poll_attempts", 12)
	v.SetDefault("verify.post_attempts", 5)
	v.SetDefault("verify.retry_delay", 2*time.Second)

	v.SetDefault("schedule.hour", 7)
	v.SetDefault("schedule.minute", 30)
	v.SetDefault("schedule.timezone", "Local")

	v.SetDefault("ip_lookup.url", "https://api.ipify.org?format=json")
	v.SetDefault("log.env", "development")
}

// Load reads .env (if present), then the config file named by KX_CONFIG or
// ~/.konnex/config.toml, then KX_* environment overrides.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	return &Config{
		AccountsPath: v.GetString("accounts.path"),
		Loyalty: LoyaltyConfig{
			BaseURL:            v.GetString("loyalty.base_url"),
			SignInDomain:       v.GetString("loyalty.sign_in_domain"),
			ChainID:            v.GetInt64("loyalty.chain_id"),
			ReferralCode:       v.GetString("loyalty.referral_code"),
			WebsiteID:          v.GetString("loyalty.website_id"),
			OrganizationID:     v.GetString("loyalty.organization_id"),
			DailyCheckinRuleID: v.GetString("loyalty.daily_checkin_rule_id"),
			PostRuleGroupID:    v.GetString("loyalty.post_rule_group_id"),
			PostRuleMatch:      v.GetString("loyalty.post_rule_match"),
		},
		HTTP: HTTPConfig{
			Timeout:           v.GetDuration("http.timeout"),
			MaxAttempts:       v.GetInt("http.max_attempts"),
			InitialBackoff:    v.GetDuration("http.initial_backoff"),
			RequestsPerSecond: v.GetFloat64("http.requests_per_second"),
			UserAgents:        v.GetStringSlice("http.user_agents"),
		},
		Social: SocialConfig{
			BaseURL:     v.GetString("social.base_url"),
			PostURLBase: v.GetString("social.post_url_base"),
			Timeout:     v.GetDuration("social.timeout"),
		},
		Verify: VerifyConfig{
			PollInterval: v.GetDuration("verify.poll_interval"),
			PollAttempts: v.GetInt("verify.poll_attempts"),
			PostAttempts: v.GetInt("verify.post_attempts"),
			RetryDelay:   v.GetDuration("verify.retry_delay"),
		},
		Schedule: ScheduleConfig{
			Hour:     v.GetInt("schedule.hour"),
			Minute:   v.GetInt("schedule.minute"),
			Timezone: v.GetString("schedule.timezone"),
		},
		IPLookupURL: v.GetString("ip_lookup.url"),
		Log:         LogConfig{Env: v.GetString("log.env")},
		File:        v.ConfigFileUsed(),
	}, nil
}

func readConfigFile(v *viper.Viper) error {
	v.SetConfigType(configType)

	if explicit := os.Getenv(configEnvVar); explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", explicit, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

// Validate reports the loyalty settings a run cannot do without.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"website_id", c.Loyalty.WebsiteID},
		{"organization_id", c.Loyalty.OrganizationID},
		{"daily_checkin_rule_id", c.Loyalty.DailyCheckinRuleID},
		{"post_rule_group_id", c.Loyalty.PostRuleGroupID},
	}

	var missing []string
	for _, setting := range required {
		if strings.TrimSpace(setting.value) == "" {
			missing = append(missing, requiredGroup+"."+setting.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(missing, ", "))
	}
	return nil
}

package accounts

import (
	"strings"

	"github.com/bnema/konnex-agent/internal/domain"
)

// jsonAccount mirrors the entries of accounts.json.
type jsonAccount struct {
	PrivateKey        string `json:"privateKey"`
	Proxy             string `json:"proxy"`
	AppKey            string `json:"AppKey"`
	AppKeySecret      string `json:"AppKeySecret"`
	AccessToken       string `json:"AccessToken"`
	AccessTokenSecret string `json:"AccessTokenSecret"`
}

type tomlFile struct {
	Accounts []tomlAccount `toml:"accounts"`
}

type tomlAccount struct {
	PrivateKey        string `toml:"private_key"`
	Proxy             string `toml:"proxy"`
	AppKey            string `toml:"app_key"`
	AppKeySecret      string `toml:"app_key_secret"`
	AccessToken       string `toml:"access_token"`
	AccessTokenSecret string `toml:"access_token_secret"`
}

func (a jsonAccount) toDomain(index int) domain.Account {
	return domain.Account{
		Index:      index,
		PrivateKey: strings.TrimSpace(a.PrivateKey),
		Proxy:      strings.TrimSpace(a.Proxy),
		Social: domain.SocialCredentials{
			AppKey:            strings.TrimSpace(a.AppKey),
			AppKeySecret:      strings.TrimSpace(a.AppKeySecret),
			AccessToken:       strings.TrimSpace(a.AccessToken),
			AccessTokenSecret: strings.TrimSpace(a.AccessTokenSecret),
		},
	}
}

func (a tomlAccount) toDomain(index int) domain.Account {
	return jsonAccount(a).toDomain(index)
}

package domain

import (
	"strconv"
	"strings"
)

type Account struct {
	// Index is the zero-based position of the account in the accounts file.
	Index      int
	PrivateKey string
	Proxy      string
	Social     SocialCredentials
}

type SocialCredentials struct {
	AppKey            string
	AppKeySecret      string
	AccessToken       string
	AccessTokenSecret string
}

func (c SocialCredentials) Complete() bool {
	for _, value := range []string{c.AppKey, c.AppKeySecret, c.AccessToken, c.AccessTokenSecret} {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

// Label is the short name used in logs and the summary table.
func (a Account) Label() string {
	return AccountLabel(a.Index)
}

func AccountLabel(index int) string {
	return "Acc " + strconv.Itoa(index+1)
}

// MaskAddress keeps the first and last six characters of an address.
func MaskAddress(address string) string {
	if address == "" {
		return "N/A"
	}
	if len(address) <= 12 {
		return address
	}

	return address[:6] + strings.Repeat("*", 6) + address[len(address)-6:]
}

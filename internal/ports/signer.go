package ports

import "github.com/bnema/konnex-agent/internal/domain"

type Signer interface {
	DeriveAddress(privateKey string) (string, error)
	SignAuthMessage(privateKey, address, nonce string) (domain.SignedPayload, error)
}

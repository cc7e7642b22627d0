// Package wallet derives addresses and signs sign-in messages with secp256k1 keys.
package wallet

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	DefaultDomain    = "hub.konnex.world"
	DefaultURI       = "https://hub.konnex.world"
	DefaultStatement = "Sign in to the app. Powered by Snag Solutions."
	DefaultChainID   = 1

	issuedAtLayout = "2006-01-02T15:04:05.000Z"
)

type Signer struct {
	Domain    string
	URI       string
	Statement string
	ChainID   int64
	Now       func() time.Time
}

func NewSigner() *Signer {
	return &Signer{
		Domain:    DefaultDomain,
		URI:       DefaultURI,
		Statement: DefaultStatement,
		ChainID:   DefaultChainID,
		Now:       time.Now,
	}
}

// Message is the structured form of the sign-in message. Field order is part
// of the wire format.
type Message struct {
	Domain    string `json:"domain"`
	Address   string `json:"address"`
	Statement string `json:"statement"`
	URI       string `json:"uri"`
	Version   string `json:"version"`
	ChainID   int64  `json:"chainId"`
	Nonce     string `json:"nonce"`
	IssuedAt  string `json:"issuedAt"`
}

func (m Message) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s wants you to sign in with your Ethereum account:\n", m.Domain)
	fmt.Fprintf(&b, "%s\n\n", m.Address)
	fmt.Fprintf(&b, "%s\n\n", m.Statement)
	fmt.Fprintf(&b, "URI: %s\n", m.URI)
	fmt.Fprintf(&b, "Version: %s\n", m.Version)
	fmt.Fprintf(&b, "Chain ID: %d\n", m.ChainID)
	fmt.Fprintf(&b, "Nonce: %s\n", m.Nonce)
	fmt.Fprintf(&b, "Issued At: %s", m.IssuedAt)
	return b.String()
}

func (m Message) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (s *Signer) DeriveAddress(privateKey string) (string, error) {
	key, err := parseKey(privateKey)
	if err != nil {
		return "", err
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

func (s *Signer) SignAuthMessage(privateKey, address, nonce string) (domain.SignedPayload, error) {
	key, err := parseKey(privateKey)
	if err != nil {
		return domain.SignedPayload{}, fmt.Errorf("%w: %w", domain.ErrSigning, err)
	}

	msg := s.BuildMessage(address, nonce)
	text := msg.Text()

	sig, err := crypto.Sign(accounts.TextHash([]byte(text)), key)
	if err != nil {
		return domain.SignedPayload{}, fmt.Errorf("%w: %w", domain.ErrSigning, err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	encoded, err := msg.JSON()
	if err != nil {
		return domain.SignedPayload{}, fmt.Errorf("%w: encode message: %w", domain.ErrSigning, err)
	}

	return domain.SignedPayload{
		Address:   address,
		Nonce:     nonce,
		Message:   encoded,
		Text:      text,
		Signature: hexutil.Encode(sig),
	}, nil
}

func (s *Signer) BuildMessage(address, nonce string) Message {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Message{
		Domain:    s.Domain,
		Address:   address,
		Statement: s.Statement,
		URI:       s.URI,
		Version:   "1",
		ChainID:   s.ChainID,
		Nonce:     nonce,
		IssuedAt:  now().UTC().Format(issuedAtLayout),
	}
}

func parseKey(privateKey string) (*ecdsa.PrivateKey, error) {
	raw := strings.TrimSpace(privateKey)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	return key, nil
}

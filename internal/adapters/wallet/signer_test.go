package wallet

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey     = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

func fixedSigner() *Signer {
	s := NewSigner()
	s.Now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("WIB", 7*3600)) }
	return s
}

func TestDeriveAddressAcceptsKeysWithAndWithoutPrefix(t *testing.T) {
	t.Parallel()

	s := NewSigner()
	for _, key := range []string{testKey, testKey[2:], "  " + testKey + "\n"} {
		address, err := s.DeriveAddress(key)
		require.NoError(t, err)
		assert.Equal(t, testAddress, address)
	}
}

func TestDeriveAddressRejectsMalformedKeys(t *testing.T) {
	t.Parallel()

	s := NewSigner()
	for _, key := range []string{"", "0x1234", "zz" + testKey[4:]} {
		_, err := s.DeriveAddress(key)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	}
}

func TestMessageText(t *testing.T) {
	t.Parallel()

	msg := fixedSigner().BuildMessage(testAddress, "nonce-1")

	want := "hub.konnex.world wants you to sign in with your Ethereum account:\n" +
		testAddress + "\n\n" +
		"Sign in to the app. Powered by Snag Solutions.\n\n" +
		"URI: https://hub.konnex.world\n" +
		"Version: 1\n" +
		"Chain ID: 1\n" +
		"Nonce: nonce-1\n" +
		"Issued At: 2026-03-03T22:06:07.890Z"
	assert.Equal(t, want, msg.Text())
}

func TestMessageJSONKeepsFieldOrderAndAmpersands(t *testing.T) {
	t.Parallel()

	msg := fixedSigner().BuildMessage(testAddress, "a&b<c>")

	encoded, err := msg.JSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"domain":"hub.konnex.world","address":"`+testAddress+`","statement":"Sign in to the app. Powered by Snag Solutions.","uri":"https://hub.konnex.world","version":"1","chainId":1,"nonce":"a&b<c>","issuedAt":"2026-03-03T22:06:07.890Z"}`,
		encoded,
	)
}

func TestSignAuthMessageRecoversSigner(t *testing.T) {
	t.Parallel()

	payload, err := fixedSigner().SignAuthMessage(testKey, testAddress, "nonce-1")
	require.NoError(t, err)

	sig, err := hexutil.Decode(payload.Signature)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	sig[64] -= 27
	pub, err := crypto.SigToPub(accounts.TextHash([]byte(payload.Text)), sig)
	require.NoError(t, err)
	assert.Equal(t, testAddress, crypto.PubkeyToAddress(*pub).Hex())

	var decoded Message
	require.NoError(t, json.Unmarshal([]byte(payload.Message), &decoded))
	assert.Equal(t, payload.Text, decoded.Text())
	assert.Equal(t, "nonce-1", payload.Nonce)
	assert.Equal(t, testAddress, payload.Address)
}

func TestSignAuthMessageWrapsKeyErrors(t *testing.T) {
	t.Parallel()

	_, err := NewSigner().SignAuthMessage("bogus", testAddress, "n")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSigning)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}

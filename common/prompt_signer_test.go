package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptSigner_Sign(t *testing.T) {
	pk, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	inner, err := NewKeypairSigner(pk.String())
	require.NoError(t, err)

	t.Run("Accepted", func(t *testing.T) {
		out := &bytes.Buffer{}
		signer := NewPromptSigner(inner, strings.NewReader("yes\n"), out)

		sig, err := signer.Sign([]byte("data"))
		assert.NoError(t, err)
		assert.NotEqual(t, solana.Signature{}, sig)
		assert.Contains(t, out.String(), ShortAddress(inner.PublicKey()))
	})

	t.Run("Declined", func(t *testing.T) {
		signer := NewPromptSigner(inner, strings.NewReader("n\n"), &bytes.Buffer{})

		_, err := signer.Sign([]byte("data"))
		assert.ErrorIs(t, err, ErrSignatureDenied)
	})

	t.Run("No Input", func(t *testing.T) {
		signer := NewPromptSigner(inner, strings.NewReader(""), &bytes.Buffer{})

		_, err := signer.Sign([]byte("data"))
		assert.ErrorIs(t, err, ErrSignatureDenied)
	})
}

func TestShortAddress(t *testing.T) {
	key := solana.MustPublicKeyFromBase58("3Vk8d8HBEi7bXeZUaZfigAeQpkmvTa7BGbnzk9GN9vg2")
	assert.Equal(t, "3Vk8d...N9vg2", ShortAddress(key))
}

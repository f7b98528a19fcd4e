package common

import (
	"crypto/ed25519"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeypairSigner(t *testing.T) {
	t.Run("Valid Private Key", func(t *testing.T) {
		pk, err := solana.NewRandomPrivateKey()
		require.NoError(t, err)

		signer, err := NewKeypairSigner(pk.String())
		assert.NoError(t, err)
		assert.Equal(t, pk.PublicKey(), signer.PublicKey())
	})

	t.Run("Invalid Private Key", func(t *testing.T) {
		signer, err := NewKeypairSigner("not-base58-0OIl")
		assert.Error(t, err)
		assert.Nil(t, signer)
	})
}

func TestNewKeypairSignerFromFile(t *testing.T) {
	t.Run("Keygen File", func(t *testing.T) {
		pk, err := solana.NewRandomPrivateKey()
		require.NoError(t, err)

		contents := "["
		for i, b := range pk {
			if i > 0 {
				contents += ","
			}
			contents += strconv.Itoa(int(b))
		}
		contents += "]"

		path := filepath.Join(t.TempDir(), "id.json")
		require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

		signer, err := NewKeypairSignerFromFile(path)
		assert.NoError(t, err)
		assert.Equal(t, pk.PublicKey(), signer.PublicKey())
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := NewKeypairSignerFromFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestKeypairSigner_Sign(t *testing.T) {
	pk, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	signer, err := NewKeypairSigner(pk.String())
	require.NoError(t, err)

	data := []byte("test data")
	sig, err := signer.Sign(data)
	assert.NoError(t, err)

	pub := signer.PublicKey()
	assert.True(t, ed25519.Verify(ed25519.PublicKey(pub[:]), data, sig[:]))
}

func TestKeypairSigner_Destroy(t *testing.T) {
	pk, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	signer, err := NewKeypairSigner(pk.String())
	require.NoError(t, err)

	signer.Destroy()

	for _, b := range signer.privateKey {
		assert.Equal(t, byte(0), b)
	}
}

package common

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type KeypairSigner struct {
	privateKey solana.PrivateKey
	publicKey  solana.PublicKey
}

var _ Signer = &KeypairSigner{}

// NewKeypairSigner loads a base58 encoded 64-byte secret key.
func NewKeypairSigner(privateKey string) (*KeypairSigner, error) {
	pk, err := solana.PrivateKeyFromBase58(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	return newKeypairSigner(pk)
}

// NewKeypairSignerFromFile loads a solana-keygen JSON keypair file.
func NewKeypairSignerFromFile(path string) (*KeypairSigner, error) {
	pk, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keypair file: %w", err)
	}
	return newKeypairSigner(pk)
}

func newKeypairSigner(pk solana.PrivateKey) (*KeypairSigner, error) {
	if len(pk) != 64 {
		return nil, fmt.Errorf("invalid private key length %d", len(pk))
	}
	return &KeypairSigner{
		privateKey: pk,
		publicKey:  pk.PublicKey(),
	}, nil
}

func (s *KeypairSigner) Destroy() {
	for i := range s.privateKey {
		s.privateKey[i] = 0
	}
}

func (s *KeypairSigner) PublicKey() solana.PublicKey {
	return s.publicKey
}

func (s *KeypairSigner) Sign(message []byte) (solana.Signature, error) {
	return s.privateKey.Sign(message)
}

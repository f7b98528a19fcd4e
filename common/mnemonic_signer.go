package common

import (
	"crypto/ed25519"
	"fmt"

	"github.com/cosmos/go-bip39"
	"github.com/gagliardetto/solana-go"
)

// MnemonicSigner derives the key the way `solana-keygen recover` does without
// a derivation path: the first 32 bytes of the BIP39 seed are the ed25519 seed.
type MnemonicSigner struct {
	*KeypairSigner
}

var _ Signer = &MnemonicSigner{}

func NewMnemonicSigner(mnemonic string) (*MnemonicSigner, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, DefaultBIP39Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to create seed from mnemonic: %w", err)
	}

	privKey := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])

	signer, err := newKeypairSigner(solana.PrivateKey(privKey))
	if err != nil {
		return nil, err
	}
	return &MnemonicSigner{KeypairSigner: signer}, nil
}

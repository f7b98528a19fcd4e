package common

import (
	"errors"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrSignatureDenied is returned when the wallet holder declines to sign.
	ErrSignatureDenied = errors.New("signature request denied")
	// ErrUnknownSigner is returned when a transaction needs a signature from a
	// key other than the connected wallet.
	ErrUnknownSigner = errors.New("unknown signer")
)

// Interface Definition
type Signer interface {
	PublicKey() solana.PublicKey
	Sign(message []byte) (solana.Signature, error)
	Destroy()
}

// ShortAddress renders a key as its first and last five characters.
func ShortAddress(key solana.PublicKey) string {
	s := key.String()
	if len(s) <= 2*PublicKeyDisplayChars {
		return s
	}
	return s[:PublicKeyDisplayChars] + "..." + s[len(s)-PublicKeyDisplayChars:]
}

package common

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// PromptSigner asks for confirmation on every signature. Anything other than
// "y" or "yes" declines.
type PromptSigner struct {
	Signer
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

var _ Signer = &PromptSigner{}

func NewPromptSigner(signer Signer, in io.Reader, out io.Writer) *PromptSigner {
	return &PromptSigner{
		Signer: signer,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

func (s *PromptSigner) Sign(message []byte) (solana.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.out, "Sign transaction with %s? [y/N]: ", ShortAddress(s.PublicKey()))
	answer, err := s.in.ReadString('\n')
	if err != nil && answer == "" {
		return solana.Signature{}, ErrSignatureDenied
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return s.Signer.Sign(message)
	default:
		return solana.Signature{}, ErrSignatureDenied
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/meerkat-millionaires/kat-staking/common"
)

// Prints the wallet address of a KMS key and checks that it signs.
func main() {
	GoogleKeyName := os.Getenv("GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", GoogleKeyName)
	if GoogleKeyName == "" {
		log.Fatalf("GCP KMS Key Name not set")
	}

	signer, err := common.NewGcpKmsSigner(GoogleKeyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Solana Address: ", signer.PublicKey())
	fmt.Println("Short Address: ", common.ShortAddress(signer.PublicKey()))

	message := []byte("example transaction message")

	signature, err := signer.Sign(message)
	if err != nil {
		log.Fatalf("failed to sign message: %v", err)
	}
	fmt.Println("Signature: ", signature)

	if !signature.Verify(signer.PublicKey(), message) {
		log.Fatalf("signature does not verify against %s", signer.PublicKey())
	}
	fmt.Println("Signature verified")
}

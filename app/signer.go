package app

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/common"
)

// CreateWalletSigner builds the signer acting as the connected wallet. Key
// sources are tried in order: KMS, mnemonic, private key, keypair file.
func CreateWalletSigner() (common.Signer, error) {
	config := Config.Wallet

	var signer common.Signer
	var err error

	switch {
	case config.GcpKmsKeyName != "":
		log.Debug("[SIGNER] Using GCP KMS key")
		signer, err = common.NewGcpKmsSigner(config.GcpKmsKeyName)
	case config.Mnemonic != "":
		log.Debug("[SIGNER] Using mnemonic")
		signer, err = common.NewMnemonicSigner(config.Mnemonic)
	case config.PrivateKey != "":
		log.Debug("[SIGNER] Using private key")
		signer, err = common.NewKeypairSigner(config.PrivateKey)
	case config.KeypairPath != "":
		log.Debug("[SIGNER] Using keypair file")
		signer, err = common.NewKeypairSignerFromFile(config.KeypairPath)
	default:
		return nil, fmt.Errorf("no wallet key configured")
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing wallet signer: %w", err)
	}

	if config.ConfirmSigning {
		signer = common.NewPromptSigner(signer, os.Stdin, os.Stderr)
	}

	log.Infof("[SIGNER] Wallet address: %s", signer.PublicKey())
	return signer, nil
}

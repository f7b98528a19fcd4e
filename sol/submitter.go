package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/common"
	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol/client"
	"github.com/meerkat-millionaires/kat-staking/sol/util"
)

// Submitter builds, signs and sends the wallet's transactions.
type Submitter interface {
	Wallet() solana.PublicKey
	Mint(ctx context.Context, candyMachine *models.CandyMachineState) (solana.Signature, solana.PublicKey, error)
	Deposit(ctx context.Context, vault solana.PublicKey, mint solana.PublicKey, creator solana.PublicKey, source solana.PublicKey) (solana.Signature, error)
	Withdraw(ctx context.Context, vault solana.PublicKey, mint solana.PublicKey) (solana.Signature, error)
	InitVault(ctx context.Context) (solana.Signature, solana.PublicKey, error)
}

type submitter struct {
	client client.SolanaClient
	signer common.Signer
	addrs  Addresses
}

var _ Submitter = &submitter{}

func (s *submitter) Wallet() solana.PublicKey {
	return s.signer.PublicKey()
}

func (s *submitter) Mint(ctx context.Context, candyMachine *models.CandyMachineState) (solana.Signature, solana.PublicKey, error) {
	if candyMachine == nil {
		return solana.Signature{}, solana.PublicKey{}, ErrCandyMachineUnknown
	}

	mint, err := solana.NewRandomPrivateKey()
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}
	rent, err := s.client.GetMinimumBalanceForRentExemption(ctx, util.MintAccountSize)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, fmt.Errorf("get mint rent: %w", err)
	}

	instructions, err := util.NewMintNftInstructions(util.MintNftParams{
		Program:      s.addrs.CandyMachineProgram,
		Config:       candyMachine.Config,
		CandyMachine: candyMachine.Address,
		Treasury:     candyMachine.Wallet,
		Payer:        s.Wallet(),
		Mint:         mint.PublicKey(),
		RentLamports: rent,
	})
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	sig, err := s.submit(ctx, "mint", instructions, mint)
	return sig, mint.PublicKey(), err
}

// Deposit stakes one unit of mint from source, the wallet's token account for
// it. A zero source resolves to the associated token account.
func (s *submitter) Deposit(ctx context.Context, vault solana.PublicKey, mint solana.PublicKey, creator solana.PublicKey, source solana.PublicKey) (solana.Signature, error) {
	if source.IsZero() {
		ata, err := util.FindAssociatedTokenAddress(s.Wallet(), mint)
		if err != nil {
			return solana.Signature{}, err
		}
		source = ata
	}

	instruction, err := util.NewDepositGemInstruction(util.DepositGemParams{
		Program: s.addrs.GemBankProgram,
		Bank:    s.addrs.Bank,
		Vault:   vault,
		Owner:   s.Wallet(),
		Mint:    mint,
		Source:  source,
		Creator: creator,
		Amount:  1,
	})
	if err != nil {
		return solana.Signature{}, err
	}
	return s.submit(ctx, "deposit", []solana.Instruction{instruction})
}

func (s *submitter) Withdraw(ctx context.Context, vault solana.PublicKey, mint solana.PublicKey) (solana.Signature, error) {
	instruction, err := util.NewWithdrawGemInstruction(util.WithdrawGemParams{
		Program:  s.addrs.GemBankProgram,
		Bank:     s.addrs.Bank,
		Vault:    vault,
		Owner:    s.Wallet(),
		Mint:     mint,
		Receiver: s.Wallet(),
		Amount:   1,
	})
	if err != nil {
		return solana.Signature{}, err
	}
	return s.submit(ctx, "withdraw", []solana.Instruction{instruction})
}

func (s *submitter) InitVault(ctx context.Context) (solana.Signature, solana.PublicKey, error) {
	instruction, vault, err := util.NewInitVaultInstruction(util.InitVaultParams{
		Program: s.addrs.GemBankProgram,
		Bank:    s.addrs.Bank,
		Owner:   s.Wallet(),
		Name:    s.addrs.VaultName,
	})
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}
	sig, err := s.submit(ctx, "init vault", []solana.Instruction{instruction})
	return sig, vault, err
}

// submit signs with the wallet and any ephemeral keys the transaction needs.
// A transaction that requires any other signer is rejected before the wallet
// is asked to sign.
func (s *submitter) submit(ctx context.Context, name string, instructions []solana.Instruction, ephemeral ...solana.PrivateKey) (solana.Signature, error) {
	wallet := s.Wallet()

	blockhash, err := s.client.GetLatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("get blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(wallet))
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build %s transaction: %w", name, err)
	}

	keys := map[solana.PublicKey]solana.PrivateKey{}
	for _, key := range ephemeral {
		keys[key.PublicKey()] = key
	}

	required := tx.Message.AccountKeys[:tx.Message.Header.NumRequiredSignatures]
	for _, key := range required {
		if _, ok := keys[key]; !ok && key != wallet {
			log.Warnln("[SUBMITTER]", "Transaction requires unknown signer", key)
			return solana.Signature{}, common.ErrUnknownSigner
		}
	}

	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("encode %s transaction: %w", name, err)
	}

	signatures := make([]solana.Signature, 0, len(required))
	for _, key := range required {
		var sig solana.Signature
		if key == wallet {
			sig, err = s.signer.Sign(message)
		} else {
			sig, err = keys[key].Sign(message)
		}
		if err != nil {
			return solana.Signature{}, err
		}
		signatures = append(signatures, sig)
	}
	tx.Signatures = signatures

	log.Debugln("[SUBMITTER]", "Sending", name, "transaction", signatures[0])
	sig, err := s.client.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, classifySendError(err)
	}
	log.Infoln("[SUBMITTER]", "Sent", name, "transaction", sig)
	return sig, nil
}

func NewSubmitter(client client.SolanaClient, signer common.Signer, addrs Addresses) Submitter {
	return &submitter{
		client: client,
		signer: signer,
		addrs:  addrs,
	}
}

package util

import (
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	ata "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

const (
	// MintAccountSize is the length of an spl token mint account.
	MintAccountSize = 82
)

// AnchorInstructionDiscriminator returns the 8 byte prefix anchor programs use
// to route an instruction.
func AnchorInstructionDiscriminator(name string) [8]byte {
	return anchorDiscriminator("global", name)
}

// AnchorAccountDiscriminator returns the 8 byte prefix of an anchor account.
func AnchorAccountDiscriminator(name string) [8]byte {
	return anchorDiscriminator("account", name)
}

func anchorDiscriminator(namespace, name string) [8]byte {
	hash := sha256.Sum256([]byte(namespace + ":" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out
}

func anchorInstructionData(name string, args interface{}) ([]byte, error) {
	disc := AnchorInstructionDiscriminator(name)
	encoded, err := bin.MarshalBorsh(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s args: %w", name, err)
	}
	return append(disc[:], encoded...), nil
}

type depositGemArgs struct {
	BumpAuth   uint8
	BumpRarity uint8
	Amount     uint64
}

type withdrawGemArgs struct {
	BumpAuth   uint8
	BumpGemBox uint8
	BumpGdr    uint8
	BumpRarity uint8
	Amount     uint64
}

type initVaultArgs struct {
	Bump  uint8
	Owner solana.PublicKey
	Name  string
}

type mintNftArgs struct{}

// DepositGemParams describes a deposit of a single gem into a vault.
type DepositGemParams struct {
	Program solana.PublicKey
	Bank    solana.PublicKey
	Vault   solana.PublicKey
	Owner   solana.PublicKey
	Mint    solana.PublicKey
	Source  solana.PublicKey
	Creator solana.PublicKey
	Amount  uint64
}

// NewDepositGemInstruction builds the gem bank deposit_gem instruction with
// the mint proof, metadata and creator proof passed as remaining accounts.
func NewDepositGemInstruction(p DepositGemParams) (solana.Instruction, error) {
	authority, bumpAuth, err := FindVaultAuthorityAddress(p.Vault, p.Program)
	if err != nil {
		return nil, err
	}
	gemBox, _, err := FindGemBoxAddress(p.Vault, p.Mint, p.Program)
	if err != nil {
		return nil, err
	}
	receipt, _, err := FindGemDepositReceiptAddress(p.Vault, p.Mint, p.Program)
	if err != nil {
		return nil, err
	}
	rarity, bumpRarity, err := FindGemRarityAddress(p.Bank, p.Mint, p.Program)
	if err != nil {
		return nil, err
	}
	mintProof, _, err := FindWhitelistProofAddress(p.Bank, p.Mint, p.Program)
	if err != nil {
		return nil, err
	}
	metadata, err := FindMetadataAddress(p.Mint)
	if err != nil {
		return nil, err
	}
	creatorProof, _, err := FindWhitelistProofAddress(p.Bank, p.Creator, p.Program)
	if err != nil {
		return nil, err
	}

	data, err := anchorInstructionData("deposit_gem", depositGemArgs{
		BumpAuth:   bumpAuth,
		BumpRarity: bumpRarity,
		Amount:     p.Amount,
	})
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(p.Bank),
		solana.Meta(p.Vault).WRITE(),
		solana.Meta(p.Owner).SIGNER().WRITE(),
		solana.Meta(authority),
		solana.Meta(gemBox).WRITE(),
		solana.Meta(receipt).WRITE(),
		solana.Meta(p.Source).WRITE(),
		solana.Meta(p.Mint),
		solana.Meta(rarity),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.SysVarRentPubkey),
		solana.Meta(mintProof),
		solana.Meta(metadata),
		solana.Meta(creatorProof),
	}
	return solana.NewInstruction(p.Program, accounts, data), nil
}

// WithdrawGemParams describes a withdrawal of a single gem back to receiver.
type WithdrawGemParams struct {
	Program  solana.PublicKey
	Bank     solana.PublicKey
	Vault    solana.PublicKey
	Owner    solana.PublicKey
	Mint     solana.PublicKey
	Receiver solana.PublicKey
	Amount   uint64
}

func NewWithdrawGemInstruction(p WithdrawGemParams) (solana.Instruction, error) {
	authority, bumpAuth, err := FindVaultAuthorityAddress(p.Vault, p.Program)
	if err != nil {
		return nil, err
	}
	gemBox, bumpGemBox, err := FindGemBoxAddress(p.Vault, p.Mint, p.Program)
	if err != nil {
		return nil, err
	}
	receipt, bumpGdr, err := FindGemDepositReceiptAddress(p.Vault, p.Mint, p.Program)
	if err != nil {
		return nil, err
	}
	rarity, bumpRarity, err := FindGemRarityAddress(p.Bank, p.Mint, p.Program)
	if err != nil {
		return nil, err
	}
	destination, err := FindAssociatedTokenAddress(p.Receiver, p.Mint)
	if err != nil {
		return nil, err
	}

	data, err := anchorInstructionData("withdraw_gem", withdrawGemArgs{
		BumpAuth:   bumpAuth,
		BumpGemBox: bumpGemBox,
		BumpGdr:    bumpGdr,
		BumpRarity: bumpRarity,
		Amount:     p.Amount,
	})
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(p.Bank),
		solana.Meta(p.Vault).WRITE(),
		solana.Meta(p.Owner).SIGNER().WRITE(),
		solana.Meta(authority),
		solana.Meta(gemBox).WRITE(),
		solana.Meta(receipt).WRITE(),
		solana.Meta(destination).WRITE(),
		solana.Meta(p.Mint),
		solana.Meta(rarity),
		solana.Meta(p.Receiver).WRITE(),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(solana.SPLAssociatedTokenAccountProgramID),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.SysVarRentPubkey),
	}
	return solana.NewInstruction(p.Program, accounts, data), nil
}

// InitVaultParams creates a vault owned and paid for by owner.
type InitVaultParams struct {
	Program solana.PublicKey
	Bank    solana.PublicKey
	Owner   solana.PublicKey
	Name    string
}

func NewInitVaultInstruction(p InitVaultParams) (solana.Instruction, solana.PublicKey, error) {
	vault, bump, err := FindVaultAddress(p.Bank, p.Owner, p.Program)
	if err != nil {
		return nil, solana.PublicKey{}, err
	}

	data, err := anchorInstructionData("init_vault", initVaultArgs{
		Bump:  bump,
		Owner: p.Owner,
		Name:  p.Name,
	})
	if err != nil {
		return nil, solana.PublicKey{}, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(p.Bank).WRITE(),
		solana.Meta(vault).WRITE(),
		solana.Meta(p.Owner).SIGNER(),
		solana.Meta(p.Owner).SIGNER().WRITE(),
		solana.Meta(solana.SystemProgramID),
	}
	return solana.NewInstruction(p.Program, accounts, data), vault, nil
}

// MintNftParams describes a candy machine mint into a fresh mint account.
type MintNftParams struct {
	Program      solana.PublicKey
	Config       solana.PublicKey
	CandyMachine solana.PublicKey
	Treasury     solana.PublicKey
	Payer        solana.PublicKey
	Mint         solana.PublicKey
	// RentLamports funds the new mint account.
	RentLamports uint64
}

// NewMintNftInstructions returns the full instruction list for a mint: create
// and initialize the mint account, create the payer's token account, mint one
// token into it, then hand over to the candy machine.
func NewMintNftInstructions(p MintNftParams) ([]solana.Instruction, error) {
	tokenAccount, err := FindAssociatedTokenAddress(p.Payer, p.Mint)
	if err != nil {
		return nil, err
	}
	metadata, err := FindMetadataAddress(p.Mint)
	if err != nil {
		return nil, err
	}
	edition, err := FindMasterEditionAddress(p.Mint)
	if err != nil {
		return nil, err
	}

	data, err := anchorInstructionData("mint_nft", mintNftArgs{})
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(p.Config),
		solana.Meta(p.CandyMachine).WRITE(),
		solana.Meta(p.Payer).SIGNER().WRITE(),
		solana.Meta(p.Treasury).WRITE(),
		solana.Meta(metadata).WRITE(),
		solana.Meta(p.Mint).WRITE(),
		solana.Meta(p.Payer).SIGNER(),
		solana.Meta(p.Payer).SIGNER(),
		solana.Meta(edition).WRITE(),
		solana.Meta(solana.TokenMetadataProgramID),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.SysVarRentPubkey),
		solana.Meta(solana.SysVarClockPubkey),
	}

	return []solana.Instruction{
		system.NewCreateAccountInstruction(
			p.RentLamports,
			MintAccountSize,
			solana.TokenProgramID,
			p.Payer,
			p.Mint,
		).Build(),
		token.NewInitializeMintInstruction(
			0,
			p.Payer,
			p.Payer,
			p.Mint,
			solana.SysVarRentPubkey,
		).Build(),
		ata.NewCreateInstruction(
			p.Payer,
			p.Payer,
			p.Mint,
		).Build(),
		token.NewMintToInstruction(
			1,
			p.Mint,
			tokenAccount,
			p.Payer,
			nil,
		).Build(),
		solana.NewInstruction(p.Program, accounts, data),
	}, nil
}

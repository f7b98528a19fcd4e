package util

import (
	"github.com/gagliardetto/solana-go"
)

const (
	SeedCandyMachine      = "candy_machine"
	SeedMetadata          = "metadata"
	SeedEdition           = "edition"
	SeedVault             = "vault"
	SeedGemBox            = "gem_box"
	SeedGemDepositReceipt = "gem_deposit_receipt"
	SeedGemRarity         = "gem_rarity"
	SeedWhitelist         = "whitelist"
)

func FindCandyMachineAddress(config solana.PublicKey, uuid string, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte(SeedCandyMachine),
			config[:],
			[]byte(uuid),
		},
		program,
	)
}

func FindMetadataAddress(mint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(SeedMetadata),
			solana.TokenMetadataProgramID[:],
			mint[:],
		},
		solana.TokenMetadataProgramID,
	)
	return address, err
}

func FindMasterEditionAddress(mint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(SeedMetadata),
			solana.TokenMetadataProgramID[:],
			mint[:],
			[]byte(SeedEdition),
		},
		solana.TokenMetadataProgramID,
	)
	return address, err
}

// FindAssociatedTokenAddress returns the associated token account of wallet
// for mint under the classic token program.
func FindAssociatedTokenAddress(wallet solana.PublicKey, mint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress(
		[][]byte{
			wallet[:],
			solana.TokenProgramID[:],
			mint[:],
		},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	return address, err
}

func FindVaultAddress(bank solana.PublicKey, creator solana.PublicKey, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte(SeedVault),
			bank[:],
			creator[:],
		},
		program,
	)
}

// FindVaultAuthorityAddress derives the PDA that owns the vault's gem boxes.
func FindVaultAuthorityAddress(vault solana.PublicKey, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{vault[:]}, program)
}

func FindGemBoxAddress(vault solana.PublicKey, mint solana.PublicKey, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte(SeedGemBox),
			vault[:],
			mint[:],
		},
		program,
	)
}

func FindGemDepositReceiptAddress(vault solana.PublicKey, mint solana.PublicKey, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte(SeedGemDepositReceipt),
			vault[:],
			mint[:],
		},
		program,
	)
}

func FindGemRarityAddress(bank solana.PublicKey, mint solana.PublicKey, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte(SeedGemRarity),
			bank[:],
			mint[:],
		},
		program,
	)
}

// FindWhitelistProofAddress derives the proof account for a whitelisted mint
// or creator.
func FindWhitelistProofAddress(bank solana.PublicKey, address solana.PublicKey, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte(SeedWhitelist),
			bank[:],
			address[:],
		},
		program,
	)
}

package sol

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/meerkat-millionaires/kat-staking/app"
)

// Addresses holds the on-chain accounts the service talks to.
type Addresses struct {
	CandyMachineProgram solana.PublicKey
	CandyMachineConfig  solana.PublicKey
	CandyMachineUUID    string
	GemBankProgram      solana.PublicKey
	Bank                solana.PublicKey
	VaultName           string
}

func AddressesFromConfig() (Addresses, error) {
	var (
		addrs Addresses
		err   error
	)

	if addrs.CandyMachineProgram, err = solana.PublicKeyFromBase58(app.Config.CandyMachine.ProgramID); err != nil {
		return Addresses{}, fmt.Errorf("candy machine program: %w", err)
	}
	if addrs.CandyMachineConfig, err = solana.PublicKeyFromBase58(app.Config.CandyMachine.ConfigAddress); err != nil {
		return Addresses{}, fmt.Errorf("candy machine config: %w", err)
	}
	if addrs.GemBankProgram, err = solana.PublicKeyFromBase58(app.Config.Staking.GemBankProgramID); err != nil {
		return Addresses{}, fmt.Errorf("gem bank program: %w", err)
	}
	if addrs.Bank, err = solana.PublicKeyFromBase58(app.Config.Staking.BankAddress); err != nil {
		return Addresses{}, fmt.Errorf("bank: %w", err)
	}
	addrs.CandyMachineUUID = app.Config.CandyMachine.UUID
	addrs.VaultName = app.Config.Staking.VaultName

	return addrs, nil
}

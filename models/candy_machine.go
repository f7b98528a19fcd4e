package models

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

const LamportsPerSOL = 1_000_000_000

type CandyMachineState struct {
	Address        solana.PublicKey  `json:"address"`
	Authority      solana.PublicKey  `json:"authority"`
	Wallet         solana.PublicKey  `json:"wallet"`
	TokenMint      *solana.PublicKey `json:"token_mint,omitempty"`
	Config         solana.PublicKey  `json:"config"`
	UUID           string            `json:"uuid"`
	Price          uint64            `json:"price"`
	ItemsAvailable uint64            `json:"items_available"`
	ItemsRedeemed  uint64            `json:"items_redeemed"`
	GoLiveDate     *int64            `json:"go_live_date,omitempty"`
	Bump           uint8             `json:"bump"`
}

func (c CandyMachineState) SoldOut() bool {
	return c.ItemsRedeemed >= c.ItemsAvailable
}

func (c CandyMachineState) ItemsRemaining() uint64 {
	if c.SoldOut() {
		return 0
	}
	return c.ItemsAvailable - c.ItemsRedeemed
}

func (c CandyMachineState) PriceSOL() decimal.Decimal {
	return decimal.NewFromInt(int64(c.Price)).Shift(-9)
}

// IsLive reports whether minting is open at now. A machine without a go-live
// date is live.
func (c CandyMachineState) IsLive(now time.Time) bool {
	if c.GoLiveDate == nil {
		return true
	}
	return now.Unix() >= *c.GoLiveDate
}

type CandyMachineView struct {
	State          *CandyMachineState `json:"state"`
	StartDate      *time.Time         `json:"start_date,omitempty"`
	SoldOut        bool               `json:"sold_out"`
	ItemsRemaining uint64             `json:"items_remaining"`
	PriceSOL       string             `json:"price_sol,omitempty"`
	Polling        bool               `json:"polling"`
	Minting        bool               `json:"minting"`
}

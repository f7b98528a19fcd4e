package models

import (
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

type Creator struct {
	Address  solana.PublicKey `json:"address"`
	Verified bool             `json:"verified"`
	Share    uint8            `json:"share"`
}

// NFT is a token with a resolved Metaplex metadata account. TokenAccount is
// the zero key for NFTs that are held by a vault.
type NFT struct {
	Mint            solana.PublicKey `json:"mint"`
	TokenAccount    solana.PublicKey `json:"token_account"`
	Metadata        solana.PublicKey `json:"metadata"`
	UpdateAuthority solana.PublicKey `json:"update_authority"`
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	URI             string           `json:"uri"`
	SellerFeeBps    uint16           `json:"seller_fee_basis_points"`
	Creators        []Creator        `json:"creators"`
}

// Creator returns the first listed creator, which the staking program checks
// against the bank whitelist.
func (n NFT) Creator() (solana.PublicKey, bool) {
	if len(n.Creators) == 0 {
		return solana.PublicKey{}, false
	}
	return n.Creators[0].Address, true
}

// Number parses the integer after the first '#' in the display name.
func (n NFT) Number() (int64, bool) {
	parts := strings.SplitN(n.Name, "#", 2)
	if len(parts) < 2 {
		return 0, false
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// ItemState is the per-mint action state kept by the orchestrator.
type ItemState struct {
	Staked  bool `json:"staked"`
	Loading bool `json:"loading"`
}

type ViewItem struct {
	NFT
	ItemState
	Image string `json:"image,omitempty"`
}

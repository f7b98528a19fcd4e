package models

import (
	"encoding/json"

	"github.com/gagliardetto/solana-go"
)

type VaultStatus string

const (
	VaultStatusNotChecked VaultStatus = "not_checked"
	VaultStatusMissing    VaultStatus = "missing"
	VaultStatusExists     VaultStatus = "exists"
)

// VaultState records whether the wallet's vault has been looked up and, if so,
// whether it exists. The zero value is NotChecked.
type VaultState struct {
	status  VaultStatus
	address solana.PublicKey
}

func VaultNotChecked() VaultState {
	return VaultState{status: VaultStatusNotChecked}
}

func VaultMissing() VaultState {
	return VaultState{status: VaultStatusMissing}
}

func VaultExists(address solana.PublicKey) VaultState {
	return VaultState{status: VaultStatusExists, address: address}
}

func (v VaultState) Status() VaultStatus {
	if v.status == "" {
		return VaultStatusNotChecked
	}
	return v.status
}

func (v VaultState) Checked() bool {
	return v.Status() != VaultStatusNotChecked
}

func (v VaultState) Exists() bool {
	return v.Status() == VaultStatusExists
}

func (v VaultState) Missing() bool {
	return v.Status() == VaultStatusMissing
}

// Address returns the vault address when it exists.
func (v VaultState) Address() (solana.PublicKey, bool) {
	if !v.Exists() {
		return solana.PublicKey{}, false
	}
	return v.address, true
}

func (v VaultState) String() string {
	if v.Exists() {
		return v.address.String()
	}
	return string(v.Status())
}

type vaultStateJSON struct {
	Status  VaultStatus `json:"status"`
	Address string      `json:"address,omitempty"`
}

func (v VaultState) MarshalJSON() ([]byte, error) {
	out := vaultStateJSON{Status: v.Status()}
	if v.Exists() {
		out.Address = v.address.String()
	}
	return json.Marshal(out)
}

func (v *VaultState) UnmarshalJSON(data []byte) error {
	var in vaultStateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Status {
	case VaultStatusExists:
		address, err := solana.PublicKeyFromBase58(in.Address)
		if err != nil {
			return err
		}
		*v = VaultExists(address)
	case VaultStatusMissing:
		*v = VaultMissing()
	default:
		*v = VaultNotChecked()
	}
	return nil
}

// Vault mirrors the gem bank vault account.
type Vault struct {
	Bank          solana.PublicKey `json:"bank"`
	Owner         solana.PublicKey `json:"owner"`
	Creator       solana.PublicKey `json:"creator"`
	Authority     solana.PublicKey `json:"authority"`
	AuthoritySeed solana.PublicKey `json:"authority_seed"`
	AuthorityBump uint8            `json:"authority_bump"`
	Locked        bool             `json:"locked"`
	Name          string           `json:"name"`
	GemBoxCount   uint64           `json:"gem_box_count"`
	GemCount      uint64           `json:"gem_count"`
}

// DepositRecord mirrors a gem deposit receipt.
type DepositRecord struct {
	Address  solana.PublicKey `json:"address"`
	Vault    solana.PublicKey `json:"vault"`
	GemBox   solana.PublicKey `json:"gem_box"`
	GemMint  solana.PublicKey `json:"gem_mint"`
	GemCount uint64           `json:"gem_count"`
}

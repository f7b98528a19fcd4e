package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionActions = "actions"
)

type ActionKind string

const (
	ActionStake       ActionKind = "stake"
	ActionUnstake     ActionKind = "unstake"
	ActionCreateVault ActionKind = "create_vault"
	ActionMint        ActionKind = "mint"
)

type ActionStatus string

const (
	ActionStatusSuccess ActionStatus = "success"
	ActionStatusFailed  ActionStatus = "failed"
	ActionStatusSkipped ActionStatus = "skipped"
)

type ActionRecord struct {
	ID            *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ActionID      string              `bson:"action_id" json:"action_id"`
	Action        ActionKind          `bson:"action" json:"action"`
	WalletAddress string              `bson:"wallet_address" json:"wallet_address"`
	Mint          string              `bson:"mint" json:"mint"`
	Signature     string              `bson:"signature" json:"signature"`
	Status        ActionStatus        `bson:"status" json:"status"`
	Message       string              `bson:"message" json:"message"`
	Network       string              `bson:"network" json:"network"`
	StartedAt     time.Time           `bson:"started_at" json:"started_at"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
}

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
	Link    string            `json:"link,omitempty"`
	Time    time.Time         `json:"time"`
}

// View is the consolidated snapshot served to callers.
type View struct {
	Wallet   string     `json:"wallet,omitempty"`
	Vault    VaultState `json:"vault"`
	Fetching bool       `json:"fetching"`
	Starting bool       `json:"starting"`
	Items    []ViewItem `json:"items"`
	// Unresolved counts staked NFTs omitted from Items for missing metadata.
	Unresolved   int              `json:"unresolved,omitempty"`
	CandyMachine CandyMachineView `json:"candy_machine"`
}

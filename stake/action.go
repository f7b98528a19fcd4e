package stake

import (
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol"
)

var (
	successMessages = map[models.ActionKind]string{
		models.ActionStake:       "Mint staked successfully!",
		models.ActionUnstake:     "Mint unstaked successfully!",
		models.ActionCreateVault: "Success!",
		models.ActionMint:        "Congratulations! Mint succeeded!",
	}

	failureFallbacks = map[models.ActionKind]string{
		models.ActionStake:       "Staking failed! Please try again!",
		models.ActionUnstake:     "Unstaking failed! Please try again!",
		models.ActionCreateVault: "Vault creation failed! Please try again!",
		models.ActionMint:        "Minting failed! Please try again!",
	}
)

// ActionResult is the outcome of one user action. Skipped results come from
// failed preconditions and never notify.
type ActionResult struct {
	ID        string              `json:"id"`
	Action    models.ActionKind   `json:"action"`
	Status    models.ActionStatus `json:"status"`
	Wallet    solana.PublicKey    `json:"wallet"`
	Mint      solana.PublicKey    `json:"mint"`
	Vault     solana.PublicKey    `json:"vault"`
	Signature solana.Signature    `json:"signature"`
	Message   string              `json:"message,omitempty"`
	Link      string              `json:"link,omitempty"`
	Err       error               `json:"-"`
	StartedAt time.Time           `json:"started_at"`
	EndedAt   time.Time           `json:"ended_at"`
}

func (r ActionResult) Skipped() bool {
	return r.Status == models.ActionStatusSkipped
}

func (r ActionResult) Succeeded() bool {
	return r.Status == models.ActionStatusSuccess
}

// Notification renders the result for the wallet holder. It returns nil for
// skipped actions.
func (r ActionResult) Notification() *models.Notification {
	switch r.Status {
	case models.ActionStatusSuccess:
		return &models.Notification{
			Level:   models.NotificationSuccess,
			Message: r.Message,
			Link:    r.Link,
			Time:    r.EndedAt,
		}
	case models.ActionStatusFailed:
		return &models.Notification{
			Level:   models.NotificationError,
			Message: r.Message,
			Time:    r.EndedAt,
		}
	}
	return nil
}

func skipped(action models.ActionKind, reason string) ActionResult {
	now := time.Now()
	return ActionResult{
		Action:    action,
		Status:    models.ActionStatusSkipped,
		Message:   reason,
		StartedAt: now,
		EndedAt:   now,
	}
}

// finish fills in status, message and link from the outcome of a submission.
func (r ActionResult) finish(sig solana.Signature, err error, explorerURL string) ActionResult {
	r.EndedAt = time.Now()
	if err != nil {
		r.Status = models.ActionStatusFailed
		r.Err = err
		r.Message = sol.ParseActionError(err, failureFallbacks[r.Action])
		return r
	}
	r.Status = models.ActionStatusSuccess
	r.Signature = sig
	r.Message = successMessages[r.Action]
	r.Link = sol.TransactionLink(explorerURL, sig)
	return r
}

// Record converts the result into its persisted form.
func (r ActionResult) Record(network string) models.ActionRecord {
	record := models.ActionRecord{
		ActionID:      r.ID,
		Action:        r.Action,
		WalletAddress: r.Wallet.String(),
		Status:        r.Status,
		Message:       r.Message,
		Network:       network,
		StartedAt:     r.StartedAt,
		CreatedAt:     r.EndedAt,
	}
	if !r.Mint.IsZero() {
		record.Mint = r.Mint.String()
	}
	if r.Signature != (solana.Signature{}) {
		record.Signature = r.Signature.String()
	}
	return record
}

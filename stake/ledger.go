package stake

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/models"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

var ErrMintLocked = errors.New("is being processed")

// Ledger persists finished actions and serializes actions on a mint across
// processes sharing the same database.
type Ledger interface {
	Lock(mint solana.PublicKey) (unlock func(), err error)
	Record(result ActionResult) error
}

// ActionHistory lists recorded actions of a wallet, newest first.
type ActionHistory interface {
	History(wallet solana.PublicKey, limit int64) ([]models.ActionRecord, error)
}

type HistoryLedger interface {
	Ledger
	ActionHistory
}

// ClampHistoryLimit maps a requested page size into [1, MaxHistoryLimit],
// using DefaultHistoryLimit for non-positive values.
func ClampHistoryLimit(limit int64) int64 {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}

type MongoLedger struct {
	db      app.Database
	network string
}

func (l *MongoLedger) Lock(mint solana.PublicKey) (func(), error) {
	resourceID := fmt.Sprintf("%s/%s", models.CollectionActions, mint.String())
	lockID, err := l.db.XLock(resourceID)
	if err != nil {
		log.Warnln("[LEDGER]", "Failed to lock mint", mint, err)
		return nil, fmt.Errorf("mint %s %w", mint, ErrMintLocked)
	}
	return func() {
		if err := l.db.Unlock(lockID); err != nil {
			log.Errorln("[LEDGER]", "Failed to unlock mint", mint, err)
		}
	}, nil
}

func (l *MongoLedger) Record(result ActionResult) error {
	record := result.Record(l.network)
	if _, err := l.db.InsertOne(models.CollectionActions, record); err != nil {
		log.Errorln("[LEDGER]", "Failed to record action", result.ID, err)
		return err
	}
	log.Debugln("[LEDGER]", "Recorded action", result.ID)
	return nil
}

// History returns the wallet's actions on the configured network.
func (l *MongoLedger) History(wallet solana.PublicKey, limit int64) ([]models.ActionRecord, error) {
	filter := bson.M{
		"wallet_address": wallet.String(),
		"network":        l.network,
	}
	sort := bson.D{{Key: "started_at", Value: -1}}

	records := []models.ActionRecord{}
	if err := l.db.FindMany(models.CollectionActions, filter, sort, ClampHistoryLimit(limit), &records); err != nil {
		log.Errorln("[LEDGER]", "Failed to load history for", wallet, err)
		return nil, err
	}
	return records, nil
}

func NewMongoLedger(db app.Database) *MongoLedger {
	return &MongoLedger{
		db:      db,
		network: app.Config.Solana.Network,
	}
}

// NopLedger is used when persistence is disabled.
type NopLedger struct{}

func (NopLedger) Lock(solana.PublicKey) (func(), error) {
	return func() {}, nil
}

func (NopLedger) Record(ActionResult) error {
	return nil
}

func (NopLedger) History(solana.PublicKey, int64) ([]models.ActionRecord, error) {
	return []models.ActionRecord{}, nil
}

// NewLedger returns a MongoLedger when a database is configured.
func NewLedger() HistoryLedger {
	if app.DB == nil {
		return NopLedger{}
	}
	return NewMongoLedger(app.DB)
}

package stake

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/app/mocks"
	"github.com/meerkat-millionaires/kat-staking/models"
)

func TestMongoLedger_Lock(t *testing.T) {
	db := mocks.NewMockDatabase(t)
	ledger := NewMongoLedger(db)
	mint := solana.NewWallet().PublicKey()

	db.EXPECT().XLock("actions/"+mint.String()).Return("lock-id", nil)
	db.EXPECT().Unlock("lock-id").Return(nil)

	unlock, err := ledger.Lock(mint)

	assert.Nil(t, err)
	unlock()
}

func TestMongoLedger_LockHeld(t *testing.T) {
	db := mocks.NewMockDatabase(t)
	ledger := NewMongoLedger(db)
	mint := solana.NewWallet().PublicKey()

	db.EXPECT().XLock(mock.Anything).Return("", errors.New("resource is locked"))

	unlock, err := ledger.Lock(mint)

	assert.Nil(t, unlock)
	assert.ErrorIs(t, err, ErrMintLocked)
	assert.Equal(t, "mint "+mint.String()+" is being processed", err.Error())
}

func TestMongoLedger_Record(t *testing.T) {
	app.Config.Solana.Network = "devnet"
	db := mocks.NewMockDatabase(t)
	ledger := NewMongoLedger(db)
	mint := solana.NewWallet().PublicKey()

	result := ActionResult{ID: "id-1", Action: models.ActionUnstake, Mint: mint}.finish(solana.Signature{1}, nil, "")

	db.EXPECT().InsertOne(models.CollectionActions, mock.Anything).
		Run(func(collection string, data interface{}) {
			record, ok := data.(models.ActionRecord)
			assert.True(t, ok)
			assert.Equal(t, "id-1", record.ActionID)
			assert.Equal(t, mint.String(), record.Mint)
			assert.Equal(t, "devnet", record.Network)
		}).
		Return(nil, nil)

	assert.Nil(t, ledger.Record(result))
}

func TestMongoLedger_RecordError(t *testing.T) {
	db := mocks.NewMockDatabase(t)
	ledger := NewMongoLedger(db)

	db.EXPECT().InsertOne(mock.Anything, mock.Anything).Return(nil, errors.New("write failed"))

	assert.NotNil(t, ledger.Record(ActionResult{ID: "id-2"}))
}

func TestMongoLedger_History(t *testing.T) {
	app.Config.Solana.Network = "devnet"
	db := mocks.NewMockDatabase(t)
	ledger := NewMongoLedger(db)
	wallet := solana.NewWallet().PublicKey()

	filter := bson.M{"wallet_address": wallet.String(), "network": "devnet"}
	sort := bson.D{{Key: "started_at", Value: -1}}
	db.EXPECT().FindMany(models.CollectionActions, filter, sort, int64(5), mock.Anything).
		Run(func(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) {
			records := result.(*[]models.ActionRecord)
			*records = append(*records, models.ActionRecord{ActionID: "id-2"}, models.ActionRecord{ActionID: "id-1"})
		}).
		Return(nil)

	records, err := ledger.History(wallet, 5)

	assert.Nil(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "id-2", records[0].ActionID)
}

func TestMongoLedger_HistoryError(t *testing.T) {
	db := mocks.NewMockDatabase(t)
	ledger := NewMongoLedger(db)

	db.EXPECT().FindMany(models.CollectionActions, mock.Anything, mock.Anything, int64(DefaultHistoryLimit), mock.Anything).
		Return(errors.New("read failed"))

	records, err := ledger.History(solana.NewWallet().PublicKey(), 0)

	assert.NotNil(t, err)
	assert.Nil(t, records)
}

func TestClampHistoryLimit(t *testing.T) {
	assert.Equal(t, int64(DefaultHistoryLimit), ClampHistoryLimit(0))
	assert.Equal(t, int64(DefaultHistoryLimit), ClampHistoryLimit(-3))
	assert.Equal(t, int64(7), ClampHistoryLimit(7))
	assert.Equal(t, int64(MaxHistoryLimit), ClampHistoryLimit(1000))
}

func TestNopLedger_History(t *testing.T) {
	records, err := NopLedger{}.History(solana.NewWallet().PublicKey(), 10)

	assert.Nil(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNewLedger(t *testing.T) {
	app.DB = nil
	_, ok := NewLedger().(NopLedger)
	assert.True(t, ok)

	app.DB = mocks.NewMockDatabase(t)
	defer func() { app.DB = nil }()
	_, ok = NewLedger().(*MongoLedger)
	assert.True(t, ok)
}

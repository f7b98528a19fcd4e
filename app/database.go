package app

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/meerkat-millionaires/kat-staking/models"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

// Database is the persistence used for action history, health and
// cross-process locks on mints.
type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error
	InsertOne(collection string, data interface{}) (interface{}, error)
	FindOne(collection string, filter interface{}, result interface{}) error
	// FindMany decodes matching documents into result, a pointer to a slice.
	// A nil sort keeps natural order and a zero limit returns everything.
	FindMany(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) error
	UpsertOne(collection string, filter interface{}, update interface{}) (interface{}, error)

	XLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	timeout  time.Duration
	locker   *lock.Client
}

var (
	DB Database
)

type collectionIndex struct {
	collection string
	keys       bson.D
	unique     bool
}

var indexes = []collectionIndex{
	{models.CollectionActions, bson.D{{Key: "action_id", Value: 1}}, true},
	{models.CollectionActions, bson.D{{Key: "wallet_address", Value: 1}, {Key: "network", Value: 1}, {Key: "started_at", Value: -1}}, false},
	{models.CollectionHealthChecks, bson.D{{Key: "wallet_address", Value: 1}, {Key: "hostname", Value: 1}}, true},
}

func (d *mongoDatabase) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.timeout)
}

func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	ctx, cancel := d.ctx()
	defer cancel()

	wcMajority := writeconcern.New(writeconcern.WMajority(), writeconcern.WTimeout(d.timeout))
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

func (d *mongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")
	ctx, cancel := d.ctx()
	defer cancel()

	locker := lock.NewClient(d.db.Collection("locks"))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

func randomString(n int) string {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	var bytes = make([]byte, n)
	rand.Read(bytes)
	for i, b := range bytes {
		bytes[i] = alphanum[b%byte(len(alphanum))]
	}
	return string(bytes)
}

// XLock takes an exclusive lock on resourceId and returns the lock id to
// release it with.
func (d *mongoDatabase) XLock(resourceId string) (string, error) {
	ctx, cancel := d.ctx()
	defer cancel()

	lockId := randomString(32)
	err := d.locker.XLock(ctx, resourceId, lockId, lock.LockDetails{})
	return lockId, err
}

func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := d.ctx()
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")
	for _, index := range indexes {
		ctx, cancel := d.ctx()
		model := mongo.IndexModel{Keys: index.keys}
		if index.unique {
			model.Options = options.Index().SetUnique(true)
		}
		_, err := d.db.Collection(index.collection).Indexes().CreateOne(ctx, model)
		cancel()
		if err != nil {
			return err
		}
		log.Debug("[DB] Created index on ", index.collection)
	}
	log.Info("[DB] Indexes setup")
	return nil
}

func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := d.ctx()
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

func (d *mongoDatabase) InsertOne(collection string, data interface{}) (interface{}, error) {
	ctx, cancel := d.ctx()
	defer cancel()
	result, err := d.db.Collection(collection).InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}
	return result.InsertedID, nil
}

func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.ctx()
	defer cancel()
	return d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
}

func (d *mongoDatabase) FindMany(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) error {
	ctx, cancel := d.ctx()
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := d.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}

func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) (interface{}, error) {
	ctx, cancel := d.ctx()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, err
	}
	return result.UpsertedID, nil
}

// InitDB creates a new database wrapper. Persistence is optional; without a
// configured uri DB stays nil.
func InitDB() {
	if Config.MongoDB.URI == "" {
		log.Info("[DB] MongoDB uri not set, persistence disabled")
		return
	}

	DB = &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
		timeout:  time.Duration(Config.MongoDB.TimeoutMillis) * time.Millisecond,
	}

	for _, step := range []func() error{DB.Connect, DB.SetupIndexes, DB.SetupLockers} {
		if err := step(); err != nil {
			log.Fatal(err)
		}
	}
	log.Info("[DB] Database initialized")
}

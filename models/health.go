package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionHealthChecks = "healthchecks"
)

type Health struct {
	ID             *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	WalletAddress  string              `bson:"wallet_address" json:"wallet_address"`
	Hostname       string              `bson:"hostname" json:"hostname"`
	Network        string              `bson:"network" json:"network"`
	Healthy        bool                `bson:"healthy" json:"healthy"`
	ServiceHealths []ServiceHealth     `bson:"service_healths" json:"service_healths"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}

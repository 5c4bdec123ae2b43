package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Device stores a push-notification target token, upserted by value.
type Device struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Token     string             `bson:"token" json:"token"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Product   primitive.ObjectID `bson:"product,omitempty" json:"product,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Wishlist is a per-user product bookmark set. Adds are idempotent.
type Wishlist struct {
	Id       primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	User     primitive.ObjectID   `bson:"user" json:"user"`
	Products []primitive.ObjectID `bson:"products" json:"products"`
}

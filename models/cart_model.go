package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Cart holds one document per user; items reference products by id and
// are populated on the way out.
type Cart struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Items     []CartItem         `bson:"items" json:"items"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedCartItem is the outbound form of a cart line with the full
// product document in place of the reference.
type PopulatedCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

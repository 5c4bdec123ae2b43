package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a storefront customer. Accounts are keyed by phone number;
// the wishlist is held as raw product references and is never echoed
// back in user payloads.
type User struct {
	Id           primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName    string               `bson:"firstName" json:"firstName"`
	LastName     string               `bson:"lastName" json:"lastName"`
	PhoneNumber  string               `bson:"phoneNumber" json:"phoneNumber"`
	Uid          string               `bson:"uid,omitempty" json:"uid,omitempty"`
	ProfileImage string               `bson:"profileImage" json:"profileImage"`
	Wishlist     []primitive.ObjectID `bson:"wishlist" json:"-"`
	State        string               `bson:"state,omitempty" json:"state,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
}

const DefaultProfileImage = "/uploads/profiles/default.png"

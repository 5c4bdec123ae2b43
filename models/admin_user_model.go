package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser is a dashboard account. Password holds the bcrypt hash and
// never leaves the process.
type AdminUser struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	LastName     string             `bson:"lastName" json:"lastName"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	ProfileImage string             `bson:"profileImage" json:"profileImage"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

const DefaultAdminImage = "/images/user/owner.jpg"

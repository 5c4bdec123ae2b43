package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stats is a singleton counter document. It is incremented on signup
// and recomputed from the users collection when absent.
type Stats struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TotalCustomers int64              `bson:"totalCustomers" json:"totalCustomers"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProjectName string             `bson:"projectName" json:"projectName"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner carries up to four images; SaleBanner exactly one.
type Banner struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BannerTitle string             `bson:"bannerTitle" json:"bannerTitle"`
	ButtonName  string             `bson:"buttonName" json:"buttonName"`
	Description string             `bson:"description" json:"description"`
	Images      []string           `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SaleBanner struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Discount    float64            `bson:"discount" json:"discount"`
	BannerTitle string             `bson:"bannerTitle" json:"bannerTitle"`
	ButtonText  string             `bson:"buttonText" json:"buttonText"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

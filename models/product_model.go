package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductName string             `bson:"productName" json:"productName"`
	Description string             `bson:"description" json:"description"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Discount    float64            `bson:"discount" json:"discount"`
	Images      []string           `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FinalPrice is the discounted unit price. Orders snapshot this value
// at creation time.
func (p Product) FinalPrice() float64 {
	return p.Price - (p.Price*p.Discount)/100
}

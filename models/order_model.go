package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem carries the discounted unit price snapshotted at order
// creation. Later catalog edits never change it.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
}

type Order struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// PopulatedOrderItem is the outbound form of an order line with the
// full product document in place of the reference.
type PopulatedOrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
)

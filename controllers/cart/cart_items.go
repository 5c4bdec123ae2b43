package cartController

import (
	"github.com/Goriishankar/Dolchem-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// addItem increments the quantity when the product is already in the
// cart, otherwise appends it with quantity 1.
func addItem(items []models.CartItem, productId primitive.ObjectID) []models.CartItem {
	for i := range items {
		if items[i].Product == productId {
			items[i].Quantity++
			return items
		}
	}
	return append(items, models.CartItem{Product: productId, Quantity: 1})
}

// setQuantity sets the line's quantity, removing the line entirely
// when quantity drops to zero or below. The bool reports whether the
// product was in the cart.
func setQuantity(items []models.CartItem, productId primitive.ObjectID, quantity int) ([]models.CartItem, bool) {
	for i := range items {
		if items[i].Product == productId {
			if quantity <= 0 {
				return append(items[:i], items[i+1:]...), true
			}
			items[i].Quantity = quantity
			return items, true
		}
	}
	return items, false
}

func removeItem(items []models.CartItem, productId primitive.ObjectID) []models.CartItem {
	for i := range items {
		if items[i].Product == productId {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

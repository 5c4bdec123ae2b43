package orderController

import (
	"github.com/Goriishankar/Dolchem-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildOrderItems snapshots each cart line's current discounted unit
// price into an order line and sums the total. Lines whose product is
// gone from the catalog are skipped.
func buildOrderItems(items []models.CartItem, products map[primitive.ObjectID]models.Product) ([]models.OrderItem, float64) {
	orderItems := make([]models.OrderItem, 0, len(items))
	var total float64
	for _, item := range items {
		product, ok := products[item.Product]
		if !ok {
			continue
		}
		price := product.FinalPrice()
		total += price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			Product:  product.Id,
			Quantity: item.Quantity,
			Price:    price,
		})
	}
	return orderItems, total
}

// populateItems swaps each line's product reference for the full
// product document on the way out. Callers pass the same product map
// the lines were built from, so every reference resolves.
func populateItems(items []models.OrderItem, products map[primitive.ObjectID]models.Product) []models.PopulatedOrderItem {
	populated := make([]models.PopulatedOrderItem, 0, len(items))
	for _, item := range items {
		populated = append(populated, models.PopulatedOrderItem{
			Product:  products[item.Product],
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return populated
}

// paymentStatusFor tags card payments completed; everything else waits.
func paymentStatusFor(method string) string {
	if method == "card" {
		return models.PaymentCompleted
	}
	return models.PaymentPending
}

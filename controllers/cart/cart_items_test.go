package cartController

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Goriishankar/Dolchem-backend/models"
)

func TestAddItem(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	items := addItem(nil, first)
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %v", items)
	}

	items = addItem(items, first)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected same line incremented to 2, got %v", items)
	}

	items = addItem(items, second)
	if len(items) != 2 || items[1].Product != second || items[1].Quantity != 1 {
		t.Fatalf("expected a new line for second product, got %v", items)
	}
}

func TestSetQuantity(t *testing.T) {
	productId := primitive.NewObjectID()
	items := []models.CartItem{{Product: productId, Quantity: 1}}

	items, found := setQuantity(items, productId, 5)
	if !found || items[0].Quantity != 5 {
		t.Fatalf("expected quantity set to 5, got found=%v items=%v", found, items)
	}

	items, found = setQuantity(items, productId, 0)
	if !found || len(items) != 0 {
		t.Fatalf("expected line removed at quantity 0, got found=%v items=%v", found, items)
	}

	_, found = setQuantity(items, primitive.NewObjectID(), 3)
	if found {
		t.Fatal("expected found=false for a product not in the cart")
	}
}

func TestRemoveItem(t *testing.T) {
	keep := primitive.NewObjectID()
	drop := primitive.NewObjectID()
	items := []models.CartItem{
		{Product: keep, Quantity: 2},
		{Product: drop, Quantity: 1},
	}

	items = removeItem(items, drop)
	if len(items) != 1 || items[0].Product != keep {
		t.Fatalf("expected only the kept line, got %v", items)
	}

	items = removeItem(items, drop)
	if len(items) != 1 {
		t.Fatalf("removing an absent product should be a no-op, got %v", items)
	}
}

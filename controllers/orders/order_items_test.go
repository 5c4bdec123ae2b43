package orderController

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Goriishankar/Dolchem-backend/models"
)

func TestBuildOrderItems(t *testing.T) {
	discounted := primitive.NewObjectID()
	plain := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	products := map[primitive.ObjectID]models.Product{
		discounted: {Id: discounted, Price: 100, Discount: 10},
		plain:      {Id: plain, Price: 50},
	}
	cart := []models.CartItem{
		{Product: discounted, Quantity: 2},
		{Product: plain, Quantity: 1},
		{Product: missing, Quantity: 3},
	}

	items, total := buildOrderItems(cart, products)

	if len(items) != 2 {
		t.Fatalf("expected the missing product skipped, got %d lines", len(items))
	}
	if items[0].Price != 90 {
		t.Errorf("expected discounted unit price 90, got %v", items[0].Price)
	}
	if total != 2*90+50 {
		t.Errorf("expected total 230, got %v", total)
	}
}

func TestBuildOrderItemsEmptyCart(t *testing.T) {
	items, total := buildOrderItems(nil, nil)
	if len(items) != 0 || total != 0 {
		t.Fatalf("expected no lines and zero total, got %v / %v", items, total)
	}
}

func TestPopulateItems(t *testing.T) {
	productId := primitive.NewObjectID()
	products := map[primitive.ObjectID]models.Product{
		productId: {Id: productId, ProductName: "Mug", Price: 100, Discount: 10},
	}
	items := []models.OrderItem{{Product: productId, Quantity: 2, Price: 90}}

	populated := populateItems(items, products)

	if len(populated) != 1 {
		t.Fatalf("expected one populated line, got %d", len(populated))
	}
	if populated[0].Product.ProductName != "Mug" {
		t.Errorf("expected the full product attached, got %+v", populated[0].Product)
	}
	if populated[0].Quantity != 2 || populated[0].Price != 90 {
		t.Errorf("expected quantity and snapshot price carried over, got %+v", populated[0])
	}
}

func TestPaymentStatusFor(t *testing.T) {
	if got := paymentStatusFor("card"); got != models.PaymentCompleted {
		t.Errorf("card: got %q, want %q", got, models.PaymentCompleted)
	}
	if got := paymentStatusFor("cod"); got != models.PaymentPending {
		t.Errorf("cod: got %q, want %q", got, models.PaymentPending)
	}
	if got := paymentStatusFor("Card"); got != models.PaymentPending {
		t.Errorf("method match is exact, got %q", got)
	}
}

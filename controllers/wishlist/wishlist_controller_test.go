package wishlistController

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContains(t *testing.T) {
	present := primitive.NewObjectID()
	absent := primitive.NewObjectID()
	products := []primitive.ObjectID{primitive.NewObjectID(), present}

	if !contains(products, present) {
		t.Error("expected present id to be found")
	}
	if contains(products, absent) {
		t.Error("expected absent id to be missed")
	}
	if contains(nil, present) {
		t.Error("expected nothing found in an empty list")
	}
}

package orderController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Goriishankar/Dolchem-backend/configs"
	"github.com/Goriishankar/Dolchem-backend/models"
	"github.com/Goriishankar/Dolchem-backend/realtime"
	"github.com/Goriishankar/Dolchem-backend/responses"
)

// Controller creates orders from the user's cart with price snapshots.
// Orders are immutable after creation.
type Controller struct {
	orders   *mongo.Collection
	carts    *mongo.Collection
	products *mongo.Collection
	hub      *realtime.Hub
	log      *zap.Logger
}

func New(db *mongo.Database, hub *realtime.Hub, log *zap.Logger) *Controller {
	return &Controller{
		orders:   configs.GetCollection(db, "orders"),
		carts:    configs.GetCollection(db, "carts"),
		products: configs.GetCollection(db, "products"),
		hub:      hub,
		log:      log,
	}
}

type createOrderRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// Create requires a non-empty cart, snapshots each line's discounted
// price, empties the cart and broadcasts the total for completed
// payments.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	raw, ok := c.Locals("userId").(string)
	if !ok || raw == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	userId, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid User ID format")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.PaymentMethod == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Payment method required")
	}

	var cart models.Cart
	err = ctl.carts.FindOne(ctx, bson.M{"user": userId}).Decode(&cart)
	if err == mongo.ErrNoDocuments || (err == nil && len(cart.Items) == 0) {
		return responses.Error(c, fiber.StatusBadRequest, "Cart is empty")
	}
	if err != nil {
		ctl.log.Error("cart fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.Product)
	}
	cursor, err := ctl.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		ctl.log.Error("product fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		ctl.log.Error("product decode failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	byId := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byId[p.Id] = p
	}

	items, total := buildOrderItems(cart.Items, byId)

	order := models.Order{
		Id:            primitive.NewObjectID(),
		User:          userId,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: paymentStatusFor(req.PaymentMethod),
		CreatedAt:     time.Now(),
	}
	if _, err := ctl.orders.InsertOne(ctx, order); err != nil {
		ctl.log.Error("order insert failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if _, err := ctl.carts.UpdateOne(ctx, bson.M{"user": userId},
		bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now()}}); err != nil {
		ctl.log.Error("cart clear failed", zap.Error(err))
	}

	if order.PaymentStatus == models.PaymentCompleted {
		ctl.hub.Emit("order:updated", fiber.Map{"totalAmount": order.TotalAmount})
	}

	return responses.OK(c, fiber.StatusOK, "Order created successfully", &fiber.Map{"order": fiber.Map{
		"_id":           order.Id,
		"user":          order.User,
		"items":         populateItems(order.Items, byId),
		"totalAmount":   order.TotalAmount,
		"paymentMethod": order.PaymentMethod,
		"paymentStatus": order.PaymentStatus,
		"createdAt":     order.CreatedAt,
	}})
}

package cartController

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
	"github.com/Goriishankar/Dolchem-backend/responses"
)

// Controller serves per-user cart mutation. Every handler requires the
// bearer token to resolve to a user id.
type Controller struct {
	carts    *mongo.Collection
	products *mongo.Collection
	log      *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Controller {
	return &Controller{
		carts:    configs.GetCollection(db, "carts"),
		products: configs.GetCollection(db, "products"),
		log:      log,
	}
}

func userIdFromCtx(c *fiber.Ctx) (primitive.ObjectID, bool) {
	raw, ok := c.Locals("userId").(string)
	if !ok || raw == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// getOrCreate fetches the user's cart, creating an empty one on first
// use.
func (ctl *Controller) getOrCreate(ctx context.Context, userId primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := ctl.carts.FindOne(ctx, bson.M{"user": userId}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		cart = models.Cart{
			Id:        primitive.NewObjectID(),
			User:      userId,
			Items:     []models.CartItem{},
			UpdatedAt: time.Now(),
		}
		_, err = ctl.carts.InsertOne(ctx, cart)
	}
	return cart, err
}

// populate swaps item references for full product documents. Lines
// whose product no longer exists are skipped, matching the tolerance
// for orphaned references.
func (ctl *Controller) populate(ctx context.Context, cart models.Cart) (fiber.Map, error) {
	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.Product)
	}

	byId := make(map[primitive.ObjectID]models.Product, len(ids))
	if len(ids) > 0 {
		cursor, err := ctl.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			return nil, err
		}
		for _, p := range products {
			byId[p.Id] = p
		}
	}

	items := make([]models.PopulatedCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if p, ok := byId[item.Product]; ok {
			items = append(items, models.PopulatedCartItem{Product: p, Quantity: item.Quantity})
		}
	}

	return fiber.Map{
		"_id":       cart.Id,
		"user":      cart.User,
		"items":     items,
		"updatedAt": cart.UpdatedAt,
	}, nil
}

func (ctl *Controller) respondWithCart(c *fiber.Ctx, ctx context.Context, message string, cart models.Cart) error {
	populated, err := ctl.populate(ctx, cart)
	if err != nil {
		ctl.log.Error("cart populate failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, message, &fiber.Map{"cart": populated})
}

// Get returns the user's cart, creating it on first access.
func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	cart, err := ctl.getOrCreate(ctx, userId)
	if err != nil {
		ctl.log.Error("cart fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return ctl.respondWithCart(c, ctx, "Cart fetched", cart)
}

type cartItemRequest struct {
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Add puts a product into the cart, incrementing its quantity when
// already present.
func (ctl *Controller) Add(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	productId, err := primitive.ObjectIDFromHex(req.ProductId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product id")
	}

	if err := ctl.products.FindOne(ctx, bson.M{"_id": productId}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		ctl.log.Error("product lookup failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	cart, err := ctl.getOrCreate(ctx, userId)
	if err != nil {
		ctl.log.Error("cart fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	cart.Items = addItem(cart.Items, productId)
	cart.UpdatedAt = time.Now()
	if err := ctl.save(ctx, cart); err != nil {
		ctl.log.Error("cart save failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return ctl.respondWithCart(c, ctx, "Added to cart", cart)
}

// Update sets a line's quantity; quantity at or below zero removes the
// line entirely.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	productId, err := primitive.ObjectIDFromHex(req.ProductId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var cart models.Cart
	err = ctl.carts.FindOne(ctx, bson.M{"user": userId}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Cart not found")
	}
	if err != nil {
		ctl.log.Error("cart fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	items, found := setQuantity(cart.Items, productId, req.Quantity)
	if !found {
		return responses.Error(c, fiber.StatusNotFound, "Item not in cart")
	}
	cart.Items = items
	cart.UpdatedAt = time.Now()
	if err := ctl.save(ctx, cart); err != nil {
		ctl.log.Error("cart save failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return ctl.respondWithCart(c, ctx, "Cart updated", cart)
}

// Remove drops the product's line from the cart.
func (ctl *Controller) Remove(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	productId, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var cart models.Cart
	err = ctl.carts.FindOne(ctx, bson.M{"user": userId}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Cart not found")
	}
	if err != nil {
		ctl.log.Error("cart fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	cart.Items = removeItem(cart.Items, productId)
	cart.UpdatedAt = time.Now()
	if err := ctl.save(ctx, cart); err != nil {
		ctl.log.Error("cart save failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return ctl.respondWithCart(c, ctx, "Removed from cart", cart)
}

// Clear empties the cart.
func (ctl *Controller) Clear(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var cart models.Cart
	err := ctl.carts.FindOne(ctx, bson.M{"user": userId}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Cart not found")
	}
	if err != nil {
		ctl.log.Error("cart fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	cart.Items = []models.CartItem{}
	cart.UpdatedAt = time.Now()
	if err := ctl.save(ctx, cart); err != nil {
		ctl.log.Error("cart save failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, "Cart cleared successfully", &fiber.Map{"cart": cart})
}

func (ctl *Controller) save(ctx context.Context, cart models.Cart) error {
	_, err := ctl.carts.UpdateOne(ctx, bson.M{"_id": cart.Id},
		bson.M{"$set": bson.M{"items": cart.Items, "updatedAt": cart.UpdatedAt}})
	return err
}

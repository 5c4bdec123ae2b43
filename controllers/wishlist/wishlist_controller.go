package wishlistController

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

// Controller serves the per-user product bookmark set. Responses
// always carry populated products, never raw references.
type Controller struct {
	wishlists *mongo.Collection
	products  *mongo.Collection
	log       *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Controller {
	return &Controller{
		wishlists: configs.GetCollection(db, "wishlists"),
		products:  configs.GetCollection(db, "products"),
		log:       log,
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

// contains reports whether the bookmark set already holds the product,
// keeping adds idempotent.
func contains(products []primitive.ObjectID, productId primitive.ObjectID) bool {
	for _, id := range products {
		if id == productId {
			return true
		}
	}
	return false
}

func (ctl *Controller) getOrCreate(ctx context.Context, userId primitive.ObjectID) (models.Wishlist, error) {
	var wishlist models.Wishlist
	err := ctl.wishlists.FindOne(ctx, bson.M{"user": userId}).Decode(&wishlist)
	if err == mongo.ErrNoDocuments {
		wishlist = models.Wishlist{
			Id:       primitive.NewObjectID(),
			User:     userId,
			Products: []primitive.ObjectID{},
		}
		_, err = ctl.wishlists.InsertOne(ctx, wishlist)
	}
	return wishlist, err
}

func (ctl *Controller) respondWithProducts(c *fiber.Ctx, ctx context.Context, wishlist models.Wishlist) error {
	products := []models.Product{}
	if len(wishlist.Products) > 0 {
		cursor, err := ctl.products.Find(ctx, bson.M{"_id": bson.M{"$in": wishlist.Products}})
		if err != nil {
			ctl.log.Error("wishlist populate failed", zap.Error(err))
			return responses.Error(c, fiber.StatusInternalServerError, "Server error")
		}
		if err := cursor.All(ctx, &products); err != nil {
			ctl.log.Error("wishlist decode failed", zap.Error(err))
			return responses.Error(c, fiber.StatusInternalServerError, "Server error")
		}
	}
	return responses.OK(c, fiber.StatusOK, "Wishlist fetched", &fiber.Map{"products": products})
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	wishlist, err := ctl.getOrCreate(ctx, userId)
	if err != nil {
		ctl.log.Error("wishlist fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return ctl.respondWithProducts(c, ctx, wishlist)
}

type wishlistRequest struct {
	ProductId string `json:"productId"`
}

// Add bookmarks a product. Adding twice keeps a single entry.
func (ctl *Controller) Add(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req wishlistRequest
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

	wishlist, err := ctl.getOrCreate(ctx, userId)
	if err != nil {
		ctl.log.Error("wishlist fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if !contains(wishlist.Products, productId) {
		wishlist.Products = append(wishlist.Products, productId)
		if _, err := ctl.wishlists.UpdateOne(ctx, bson.M{"_id": wishlist.Id},
			bson.M{"$set": bson.M{"products": wishlist.Products}}); err != nil {
			ctl.log.Error("wishlist save failed", zap.Error(err))
			return responses.Error(c, fiber.StatusInternalServerError, "Server error")
		}
	}
	return ctl.respondWithProducts(c, ctx, wishlist)
}

// Remove filters the product out of the bookmark set.
func (ctl *Controller) Remove(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req wishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	productId, err := primitive.ObjectIDFromHex(req.ProductId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var wishlist models.Wishlist
	err = ctl.wishlists.FindOne(ctx, bson.M{"user": userId}).Decode(&wishlist)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Wishlist not found")
	}
	if err != nil {
		ctl.log.Error("wishlist fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	kept := wishlist.Products[:0]
	for _, id := range wishlist.Products {
		if id != productId {
			kept = append(kept, id)
		}
	}
	wishlist.Products = kept
	if _, err := ctl.wishlists.UpdateOne(ctx, bson.M{"_id": wishlist.Id},
		bson.M{"$set": bson.M{"products": wishlist.Products}}); err != nil {
		ctl.log.Error("wishlist save failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return ctl.respondWithProducts(c, ctx, wishlist)
}

package notificationController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Goriishankar/Dolchem-backend/configs"
	"github.com/Goriishankar/Dolchem-backend/models"
	"github.com/Goriishankar/Dolchem-backend/responses"
)

// Controller serves the append-only, admin-clearable notification
// feed.
type Controller struct {
	notifications *mongo.Collection
	products      *mongo.Collection
	log           *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Controller {
	return &Controller{
		notifications: configs.GetCollection(db, "notifications"),
		products:      configs.GetCollection(db, "products"),
		log:           log,
	}
}

// List returns all notifications newest first with the referenced
// product attached when it still exists.
func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ctl.notifications.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		ctl.log.Error("notification list failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		ctl.log.Error("notification decode failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(notifications))
	for _, n := range notifications {
		entry := fiber.Map{
			"_id":       n.Id,
			"title":     n.Title,
			"body":      n.Body,
			"createdAt": n.CreatedAt,
		}
		var product models.Product
		if err := ctl.products.FindOne(ctx, bson.M{"_id": n.Product}).Decode(&product); err == nil {
			entry["product"] = product
		}
		result = append(result, entry)
	}

	return responses.OK(c, fiber.StatusOK, "Notifications fetched", &fiber.Map{"notifications": result})
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	if _, err := ctl.notifications.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		ctl.log.Error("notification delete failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, "Deleted", nil)
}

func (ctl *Controller) Clear(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := ctl.notifications.DeleteMany(ctx, bson.M{}); err != nil {
		ctl.log.Error("notification clear failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, "All notifications cleared", nil)
}

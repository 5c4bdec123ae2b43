package deviceController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Goriishankar/Dolchem-backend/configs"
	"github.com/Goriishankar/Dolchem-backend/responses"
)

// Controller registers push-notification target tokens.
type Controller struct {
	devices *mongo.Collection
	log     *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Controller {
	return &Controller{
		devices: configs.GetCollection(db, "devices"),
		log:     log,
	}
}

type tokenRequest struct {
	Token string `json:"token"`
}

// SaveToken upserts the device document keyed by token value.
func (ctl *Controller) SaveToken(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Token == "" {
		return responses.Error(c, fiber.StatusBadRequest, "token required")
	}

	_, err := ctl.devices.UpdateOne(ctx, bson.M{"token": req.Token},
		bson.M{
			"$set":         bson.M{"token": req.Token},
			"$setOnInsert": bson.M{"createdAt": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		ctl.log.Error("device token upsert failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Token saved", nil)
}

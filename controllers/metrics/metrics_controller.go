package metricsController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Goriishankar/Dolchem-backend/configs"
	"github.com/Goriishankar/Dolchem-backend/models"
	"github.com/Goriishankar/Dolchem-backend/responses"
)

// Controller serves the unauthenticated revenue summary.
type Controller struct {
	orders *mongo.Collection
	log    *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Controller {
	return &Controller{
		orders: configs.GetCollection(db, "orders"),
		log:    log,
	}
}

func (ctl *Controller) revenueSince(ctx context.Context, since *time.Time) (float64, error) {
	match := bson.M{"paymentStatus": models.PaymentCompleted}
	if since != nil {
		match["createdAt"] = bson.M{"$gte": *since}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$totalAmount"},
		}}},
	}

	cursor, err := ctl.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var results []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Revenue, nil
}

// Public returns today / this month / all-time revenue over completed
// orders.
func (ctl *Controller) Public(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayRevenue, err := ctl.revenueSince(ctx, &today)
	if err != nil {
		ctl.log.Error("today revenue failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server Error")
	}
	monthRevenue, err := ctl.revenueSince(ctx, &month)
	if err != nil {
		ctl.log.Error("month revenue failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server Error")
	}
	totalRevenue, err := ctl.revenueSince(ctx, nil)
	if err != nil {
		ctl.log.Error("total revenue failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server Error")
	}

	return responses.OK(c, fiber.StatusOK, "Revenue summary", &fiber.Map{
		"todayRevenue": todayRevenue,
		"monthRevenue": monthRevenue,
		"totalRevenue": totalRevenue,
	})
}

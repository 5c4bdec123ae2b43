package statsController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Goriishankar/Dolchem-backend/configs"
	"github.com/Goriishankar/Dolchem-backend/models"
	"github.com/Goriishankar/Dolchem-backend/responses"
)

// Controller computes dashboard aggregates over completed orders plus
// the denormalized customer counter.
type Controller struct {
	orders *mongo.Collection
	carts  *mongo.Collection
	users  *mongo.Collection
	stats  *mongo.Collection
	log    *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Controller {
	return &Controller{
		orders: configs.GetCollection(db, "orders"),
		carts:  configs.GetCollection(db, "carts"),
		users:  configs.GetCollection(db, "users"),
		stats:  configs.GetCollection(db, "stats"),
		log:    log,
	}
}

// completedTotals aggregates order count and revenue over completed
// orders, optionally restricted to createdAt >= since.
func (ctl *Controller) completedTotals(ctx context.Context, since *time.Time) (int64, float64, error) {
	match := bson.M{"paymentStatus": models.PaymentCompleted}
	if since != nil {
		match["createdAt"] = bson.M{"$gte": *since}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
		}}},
	}

	cursor, err := ctl.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	var results []struct {
		Orders  int64   `bson:"orders"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Orders, results[0].Revenue, nil
}

// Today returns completed order count and revenue since midnight.
func (ctl *Controller) Today(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := startOfDay(time.Now())
	orders, revenue, err := ctl.completedTotals(ctx, &start)
	if err != nil {
		ctl.log.Error("today stats failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, "Today stats", &fiber.Map{
		"orders":  orders,
		"revenue": revenue,
	})
}

// Month returns revenue since the first of the month.
func (ctl *Controller) Month(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := startOfMonth(time.Now())
	_, revenue, err := ctl.completedTotals(ctx, &start)
	if err != nil {
		ctl.log.Error("month stats failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, "Month stats", &fiber.Map{"revenue": revenue})
}

// Overall returns customer, non-empty cart and completed order totals.
func (ctl *Controller) Overall(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	customers, err := ctl.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		ctl.log.Error("user count failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	carts, err := ctl.carts.CountDocuments(ctx, bson.M{"items.0": bson.M{"$exists": true}})
	if err != nil {
		ctl.log.Error("cart count failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	orders, revenue, err := ctl.completedTotals(ctx, nil)
	if err != nil {
		ctl.log.Error("overall stats failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Overall stats", &fiber.Map{
		"totalCustomers": customers,
		"totalCarts":     carts,
		"totalOrders":    orders,
		"totalRevenue":   revenue,
	})
}

// States tallies users by non-empty state, most logins first.
func (ctl *Controller) States(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"state": bson.M{"$exists": true, "$nin": bson.A{nil, ""}}}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$state",
			"logins": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"name":   "$_id",
			"logins": 1,
			"_id":    0,
		}}},
		{{Key: "$sort", Value: bson.M{"logins": -1}}},
	}

	cursor, err := ctl.users.Aggregate(ctx, pipeline)
	if err != nil {
		ctl.log.Error("state stats failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	var states []bson.M
	if err := cursor.All(ctx, &states); err != nil {
		ctl.log.Error("state stats decode failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "State stats", &fiber.Map{"states": states})
}

// CustomerCount serves the denormalized counter. When the singleton
// document is absent it recounts the users collection, upserts the
// result and returns the recount. A merely stale counter is returned
// as-is.
func (ctl *Controller) CustomerCount(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var stats models.Stats
	err := ctl.stats.FindOne(ctx, bson.M{}).Decode(&stats)
	if err == nil {
		return responses.OK(c, fiber.StatusOK, "Customer count", &fiber.Map{
			"totalCustomers": stats.TotalCustomers,
		})
	}
	if err != mongo.ErrNoDocuments {
		ctl.log.Error("stats fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	total, err := ctl.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		ctl.log.Error("user recount failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	_, err = ctl.stats.UpdateOne(ctx, bson.M{},
		bson.M{"$set": bson.M{"totalCustomers": total, "updatedAt": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		ctl.log.Error("stats upsert failed", zap.Error(err))
	}

	return responses.OK(c, fiber.StatusOK, "Customer count", &fiber.Map{"totalCustomers": total})
}

package authController

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Goriishankar/Dolchem-backend/configs"
	"github.com/Goriishankar/Dolchem-backend/models"
	"github.com/Goriishankar/Dolchem-backend/realtime"
	"github.com/Goriishankar/Dolchem-backend/responses"
)

const tokenTTL = 7 * 24 * time.Hour

// Controller owns customer and admin account flows: signup, logins,
// profile field mutation and the customer counter side effects.
type Controller struct {
	users  *mongo.Collection
	admins *mongo.Collection
	stats  *mongo.Collection
	hub    *realtime.Hub
	log    *zap.Logger
	secret string
}

func New(db *mongo.Database, hub *realtime.Hub, log *zap.Logger, secret string) *Controller {
	return &Controller{
		users:  configs.GetCollection(db, "users"),
		admins: configs.GetCollection(db, "adminusers"),
		stats:  configs.GetCollection(db, "stats"),
		hub:    hub,
		log:    log,
		secret: secret,
	}
}

func (ctl *Controller) signToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(tokenTTL).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ctl.secret))
}

// totalCustomers reads the denormalized counter; absent document
// counts as zero here, the recount fallback lives in the stats
// controller.
func (ctl *Controller) totalCustomers(ctx context.Context) int64 {
	var stats models.Stats
	if err := ctl.stats.FindOne(ctx, bson.M{}).Decode(&stats); err != nil {
		return 0
	}
	return stats.TotalCustomers
}

func (ctl *Controller) emitCustomerCount(ctx context.Context) {
	ctl.hub.Emit("customerCountUpdate", fiber.Map{"totalCustomers": ctl.totalCustomers(ctx)})
}

type signupRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Uid         string `json:"uid"`
	State       string `json:"state"`
}

// Signup creates a customer account keyed by phone number, bumps the
// customer counter and broadcasts the new value.
func (ctl *Controller) Signup(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.FirstName == "" || req.LastName == "" || req.PhoneNumber == "" {
		return responses.Error(c, fiber.StatusBadRequest, "All fields required")
	}

	err := ctl.users.FindOne(ctx, bson.M{"phoneNumber": req.PhoneNumber}).Err()
	if err == nil {
		return responses.Error(c, fiber.StatusBadRequest, "User exists")
	}
	if err != mongo.ErrNoDocuments {
		ctl.log.Error("signup lookup failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	user := models.User{
		Id:           primitive.NewObjectID(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Uid:          req.Uid,
		ProfileImage: models.DefaultProfileImage,
		Wishlist:     []primitive.ObjectID{},
		State:        strings.TrimSpace(req.State),
		CreatedAt:    time.Now(),
	}
	if _, err := ctl.users.InsertOne(ctx, user); err != nil {
		ctl.log.Error("signup insert failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	_, err = ctl.stats.UpdateOne(ctx, bson.M{},
		bson.M{
			"$inc": bson.M{"totalCustomers": 1},
			"$set": bson.M{"updatedAt": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		ctl.log.Error("customer counter increment failed", zap.Error(err))
	}

	ctl.emitCustomerCount(ctx)

	return responses.OK(c, fiber.StatusCreated, "User created", &fiber.Map{"user": user})
}

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	State       string `json:"state"`
}

// Login looks a customer up by phone number, refreshes a changed
// state, issues a token and broadcasts the live counter plus a
// state-login event.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	var user models.User
	err := ctl.users.FindOne(ctx, bson.M{"phoneNumber": req.PhoneNumber}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		ctl.log.Error("login lookup failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if state := strings.TrimSpace(req.State); state != "" && state != user.State {
		if _, err := ctl.users.UpdateOne(ctx, bson.M{"_id": user.Id},
			bson.M{"$set": bson.M{"state": state}}); err != nil {
			ctl.log.Error("state update failed", zap.Error(err))
		} else {
			user.State = state
		}
	}

	token, err := ctl.signToken(jwt.MapClaims{"userId": user.Id.Hex()})
	if err != nil {
		ctl.log.Error("token signing failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	ctl.emitCustomerCount(ctx)
	if state := strings.TrimSpace(user.State); state != "" {
		ctl.hub.Emit("userLogin", fiber.Map{"state": state})
	}

	return responses.OK(c, fiber.StatusOK, "Login success", &fiber.Map{
		"user":  user,
		"token": token,
	})
}

type updateProfileRequest struct {
	UserId    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// nameUpdate builds the $set document from the non-empty name fields.
// An empty result means there is nothing to write.
func nameUpdate(firstName, lastName string) bson.M {
	update := bson.M{}
	if firstName != "" {
		update["firstName"] = firstName
	}
	if lastName != "" {
		update["lastName"] = lastName
	}
	return update
}

// UpdateProfile mutates name fields, ignoring the ones left empty.
func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.UserId == "" {
		return responses.Error(c, fiber.StatusBadRequest, "userId required")
	}
	userId, err := primitive.ObjectIDFromHex(req.UserId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid userId")
	}

	update := nameUpdate(req.FirstName, req.LastName)

	var user models.User
	if len(update) == 0 {
		// the server rejects an empty $set; no fields means no write
		err = ctl.users.FindOne(ctx, bson.M{"_id": userId}).Decode(&user)
	} else {
		err = ctl.users.FindOneAndUpdate(ctx, bson.M{"_id": userId}, bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	}
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		ctl.log.Error("profile update failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Name updated", &fiber.Map{"user": user})
}

type updatePhoneRequest struct {
	UserId         string `json:"userId"`
	NewPhoneNumber string `json:"newPhoneNumber"`
}

// UpdatePhone swaps the account's phone number after a uniqueness
// check against every other account.
func (ctl *Controller) UpdatePhone(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req updatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.UserId == "" || req.NewPhoneNumber == "" {
		return responses.Error(c, fiber.StatusBadRequest, "userId and newPhoneNumber required")
	}
	userId, err := primitive.ObjectIDFromHex(req.UserId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid userId")
	}

	var existing models.User
	err = ctl.users.FindOne(ctx, bson.M{"phoneNumber": req.NewPhoneNumber}).Decode(&existing)
	if err == nil && existing.Id != userId {
		return responses.Error(c, fiber.StatusBadRequest, "Phone number already in use")
	}
	if err != nil && err != mongo.ErrNoDocuments {
		ctl.log.Error("phone uniqueness check failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	var user models.User
	err = ctl.users.FindOneAndUpdate(ctx, bson.M{"_id": userId},
		bson.M{"$set": bson.M{"phoneNumber": req.NewPhoneNumber}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		ctl.log.Error("phone update failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Phone updated", &fiber.Map{"user": user})
}

package profileController

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
	"github.com/Goriishankar/Dolchem-backend/storage"
)

// Controller manages customer profile images and the public profile
// view.
type Controller struct {
	users   *mongo.Collection
	uploads *storage.Store
	log     *zap.Logger
}

func New(db *mongo.Database, uploads *storage.Store, log *zap.Logger) *Controller {
	return &Controller{
		users:   configs.GetCollection(db, "users"),
		uploads: uploads,
		log:     log,
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

// Upload replaces the profile image, deleting the previous file unless
// it is the shared default.
func (ctl *Controller) Upload(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	fh, err := c.FormFile("profileImage")
	if err != nil || fh == nil {
		return responses.Error(c, fiber.StatusBadRequest, "profileImage file required")
	}

	var user models.User
	err = ctl.users.FindOne(ctx, bson.M{"_id": userId}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		ctl.log.Error("user fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	name, err := ctl.uploads.SaveImage(fh, storage.SubProfiles)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if user.ProfileImage != "" && user.ProfileImage != models.DefaultProfileImage {
		ctl.uploads.RemovePath(user.ProfileImage)
	}

	user.ProfileImage = "/uploads/" + storage.SubProfiles + "/" + name
	if _, err := ctl.users.UpdateOne(ctx, bson.M{"_id": userId},
		bson.M{"$set": bson.M{"profileImage": user.ProfileImage}}); err != nil {
		ctl.log.Error("profile image update failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Profile image updated", &fiber.Map{"user": user})
}

// Delete resets the profile image to the default, removing the stored
// file.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := userIdFromCtx(c)
	if !ok {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var user models.User
	err := ctl.users.FindOne(ctx, bson.M{"_id": userId}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		ctl.log.Error("user fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if user.ProfileImage != "" && user.ProfileImage != models.DefaultProfileImage {
		ctl.uploads.RemovePath(user.ProfileImage)
	}

	user.ProfileImage = models.DefaultProfileImage
	if _, err := ctl.users.UpdateOne(ctx, bson.M{"_id": userId},
		bson.M{"$set": bson.M{"profileImage": user.ProfileImage}}); err != nil {
		ctl.log.Error("profile image reset failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Profile image removed", &fiber.Map{"user": user})
}

// Get returns a user's public profile. The wishlist never appears in
// the payload.
func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user models.User
	err = ctl.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		ctl.log.Error("user fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "User profile", &fiber.Map{"user": user})
}

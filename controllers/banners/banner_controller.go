package bannerController

import (
	"context"
	"encoding/json"
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
	"github.com/Goriishankar/Dolchem-backend/storage"
)

const maxBannerImages = 4

// canAddImages reports whether n new uploads keep the banner at or
// under the image cap. Checked before any file hits disk.
func canAddImages(current, added int) bool {
	return current+added <= maxBannerImages
}

// Controller serves promotional banner CRUD with up to four images per
// banner.
type Controller struct {
	banners *mongo.Collection
	uploads *storage.Store
	log     *zap.Logger
}

func New(db *mongo.Database, uploads *storage.Store, log *zap.Logger) *Controller {
	return &Controller{
		banners: configs.GetCollection(db, "banners"),
		uploads: uploads,
		log:     log,
	}
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ctl.banners.Find(ctx, bson.M{})
	if err != nil {
		ctl.log.Error("banner list failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	var banners []models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		ctl.log.Error("banner decode failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, "Banners fetched", &fiber.Map{"banners": banners})
}

// Create requires at least one image. Saved files are rolled back when
// the insert fails.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["images"]) == 0 {
		return responses.Error(c, fiber.StatusBadRequest, "At least one image required")
	}

	images, err := ctl.uploads.SaveImages(form.File["images"], storage.SubBanners, maxBannerImages)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	bannerTitle := c.FormValue("bannerTitle")
	buttonName := c.FormValue("buttonName")
	description := c.FormValue("description")
	if bannerTitle == "" || buttonName == "" || description == "" {
		ctl.uploads.RemoveAll(storage.SubBanners, images)
		return responses.Error(c, fiber.StatusBadRequest, "bannerTitle, buttonName and description are required")
	}

	now := time.Now()
	banner := models.Banner{
		Id:          primitive.NewObjectID(),
		BannerTitle: bannerTitle,
		ButtonName:  buttonName,
		Description: description,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := ctl.banners.InsertOne(ctx, banner); err != nil {
		ctl.uploads.RemoveAll(storage.SubBanners, images)
		ctl.log.Error("banner insert failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusCreated, "Banner created", &fiber.Map{"banner": banner})
}

// Update mutates fields and the image set via the deletedImages JSON
// side-channel. The result must keep between one and four images.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid banner id")
	}

	var banner models.Banner
	err = ctl.banners.FindOne(ctx, bson.M{"_id": id}).Decode(&banner)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Banner not found")
	}
	if err != nil {
		ctl.log.Error("banner fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	images := banner.Images
	if raw := c.FormValue("deletedImages"); raw != "" {
		var deleted []string
		if err := json.Unmarshal([]byte(raw), &deleted); err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid deletedImages list")
		}
		drop := make(map[string]bool, len(deleted))
		for _, name := range deleted {
			drop[name] = true
			ctl.uploads.Remove(storage.SubBanners, name)
		}
		kept := images[:0]
		for _, name := range images {
			if !drop[name] {
				kept = append(kept, name)
			}
		}
		images = kept
	}

	if form, err := c.MultipartForm(); err == nil && form != nil && len(form.File["images"]) > 0 {
		if !canAddImages(len(images), len(form.File["images"])) {
			return responses.Error(c, fiber.StatusBadRequest, "Maximum 4 images allowed")
		}
		added, err := ctl.uploads.SaveImages(form.File["images"], storage.SubBanners, maxBannerImages)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, err.Error())
		}
		images = append(images, added...)
	}

	if len(images) == 0 {
		return responses.Error(c, fiber.StatusBadRequest, "At least one image required")
	}

	update := bson.M{
		"images":    images,
		"updatedAt": time.Now(),
	}
	if v := c.FormValue("bannerTitle"); v != "" {
		update["bannerTitle"] = v
	}
	if v := c.FormValue("buttonName"); v != "" {
		update["buttonName"] = v
	}
	if v := c.FormValue("description"); v != "" {
		update["description"] = v
	}

	var updated models.Banner
	err = ctl.banners.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		ctl.log.Error("banner update failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Banner updated", &fiber.Map{"banner": updated})
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid banner id")
	}

	var banner models.Banner
	err = ctl.banners.FindOne(ctx, bson.M{"_id": id}).Decode(&banner)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Banner not found")
	}
	if err != nil {
		ctl.log.Error("banner fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	ctl.uploads.RemoveAll(storage.SubBanners, banner.Images)

	if _, err := ctl.banners.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		ctl.log.Error("banner delete failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Banner deleted", nil)
}

package saleBannerController

import (
	"context"
	"strconv"
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

// Controller serves sale banner CRUD. A sale banner carries exactly
// one image; replacement deletes the superseded file.
type Controller struct {
	saleBanners *mongo.Collection
	uploads     *storage.Store
	log         *zap.Logger
}

func New(db *mongo.Database, uploads *storage.Store, log *zap.Logger) *Controller {
	return &Controller{
		saleBanners: configs.GetCollection(db, "salebanners"),
		uploads:     uploads,
		log:         log,
	}
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ctl.saleBanners.Find(ctx, bson.M{})
	if err != nil {
		ctl.log.Error("sale banner list failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	var banners []models.SaleBanner
	if err := cursor.All(ctx, &banners); err != nil {
		ctl.log.Error("sale banner decode failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, "Sale banners fetched", &fiber.Map{"saleBanners": banners})
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bannerTitle := c.FormValue("bannerTitle")
	buttonText := c.FormValue("buttonText")
	description := c.FormValue("description")
	if bannerTitle == "" || buttonText == "" || description == "" {
		return responses.Error(c, fiber.StatusBadRequest, "bannerTitle, buttonText and description are required")
	}
	discount, err := strconv.ParseFloat(c.FormValue("discount"), 64)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Valid discount is required")
	}

	image := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		image, err = ctl.uploads.SaveImage(fh, storage.SubSaleBanners)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, err.Error())
		}
	}

	now := time.Now()
	banner := models.SaleBanner{
		Id:          primitive.NewObjectID(),
		Discount:    discount,
		BannerTitle: bannerTitle,
		ButtonText:  buttonText,
		Description: description,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := ctl.saleBanners.InsertOne(ctx, banner); err != nil {
		ctl.uploads.Remove(storage.SubSaleBanners, image)
		ctl.log.Error("sale banner insert failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusCreated, "Sale banner created", &fiber.Map{"saleBanner": banner})
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid sale banner id")
	}

	var existing models.SaleBanner
	err = ctl.saleBanners.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Not found")
	}
	if err != nil {
		ctl.log.Error("sale banner fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	image := existing.Image
	if name := c.FormValue("deletedImage"); name != "" {
		ctl.uploads.Remove(storage.SubSaleBanners, name)
		image = ""
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		name, err := ctl.uploads.SaveImage(fh, storage.SubSaleBanners)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, err.Error())
		}
		if existing.Image != "" {
			ctl.uploads.Remove(storage.SubSaleBanners, existing.Image)
		}
		image = name
	}

	update := bson.M{
		"image":     image,
		"updatedAt": time.Now(),
	}
	if v := c.FormValue("bannerTitle"); v != "" {
		update["bannerTitle"] = v
	}
	if v := c.FormValue("buttonText"); v != "" {
		update["buttonText"] = v
	}
	if v := c.FormValue("description"); v != "" {
		update["description"] = v
	}
	if v := c.FormValue("discount"); v != "" {
		discount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Valid discount is required")
		}
		update["discount"] = discount
	}

	var updated models.SaleBanner
	err = ctl.saleBanners.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		ctl.log.Error("sale banner update failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Sale banner updated", &fiber.Map{"saleBanner": updated})
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid sale banner id")
	}

	var banner models.SaleBanner
	err = ctl.saleBanners.FindOne(ctx, bson.M{"_id": id}).Decode(&banner)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Not found")
	}
	if err != nil {
		ctl.log.Error("sale banner fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	ctl.uploads.Remove(storage.SubSaleBanners, banner.Image)

	if _, err := ctl.saleBanners.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		ctl.log.Error("sale banner delete failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Deleted", nil)
}

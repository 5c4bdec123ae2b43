package categoryController

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
	"github.com/Goriishankar/Dolchem-backend/storage"
)

// Controller serves category CRUD with per-category product counts and
// single-image lifecycle.
type Controller struct {
	categories *mongo.Collection
	products   *mongo.Collection
	uploads    *storage.Store
	log        *zap.Logger
}

func New(db *mongo.Database, uploads *storage.Store, log *zap.Logger) *Controller {
	return &Controller{
		categories: configs.GetCollection(db, "categories"),
		products:   configs.GetCollection(db, "products"),
		uploads:    uploads,
		log:        log,
	}
}

func imageURL(c *fiber.Ctx, name string) string {
	if name == "" {
		return ""
	}
	return c.BaseURL() + "/uploads/" + storage.SubCategories + "/" + name
}

// List returns every category with a computed product count and an
// absolute image URL.
func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ctl.categories.Find(ctx, bson.M{})
	if err != nil {
		ctl.log.Error("category list failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		ctl.log.Error("category decode failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(categories))
	for _, cat := range categories {
		count, err := ctl.products.CountDocuments(ctx, bson.M{"category": cat.Id})
		if err != nil {
			ctl.log.Error("product count failed", zap.String("category", cat.Id.Hex()), zap.Error(err))
			return responses.Error(c, fiber.StatusInternalServerError, "Server error")
		}
		result = append(result, fiber.Map{
			"_id":         cat.Id,
			"projectName": cat.ProjectName,
			"image":       imageURL(c, cat.Image),
			"quantity":    count,
		})
	}

	return responses.OK(c, fiber.StatusOK, "Categories fetched", &fiber.Map{"categories": result})
}

// Create accepts projectName plus at most one multipart image.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	projectName := c.FormValue("projectName")
	if projectName == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Category name is required")
	}

	image := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		name, err := ctl.uploads.SaveImage(fh, storage.SubCategories)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, err.Error())
		}
		image = name
	}

	now := time.Now()
	category := models.Category{
		Id:          primitive.NewObjectID(),
		ProjectName: projectName,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := ctl.categories.InsertOne(ctx, category); err != nil {
		ctl.uploads.Remove(storage.SubCategories, image)
		ctl.log.Error("category insert failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusCreated, "Category created", &fiber.Map{
		"_id":         category.Id,
		"projectName": category.ProjectName,
		"image":       imageURL(c, category.Image),
	})
}

// Update replaces name and/or image. The previous image file is
// removed from disk when replaced or explicitly cleared via the
// deletedImage field.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category id")
	}

	var existing models.Category
	err = ctl.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		ctl.log.Error("category fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	projectName := existing.ProjectName
	if v := c.FormValue("projectName"); v != "" {
		projectName = v
	}
	image := existing.Image

	if c.FormValue("deletedImage") != "" && existing.Image != "" {
		ctl.uploads.Remove(storage.SubCategories, existing.Image)
		image = ""
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		name, err := ctl.uploads.SaveImage(fh, storage.SubCategories)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, err.Error())
		}
		if existing.Image != "" {
			ctl.uploads.Remove(storage.SubCategories, existing.Image)
		}
		image = name
	}

	var updated models.Category
	err = ctl.categories.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"projectName": projectName,
			"image":       image,
			"updatedAt":   time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		ctl.log.Error("category update failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Category updated", &fiber.Map{
		"_id":         updated.Id,
		"projectName": updated.ProjectName,
		"image":       imageURL(c, updated.Image),
	})
}

// Delete removes the record and its image file. Orphaned product
// references are tolerated.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category id")
	}

	var category models.Category
	err = ctl.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		ctl.log.Error("category fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	ctl.uploads.Remove(storage.SubCategories, category.Image)

	if _, err := ctl.categories.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		ctl.log.Error("category delete failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Category deleted", nil)
}

package productController

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Goriishankar/Dolchem-backend/configs"
	"github.com/Goriishankar/Dolchem-backend/models"
	"github.com/Goriishankar/Dolchem-backend/push"
	"github.com/Goriishankar/Dolchem-backend/realtime"
	"github.com/Goriishankar/Dolchem-backend/responses"
	"github.com/Goriishankar/Dolchem-backend/storage"
)

const maxProductImages = 4

var errCategoryRequired = errors.New("Category is required")
var errInvalidCategory = errors.New("Invalid category name")

// Controller serves product CRUD: category resolution, image set
// mutation, the notification record plus FCM push on create, and the
// live product-count broadcast.
type Controller struct {
	products      *mongo.Collection
	categories    *mongo.Collection
	notifications *mongo.Collection
	uploads       *storage.Store
	hub           *realtime.Hub
	push          *push.Sender
	log           *zap.Logger
}

func New(db *mongo.Database, uploads *storage.Store, hub *realtime.Hub, sender *push.Sender, log *zap.Logger) *Controller {
	return &Controller{
		products:      configs.GetCollection(db, "products"),
		categories:    configs.GetCollection(db, "categories"),
		notifications: configs.GetCollection(db, "notifications"),
		uploads:       uploads,
		hub:           hub,
		push:          sender,
		log:           log,
	}
}

// resolveCategory accepts either a 24-hex identifier or a category
// name to look up.
func (ctl *Controller) resolveCategory(ctx context.Context, raw string) (primitive.ObjectID, error) {
	if raw == "" {
		return primitive.NilObjectID, errCategoryRequired
	}
	if id, err := primitive.ObjectIDFromHex(raw); err == nil {
		return id, nil
	}
	var cat models.Category
	err := ctl.categories.FindOne(ctx, bson.M{"projectName": raw}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return primitive.NilObjectID, errInvalidCategory
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return cat.Id, nil
}

func (ctl *Controller) broadcastCount(ctx context.Context) {
	count, err := ctl.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		ctl.log.Error("product count failed", zap.Error(err))
		return
	}
	ctl.hub.Emit("productCountUpdate", count)
}

// populated attaches the referenced category's projectName the way
// list consumers expect.
func (ctl *Controller) populated(ctx context.Context, p models.Product) fiber.Map {
	out := fiber.Map{
		"_id":         p.Id,
		"productName": p.ProductName,
		"description": p.Description,
		"category":    fiber.Map{"_id": p.Category},
		"price":       p.Price,
		"discount":    p.Discount,
		"images":      p.Images,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
	var cat models.Category
	if err := ctl.categories.FindOne(ctx, bson.M{"_id": p.Category}).Decode(&cat); err == nil {
		out["category"] = fiber.Map{"_id": cat.Id, "projectName": cat.ProjectName}
	}
	return out
}

// Count returns the total product count.
func (ctl *Controller) Count(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := ctl.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		ctl.log.Error("product count failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return responses.OK(c, fiber.StatusOK, "Product count", &fiber.Map{"totalProducts": count})
}

// List returns all products, optionally filtered by ?category=<name>.
func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if name := c.Query("category"); name != "" {
		var cat models.Category
		err := ctl.categories.FindOne(ctx, bson.M{"projectName": name}).Decode(&cat)
		if err == mongo.ErrNoDocuments {
			return responses.Error(c, fiber.StatusNotFound, "Category not found")
		}
		if err != nil {
			ctl.log.Error("category lookup failed", zap.Error(err))
			return responses.Error(c, fiber.StatusInternalServerError, "Server error")
		}
		filter["category"] = cat.Id
	}

	cursor, err := ctl.products.Find(ctx, filter)
	if err != nil {
		ctl.log.Error("product list failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		ctl.log.Error("product decode failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(products))
	for _, p := range products {
		result = append(result, ctl.populated(ctx, p))
	}
	return responses.OK(c, fiber.StatusOK, "Products fetched", &fiber.Map{"products": result})
}

// Create persists a product from multipart form data, records a
// notification, fires the FCM push asynchronously and broadcasts the
// new product count.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categoryId, err := ctl.resolveCategory(ctx, c.FormValue("category"))
	if err == errCategoryRequired || err == errInvalidCategory {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		ctl.log.Error("category resolution failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	productName := c.FormValue("productName")
	description := c.FormValue("description")
	if productName == "" || description == "" {
		return responses.Error(c, fiber.StatusBadRequest, "productName and description are required")
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Valid price is required")
	}
	discount, _ := strconv.ParseFloat(c.FormValue("discount"), 64)

	var images []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		images, err = ctl.uploads.SaveImages(form.File["images"], storage.SubProducts, maxProductImages)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, err.Error())
		}
	}

	now := time.Now()
	product := models.Product{
		Id:          primitive.NewObjectID(),
		ProductName: productName,
		Description: description,
		Category:    categoryId,
		Price:       price,
		Discount:    discount,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := ctl.products.InsertOne(ctx, product); err != nil {
		ctl.uploads.RemoveAll(storage.SubProducts, images)
		ctl.log.Error("product insert failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	notification := models.Notification{
		Id:        primitive.NewObjectID(),
		Title:     "New Product Added!",
		Body:      product.ProductName + " is now available!",
		Product:   product.Id,
		CreatedAt: now,
	}
	if _, err := ctl.notifications.InsertOne(ctx, notification); err != nil {
		ctl.log.Error("notification insert failed", zap.Error(err))
	}

	ctl.push.SendNewProduct(product)
	ctl.broadcastCount(ctx)

	return responses.OK(c, fiber.StatusCreated, "Product created", &fiber.Map{
		"product": ctl.populated(ctx, product),
	})
}

// Update edits fields and mutates the image set: the deletedImages
// JSON side-channel removes files, new uploads append. The push and
// count broadcast mirror Create.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var existing models.Product
	err = ctl.products.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		ctl.log.Error("product fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	images := existing.Images
	if raw := c.FormValue("deletedImages"); raw != "" {
		var deleted []string
		if err := json.Unmarshal([]byte(raw), &deleted); err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid deletedImages list")
		}
		drop := make(map[string]bool, len(deleted))
		for _, name := range deleted {
			drop[name] = true
			ctl.uploads.Remove(storage.SubProducts, name)
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
		if len(images)+len(form.File["images"]) > maxProductImages {
			return responses.Error(c, fiber.StatusBadRequest, "Maximum 4 images allowed")
		}
		added, err := ctl.uploads.SaveImages(form.File["images"], storage.SubProducts, maxProductImages)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, err.Error())
		}
		images = append(images, added...)
	}

	categoryId := existing.Category
	if raw := c.FormValue("category"); raw != "" {
		categoryId, err = ctl.resolveCategory(ctx, raw)
		if err == errInvalidCategory {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid category")
		}
		if err != nil {
			ctl.log.Error("category resolution failed", zap.Error(err))
			return responses.Error(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	productName := existing.ProductName
	if v := c.FormValue("productName"); v != "" {
		productName = v
	}
	description := existing.Description
	if v := c.FormValue("description"); v != "" {
		description = v
	}
	price := existing.Price
	if v := c.FormValue("price"); v != "" {
		price, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Valid price is required")
		}
	}
	discount := existing.Discount
	if v := c.FormValue("discount"); v != "" {
		discount, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Valid discount is required")
		}
	}

	updated := models.Product{
		Id:          id,
		ProductName: productName,
		Description: description,
		Category:    categoryId,
		Price:       price,
		Discount:    discount,
		Images:      images,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	if _, err := ctl.products.ReplaceOne(ctx, bson.M{"_id": id}, updated); err != nil {
		ctl.log.Error("product update failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	ctl.push.SendProductUpdated(updated)
	ctl.broadcastCount(ctx)

	return responses.OK(c, fiber.StatusOK, "Product updated", &fiber.Map{
		"product": ctl.populated(ctx, updated),
	})
}

// Delete removes every stored image file before deleting the record,
// then broadcasts the new count.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var product models.Product
	err = ctl.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		ctl.log.Error("product fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	ctl.uploads.RemoveAll(storage.SubProducts, product.Images)

	if _, err := ctl.products.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		ctl.log.Error("product delete failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	ctl.broadcastCount(ctx)

	return responses.OK(c, fiber.StatusOK, "Product deleted", nil)
}

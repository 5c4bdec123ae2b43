package authController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Goriishankar/Dolchem-backend/models"
	"github.com/Goriishankar/Dolchem-backend/responses"
)

const bcryptCost = 12

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin verifies dashboard credentials against the stored bcrypt
// hash and issues a token binding the admin id and email.
func (ctl *Controller) AdminLogin(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Email and password are required")
	}

	var admin models.AdminUser
	err := ctl.admins.FindOne(ctx, bson.M{"email": req.Email}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		ctl.log.Error("admin lookup failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := ctl.signToken(jwt.MapClaims{"id": admin.Id.Hex(), "email": admin.Email})
	if err != nil {
		ctl.log.Error("admin token signing failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Login success", &fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":           admin.Id.Hex(),
			"name":         admin.Name,
			"lastName":     admin.LastName,
			"email":        admin.Email,
			"profileImage": admin.ProfileImage,
		},
	})
}

type adminCreateRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminCreate registers a dashboard account, hashing the password
// before persistence.
func (ctl *Controller) AdminCreate(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req adminCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return responses.Error(c, fiber.StatusBadRequest, "All fields required")
	}

	err := ctl.admins.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		return responses.Error(c, fiber.StatusBadRequest, "Admin already exists")
	}
	if err != mongo.ErrNoDocuments {
		ctl.log.Error("admin existence check failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		ctl.log.Error("password hash failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	now := time.Now()
	admin := models.AdminUser{
		Id:           primitive.NewObjectID(),
		Name:         req.Name,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     string(hash),
		ProfileImage: models.DefaultAdminImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := ctl.admins.InsertOne(ctx, admin); err != nil {
		ctl.log.Error("admin insert failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusCreated, "Admin created successfully", nil)
}

// AdminProfile returns the authenticated admin's profile, password
// excluded.
func (ctl *Controller) AdminProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminId, ok := c.Locals("adminId").(string)
	if !ok || adminId == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "Admin credentials not found in token")
	}
	id, err := primitive.ObjectIDFromHex(adminId)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid admin ID format")
	}

	var admin models.AdminUser
	err = ctl.admins.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Admin not found")
	}
	if err != nil {
		ctl.log.Error("admin profile fetch failed", zap.Error(err))
		return responses.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return responses.OK(c, fiber.StatusOK, "Admin profile", &fiber.Map{
		"name":         admin.Name,
		"lastName":     admin.LastName,
		"email":        admin.Email,
		"profileImage": admin.ProfileImage,
	})
}

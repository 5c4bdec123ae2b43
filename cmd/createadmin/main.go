// Command createadmin seeds a dashboard account. It is safe to run
// repeatedly; an existing email is left untouched.
package main

import (
	"context"
	"flag"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Goriishankar/Dolchem-backend/configs"
	"github.com/Goriishankar/Dolchem-backend/models"
)

func main() {
	name := flag.String("name", "Admin", "first name")
	lastName := flag.String("lastName", "User", "last name")
	email := flag.String("email", "admin@dolchem.com", "login email")
	password := flag.String("password", "", "login password (required)")
	flag.Parse()

	configs.LoadEnv()
	log := configs.Logger()
	defer log.Sync()

	if *password == "" {
		log.Fatal("password is required")
	}

	client := configs.ConnectDB(configs.EnvMongoURI(), log)
	admins := client.Database(configs.EnvDBName()).Collection("adminusers")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := admins.FindOne(ctx, bson.M{"email": *email}).Err()
	if err == nil {
		log.Info("admin already exists", zap.String("email", *email))
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Fatal("lookup failed", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatal("hash failed", zap.Error(err))
	}

	now := time.Now()
	admin := models.AdminUser{
		Name:         *name,
		LastName:     *lastName,
		Email:        *email,
		Password:     string(hash),
		ProfileImage: models.DefaultAdminImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := admins.InsertOne(ctx, admin); err != nil {
		log.Fatal("insert failed", zap.Error(err))
	}
	log.Info("admin created", zap.String("email", *email))

	if err := client.Disconnect(context.Background()); err != nil {
		log.Error("mongo disconnect failed", zap.Error(err))
	}
}

package configs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB dials MongoDB and retries on a fixed 5s delay until the
// server is reachable. The returned client is shared for the process
// lifetime.
func ConnectDB(uri string, log *zap.Logger) *mongo.Client {
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			err = client.Ping(ctx, nil)
		}
		cancel()

		if err == nil {
			log.Info("MongoDB connected")
			return client
		}

		log.Error("MongoDB connection failed, retrying in 5s", zap.Error(err))
		time.Sleep(5 * time.Second)
	}
}

func GetCollection(db *mongo.Database, name string) *mongo.Collection {
	return db.Collection(name)
}

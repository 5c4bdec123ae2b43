package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env if present. Missing files are fine in production
// where the environment comes from the process manager.
func LoadEnv() {
	_ = godotenv.Load()
}

func EnvMongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

func EnvDBName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "dolchem"
}

func EnvPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "5000"
}

func EnvJWTSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	return "fallback_secret"
}

func EnvFirebaseCredentials() string {
	return os.Getenv("FIREBASE_CREDENTIALS")
}

func EnvUploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

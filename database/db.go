package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mindbloom/config"
	"mindbloom/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MemoryURL selects the in-process journal instead of MongoDB.
const MemoryURL = "memory://"

// MongoClient is the global MongoDB client instance. It stays nil in memory mode.
var MongoClient *mongo.Client

// UsesMemory reports whether url selects the in-process store.
func UsesMemory(url string) bool {
	return url == "" || strings.HasPrefix(url, MemoryURL)
}

// InitDB connects to MongoDB unless DATABASE_URL selects memory mode.
func InitDB(ctx context.Context) error {
	url := config.AppConfig.DatabaseURL
	if UsesMemory(url) {
		utils.GetLogger().Info("DATABASE_URL selects the in-memory journal; MongoDB not used")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	utils.GetLogger().Info("Connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
	return nil
}

// CloseDB disconnects the global client if one was opened.
func CloseDB(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}

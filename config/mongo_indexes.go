package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
)

// EnsureMongoIndexes creates the query-helper indexes for the wellness log
// collections and the chat audit collection. Safe to run on every boot.
func EnsureMongoIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// All recent/range reads filter by user and sort by timestamp desc.
	for _, cat := range models.Categories {
		col := db.Collection(cat.Collection())
		_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("by_user_ts"),
		})
		if err != nil {
			return err
		}
	}

	chatLogs := db.Collection("chat_logs")
	_, err := chatLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("by_user_ts"),
	})
	return err
}

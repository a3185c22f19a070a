package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
)

type ChatLogRepository interface {
	Insert(ctx context.Context, log *models.ChatLog) error
	Recent(ctx context.Context, userID string, limit int64) ([]models.ChatLog, error)
}

type chatLogRepo struct {
	col *mongo.Collection
}

func NewChatLogRepo(db *mongo.Database) ChatLogRepository {
	return &chatLogRepo{col: db.Collection("chat_logs")}
}

func (r *chatLogRepo) Insert(ctx context.Context, log *models.ChatLog) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, log)
	return err
}

func (r *chatLogRepo) Recent(ctx context.Context, userID string, limit int64) ([]models.ChatLog, error) {
	if limit <= 0 {
		limit = 50
	}

	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().
			SetSort(bson.D{{Key: "timestamp", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ChatLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

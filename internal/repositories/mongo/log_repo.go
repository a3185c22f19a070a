package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
)

type LogRepository interface {
	Insert(ctx context.Context, category models.Category, entry *models.LogEntry) (string, error)
	Recent(ctx context.Context, category models.Category, userID string, limit int64) ([]models.LogEntry, error)
	ByRange(ctx context.Context, category models.Category, userID string, start, end time.Time) ([]models.LogEntry, error)
}

type logRepo struct {
	db *mongo.Database
}

func NewLogRepo(db *mongo.Database) LogRepository {
	return &logRepo{db: db}
}

func (r *logRepo) col(category models.Category) *mongo.Collection {
	return r.db.Collection(category.Collection())
}

func (r *logRepo) Insert(ctx context.Context, category models.Category, entry *models.LogEntry) (string, error) {
	res, err := r.col(category).InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (r *logRepo) Recent(ctx context.Context, category models.Category, userID string, limit int64) ([]models.LogEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	cur, err := r.col(category).Find(ctx,
		bson.M{"user_id": userID},
		options.Find().
			SetSort(bson.D{{Key: "timestamp", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.LogEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *logRepo) ByRange(ctx context.Context, category models.Category, userID string, start, end time.Time) ([]models.LogEntry, error) {
	cur, err := r.col(category).Find(ctx,
		bson.M{
			"user_id":   userID,
			"timestamp": bson.M{"$gte": start, "$lte": end},
		},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.LogEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

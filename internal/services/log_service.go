package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wellmind-ai/wellmind-backend/internal/cache"
	"github.com/wellmind-ai/wellmind-backend/internal/models"
	mongorepo "github.com/wellmind-ai/wellmind-backend/internal/repositories/mongo"
	"github.com/wellmind-ai/wellmind-backend/internal/utils"
)

// AppendInput carries the category-specific fields of one log write. Only
// the fields of the requested category are read.
type AppendInput struct {
	Mood      string  `json:"mood"`
	Intensity int     `json:"intensity"`
	Hours     float64 `json:"hours"`
	Quality   int     `json:"quality"`
	Amount    int     `json:"amount"`
	Type      string  `json:"type"`
	Duration  int     `json:"duration"`
}

type LogService interface {
	Append(ctx context.Context, category models.Category, userID string, in AppendInput) (*models.LogEntry, error)
	Recent(ctx context.Context, category models.Category, userID string, count int64) ([]models.LogEntry, error)
	ByRange(ctx context.Context, category models.Category, userID string, start, end time.Time) ([]models.LogEntry, error)
}

type logService struct {
	logs  mongorepo.LogRepository
	cache cache.Cache
	log   *logrus.Logger
}

func NewLogService(logs mongorepo.LogRepository, c cache.Cache, log *logrus.Logger) LogService {
	if c == nil {
		c = cache.Noop{}
	}
	return &logService{logs: logs, cache: c, log: log}
}

const defaultScale = 5 // intensity/quality when the caller leaves them unset

func (s *logService) Append(ctx context.Context, category models.Category, userID string, in AppendInput) (*models.LogEntry, error) {
	const op = "LogService.Append"

	if !category.Valid() {
		return nil, utils.E(utils.CodeInvalidCategory, op, "Invalid log category: "+string(category), nil)
	}
	if userID == "" {
		return nil, utils.E(utils.CodeValidation, op, "user_id is required", nil)
	}

	now := time.Now().UTC()
	entry := &models.LogEntry{
		UserID:    userID,
		Timestamp: now,
		Date:      now.Format("2006-01-02"),
	}

	switch category {
	case models.CategoryMood:
		if in.Mood == "" {
			return nil, utils.E(utils.CodeValidation, op, "mood is required", nil)
		}
		entry.Mood = in.Mood
		entry.Intensity = scaleOrDefault(in.Intensity)
	case models.CategorySleep:
		if in.Hours <= 0 {
			return nil, utils.E(utils.CodeValidation, op, "hours must be positive", nil)
		}
		entry.Hours = in.Hours
		entry.Quality = scaleOrDefault(in.Quality)
	case models.CategoryHydration:
		if in.Amount <= 0 {
			return nil, utils.E(utils.CodeValidation, op, "amount must be positive", nil)
		}
		entry.Amount = in.Amount
	case models.CategoryWorkout:
		if in.Type == "" || in.Duration <= 0 {
			return nil, utils.E(utils.CodeValidation, op, "type and duration are required", nil)
		}
		entry.Type = in.Type
		entry.Duration = in.Duration
		entry.Intensity = scaleOrDefault(in.Intensity)
	}

	id, err := s.logs.Insert(ctx, category, entry)
	if err != nil {
		return nil, utils.E(utils.CodeWriteFailed, op, "Failed to log "+string(category)+". Please try again.", err)
	}

	// The cached context summary is stale now; next chat turn rebuilds it.
	if err := s.cache.Del(ctx, contextCacheKey(userID)); err != nil {
		s.log.WithError(err).Warn("context cache invalidation failed")
	}

	// Surface the server-assigned id on the returned entry.
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		entry.ID = oid
	}
	return entry, nil
}

func (s *logService) Recent(ctx context.Context, category models.Category, userID string, count int64) ([]models.LogEntry, error) {
	const op = "LogService.Recent"

	if !category.Valid() {
		return nil, utils.E(utils.CodeInvalidCategory, op, "Invalid log category: "+string(category), nil)
	}

	out, err := s.logs.Recent(ctx, category, userID, count)
	if err != nil {
		return nil, utils.E(utils.CodeQueryFailed, op, "Failed to fetch "+string(category)+" logs.", err)
	}
	if out == nil {
		out = []models.LogEntry{}
	}
	return out, nil
}

func (s *logService) ByRange(ctx context.Context, category models.Category, userID string, start, end time.Time) ([]models.LogEntry, error) {
	const op = "LogService.ByRange"

	if !category.Valid() {
		return nil, utils.E(utils.CodeInvalidCategory, op, "Invalid log category: "+string(category), nil)
	}
	if end.Before(start) {
		return nil, utils.E(utils.CodeValidation, op, "end must not precede start", nil)
	}

	out, err := s.logs.ByRange(ctx, category, userID, start, end)
	if err != nil {
		return nil, utils.E(utils.CodeQueryFailed, op, "Failed to fetch "+string(category)+" logs.", err)
	}
	if out == nil {
		out = []models.LogEntry{}
	}
	return out, nil
}

func scaleOrDefault(v int) int {
	if v < 1 || v > 10 {
		return defaultScale
	}
	return v
}

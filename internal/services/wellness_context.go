package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wellmind-ai/wellmind-backend/internal/cache"
	"github.com/wellmind-ai/wellmind-backend/internal/models"
	mongorepo "github.com/wellmind-ai/wellmind-backend/internal/repositories/mongo"
)

// NoWellnessData is returned by Summarize when every category is empty.
const NoWellnessData = "No recent wellness data available."

// contextSliceLimit is how many entries per category feed one chat turn.
const contextSliceLimit = 7

func contextCacheKey(userID string) string {
	return "wellness_ctx:" + userID
}

// WellnessContextService builds the natural-language wellness summary that
// is injected into the AI prompt.
type WellnessContextService interface {
	// Fetch loads the most recent entries of all four categories
	// concurrently. A failed category read is logged and yields an empty
	// slice; it never fails the fetch.
	Fetch(ctx context.Context, userID string) models.WellnessData
	// Summary returns the summarized context for the user, served from
	// cache when a fresh copy exists.
	Summary(ctx context.Context, userID string) string
}

type wellnessContextService struct {
	logs  mongorepo.LogRepository
	cache cache.Cache
	ttl   time.Duration
	log   *logrus.Logger
}

func NewWellnessContextService(logs mongorepo.LogRepository, c cache.Cache, ttl time.Duration, log *logrus.Logger) WellnessContextService {
	if c == nil {
		c = cache.Noop{}
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &wellnessContextService{logs: logs, cache: c, ttl: ttl, log: log}
}

func (s *wellnessContextService) Fetch(ctx context.Context, userID string) models.WellnessData {
	slices := make([][]models.LogEntry, len(models.Categories))

	var wg sync.WaitGroup
	for i, cat := range models.Categories {
		wg.Add(1)
		go func(i int, cat models.Category) {
			defer wg.Done()
			out, err := s.logs.Recent(ctx, cat, userID, contextSliceLimit)
			if err != nil {
				// Degrade to an empty slice; the summary skips the category.
				s.log.WithError(err).WithField("category", cat).Warn("context fetch failed")
				return
			}
			slices[i] = out
		}(i, cat)
	}
	wg.Wait()

	return models.WellnessData{
		Mood:      slices[0],
		Sleep:     slices[1],
		Hydration: slices[2],
		Workout:   slices[3],
	}
}

func (s *wellnessContextService) Summary(ctx context.Context, userID string) string {
	key := contextCacheKey(userID)

	var cached string
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached
	}

	summary := Summarize(s.Fetch(ctx, userID))

	if err := s.cache.SetJSON(ctx, key, summary, s.ttl); err != nil {
		s.log.WithError(err).Warn("context cache write failed")
	}
	return summary
}

// Summarize renders recent wellness data as prompt context, one line per
// non-empty category in mood, sleep, hydration, workout order. Entries are
// assumed newest-first; each category looks at its first 7 entries.
//
// The sleep average divides the 7-entry sum by the total entry count, not
// the window size. Callers fetch at most 7 entries per category so both
// counts coincide in practice; the formula is kept as the product defines it.
func Summarize(data models.WellnessData) string {
	var b strings.Builder

	if len(data.Mood) > 0 {
		moods := make([]string, 0, contextSliceLimit)
		for _, e := range head(data.Mood) {
			moods = append(moods, fmt.Sprintf("%s (%s)", e.Mood, localDate(e.Timestamp)))
		}
		fmt.Fprintf(&b, "Recent mood logs: %s.\n", strings.Join(moods, ", "))
	}

	if len(data.Sleep) > 0 {
		var sum float64
		for _, e := range head(data.Sleep) {
			sum += e.Hours
		}
		avg := sum / float64(len(data.Sleep))
		fmt.Fprintf(&b, "Average sleep over last 7 days: %.1f hours.\n", avg)
	}

	if len(data.Hydration) > 0 {
		total := 0
		for _, e := range head(data.Hydration) {
			total += e.Amount
		}
		fmt.Fprintf(&b, "Total hydration over last 7 days: %dml.\n", total)
	}

	if len(data.Workout) > 0 {
		workouts := make([]string, 0, contextSliceLimit)
		for _, e := range head(data.Workout) {
			workouts = append(workouts, fmt.Sprintf("%s (%dmin)", e.Type, e.Duration))
		}
		fmt.Fprintf(&b, "Recent workouts: %s.\n", strings.Join(workouts, ", "))
	}

	if b.Len() == 0 {
		return NoWellnessData
	}
	return b.String()
}

func head(entries []models.LogEntry) []models.LogEntry {
	if len(entries) > contextSliceLimit {
		return entries[:contextSliceLimit]
	}
	return entries
}

// localDate matches the date rendering of the reference frontend.
func localDate(t time.Time) string {
	return t.Format("1/2/2006")
}

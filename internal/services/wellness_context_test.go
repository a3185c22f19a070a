package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		data     models.WellnessData
		expected string
	}{
		{
			name:     "all empty",
			data:     models.WellnessData{},
			expected: "No recent wellness data available.",
		},
		{
			name: "hydration only",
			data: models.WellnessData{
				Hydration: []models.LogEntry{{Amount: 250}, {Amount: 500}},
			},
			expected: "Total hydration over last 7 days: 750ml.\n",
		},
		{
			name: "sleep average with two entries",
			data: models.WellnessData{
				Sleep: []models.LogEntry{{Hours: 8}, {Hours: 6}},
			},
			expected: "Average sleep over last 7 days: 7.0 hours.\n",
		},
		{
			name: "sleep divisor is the full count beyond the window",
			data: models.WellnessData{
				Sleep: []models.LogEntry{
					{Hours: 8}, {Hours: 8}, {Hours: 8}, {Hours: 8},
					{Hours: 8}, {Hours: 8}, {Hours: 8}, {Hours: 8},
				},
			},
			// 7-entry sum (56) divided by all 8 entries.
			expected: "Average sleep over last 7 days: 7.0 hours.\n",
		},
		{
			name: "mood entries render with dates",
			data: models.WellnessData{
				Mood: []models.LogEntry{
					{Mood: "happy", Timestamp: day(2026, time.August, 28)},
					{Mood: "sad", Timestamp: day(2026, time.August, 27)},
				},
			},
			expected: "Recent mood logs: happy (8/28/2026), sad (8/27/2026).\n",
		},
		{
			name: "workouts render type and duration",
			data: models.WellnessData{
				Workout: []models.LogEntry{
					{Type: "cardio", Duration: 30},
					{Type: "yoga", Duration: 30},
				},
			},
			expected: "Recent workouts: cardio (30min), yoga (30min).\n",
		},
		{
			name: "categories concatenate in fixed order",
			data: models.WellnessData{
				Mood:      []models.LogEntry{{Mood: "good", Timestamp: day(2026, time.January, 2)}},
				Sleep:     []models.LogEntry{{Hours: 8}},
				Hydration: []models.LogEntry{{Amount: 1000}},
				Workout:   []models.LogEntry{{Type: "walk", Duration: 20}},
			},
			expected: "Recent mood logs: good (1/2/2026).\n" +
				"Average sleep over last 7 days: 8.0 hours.\n" +
				"Total hydration over last 7 days: 1000ml.\n" +
				"Recent workouts: walk (20min).\n",
		},
		{
			name: "mood window caps at seven entries",
			data: models.WellnessData{
				Mood: []models.LogEntry{
					{Mood: "m1", Timestamp: day(2026, time.March, 8)},
					{Mood: "m2", Timestamp: day(2026, time.March, 7)},
					{Mood: "m3", Timestamp: day(2026, time.March, 6)},
					{Mood: "m4", Timestamp: day(2026, time.March, 5)},
					{Mood: "m5", Timestamp: day(2026, time.March, 4)},
					{Mood: "m6", Timestamp: day(2026, time.March, 3)},
					{Mood: "m7", Timestamp: day(2026, time.March, 2)},
					{Mood: "m8", Timestamp: day(2026, time.March, 1)},
				},
			},
			expected: "Recent mood logs: m1 (3/8/2026), m2 (3/7/2026), m3 (3/6/2026), " +
				"m4 (3/5/2026), m5 (3/4/2026), m6 (3/3/2026), m7 (3/2/2026).\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Summarize(tc.data); got != tc.expected {
				t.Errorf("Summarize() = %q, want %q", got, tc.expected)
			}
		})
	}
}

// flakyLogRepo fails reads for one category and serves fixed slices for the
// rest.
type flakyLogRepo struct {
	entries map[models.Category][]models.LogEntry
	failing models.Category
}

func (r *flakyLogRepo) Insert(ctx context.Context, category models.Category, entry *models.LogEntry) (string, error) {
	return "", errors.New("not implemented")
}

func (r *flakyLogRepo) Recent(ctx context.Context, category models.Category, userID string, limit int64) ([]models.LogEntry, error) {
	if category == r.failing {
		return nil, errors.New("storage unavailable")
	}
	return r.entries[category], nil
}

func (r *flakyLogRepo) ByRange(ctx context.Context, category models.Category, userID string, start, end time.Time) ([]models.LogEntry, error) {
	return nil, errors.New("not implemented")
}

func TestFetchSwallowsFailedCategoryReads(t *testing.T) {
	t.Parallel()

	repo := &flakyLogRepo{
		entries: map[models.Category][]models.LogEntry{
			models.CategoryMood:      {{Mood: "happy"}},
			models.CategoryHydration: {{Amount: 500}},
			models.CategoryWorkout:   {{Type: "walk", Duration: 20}},
		},
		failing: models.CategorySleep,
	}

	svc := NewWellnessContextService(repo, nil, time.Minute, testLogger())

	data := svc.Fetch(context.Background(), "user-1")

	if len(data.Mood) != 1 || len(data.Hydration) != 1 || len(data.Workout) != 1 {
		t.Fatalf("healthy categories should survive, got %+v", data)
	}
	if len(data.Sleep) != 0 {
		t.Fatalf("failed category should come back empty, got %+v", data.Sleep)
	}
}

func TestSummaryUsesCache(t *testing.T) {
	t.Parallel()

	repo := &flakyLogRepo{
		entries: map[models.Category][]models.LogEntry{
			models.CategoryHydration: {{Amount: 750}},
		},
	}

	c := newMemCache()
	svc := NewWellnessContextService(repo, c, time.Minute, testLogger())

	first := svc.Summary(context.Background(), "user-1")
	if first != "Total hydration over last 7 days: 750ml.\n" {
		t.Fatalf("unexpected summary: %q", first)
	}

	// A new entry lands but the cache was not invalidated: the cached
	// summary is served as-is.
	repo.entries[models.CategoryHydration] = append(repo.entries[models.CategoryHydration], models.LogEntry{Amount: 250})
	second := svc.Summary(context.Background(), "user-1")
	if second != first {
		t.Fatalf("expected cached summary %q, got %q", first, second)
	}

	// After invalidation the summary is rebuilt.
	if err := c.Del(context.Background(), contextCacheKey("user-1")); err != nil {
		t.Fatal(err)
	}
	third := svc.Summary(context.Background(), "user-1")
	if third != "Total hydration over last 7 days: 1000ml.\n" {
		t.Fatalf("expected rebuilt summary, got %q", third)
	}
}

// Package quicklog holds the one-click logging state driven by the
// frontend's button grid: fixed presets, a per-category in-flight guard,
// and a transient result toast.
package quicklog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
	"github.com/wellmind-ai/wellmind-backend/internal/services"
)

// ToastTTL is how long a result message stays visible.
const ToastTTL = 3 * time.Second

// Logger is the write path to the log store (implemented by client.Client).
type Logger interface {
	AppendLog(ctx context.Context, category models.Category, in services.AppendInput) error
}

type Preset struct {
	Label    string
	Category models.Category
	Input    services.AppendInput
}

// Presets is the fixed button grid: 5 moods, 5 sleep durations, 4
// hydration volumes, 4 workouts.
func Presets() []Preset {
	presets := []Preset{}

	for _, mood := range []string{"happy", "good", "neutral", "sad", "anxious"} {
		presets = append(presets, Preset{
			Label:    mood,
			Category: models.CategoryMood,
			Input:    services.AppendInput{Mood: mood},
		})
	}

	for _, hours := range []float64{6, 7, 8, 9, 10} {
		presets = append(presets, Preset{
			Label:    fmt.Sprintf("%.0fh", hours),
			Category: models.CategorySleep,
			Input:    services.AppendInput{Hours: hours},
		})
	}

	for _, amount := range []int{250, 500, 750, 1000} {
		presets = append(presets, Preset{
			Label:    fmt.Sprintf("%dml", amount),
			Category: models.CategoryHydration,
			Input:    services.AppendInput{Amount: amount},
		})
	}

	workouts := []struct {
		typ      string
		duration int
	}{
		{"cardio", 30},
		{"strength", 45},
		{"yoga", 30},
		{"walk", 20},
	}
	for _, w := range workouts {
		presets = append(presets, Preset{
			Label:    fmt.Sprintf("%s (%dmin)", w.typ, w.duration),
			Category: models.CategoryWorkout,
			Input:    services.AppendInput{Type: w.typ, Duration: w.duration},
		})
	}

	return presets
}

type Toast struct {
	Kind string // "success" or "error"
	Text string
}

// QuickLog is the button-grid state. Clicks across categories run
// independently; a second click within one category while the first is
// still pending is a no-op.
type QuickLog struct {
	logger Logger
	now    func() time.Time

	mu           sync.Mutex
	inflight     map[models.Category]bool
	toast        *Toast
	toastExpires time.Time
}

func New(logger Logger) *QuickLog {
	return &QuickLog{
		logger:   logger,
		now:      time.Now,
		inflight: make(map[models.Category]bool),
	}
}

// Log performs one preset write and sets the result toast. Returns false
// when the click was swallowed by the in-flight guard.
func (q *QuickLog) Log(ctx context.Context, p Preset) bool {
	q.mu.Lock()
	if q.inflight[p.Category] {
		q.mu.Unlock()
		return false
	}
	q.inflight[p.Category] = true
	q.mu.Unlock()

	err := q.logger.AppendLog(ctx, p.Category, p.Input)

	q.mu.Lock()
	defer q.mu.Unlock()
	q.inflight[p.Category] = false

	if err != nil {
		q.setToastLocked("error", fmt.Sprintf("Failed to log %s. Please try again.", p.Category))
		return true
	}
	q.setToastLocked("success", successText(p))
	return true
}

// Toast returns the visible toast, or nil once the 3-second window passed.
func (q *QuickLog) Toast() *Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.toast == nil || q.now().After(q.toastExpires) {
		return nil
	}
	return q.toast
}

// InFlight reports whether a write for the category is pending.
func (q *QuickLog) InFlight(category models.Category) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inflight[category]
}

func (q *QuickLog) setToastLocked(kind, text string) {
	q.toast = &Toast{Kind: kind, Text: text}
	q.toastExpires = q.now().Add(ToastTTL)
}

func successText(p Preset) string {
	switch p.Category {
	case models.CategoryMood:
		return fmt.Sprintf("Mood %q logged successfully!", p.Input.Mood)
	case models.CategorySleep:
		return fmt.Sprintf("%.0f hours of sleep logged!", p.Input.Hours)
	case models.CategoryHydration:
		return fmt.Sprintf("%dml of water logged!", p.Input.Amount)
	case models.CategoryWorkout:
		return fmt.Sprintf("%dmin %s workout logged!", p.Input.Duration, p.Input.Type)
	}
	return "Logged!"
}

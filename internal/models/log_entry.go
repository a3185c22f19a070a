package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category identifies one of the four wellness log kinds.
type Category string

const (
	CategoryMood      Category = "mood"
	CategorySleep     Category = "sleep"
	CategoryHydration Category = "hydration"
	CategoryWorkout   Category = "workout"
)

// Categories in their canonical summary order.
var Categories = []Category{CategoryMood, CategorySleep, CategoryHydration, CategoryWorkout}

func (c Category) Valid() bool {
	switch c {
	case CategoryMood, CategorySleep, CategoryHydration, CategoryWorkout:
		return true
	}
	return false
}

// Collection returns the Mongo collection holding entries of this category.
func (c Category) Collection() string {
	return string(c) + "_logs"
}

// LogEntry is one immutable wellness event. Entries are schemaless on the
// wire: only the fields of the entry's category are set, the rest stay
// zero-valued and are omitted from the stored document.
type LogEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID string             `bson:"user_id" json:"user_id"`

	// mood
	Mood      string `bson:"mood,omitempty" json:"mood,omitempty"`
	Intensity int    `bson:"intensity,omitempty" json:"intensity,omitempty"` // 1-10

	// sleep
	Hours   float64 `bson:"hours,omitempty" json:"hours,omitempty"`
	Quality int     `bson:"quality,omitempty" json:"quality,omitempty"` // 1-10

	// hydration
	Amount int `bson:"amount,omitempty" json:"amount,omitempty"` // ml

	// workout
	Type     string `bson:"type,omitempty" json:"type,omitempty"`
	Duration int    `bson:"duration,omitempty" json:"duration,omitempty"` // minutes

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD, UTC day of Timestamp
}

// WellnessData carries the most recent entries per category, newest first,
// as assembled for one chat turn. A failed category read leaves its slice
// empty rather than failing the whole fetch.
type WellnessData struct {
	Mood      []LogEntry `json:"mood,omitempty"`
	Sleep     []LogEntry `json:"sleep,omitempty"`
	Hydration []LogEntry `json:"hydration,omitempty"`
	Workout   []LogEntry `json:"workout,omitempty"`
}

// Empty reports whether no category has any entries.
func (w WellnessData) Empty() bool {
	return len(w.Mood) == 0 && len(w.Sleep) == 0 && len(w.Hydration) == 0 && len(w.Workout) == 0
}

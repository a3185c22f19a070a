package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatLog is the best-effort audit copy of one chat exchange. Writing it
// must never fail or delay the chat response.
type ChatLog struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID               string             `bson:"user_id" json:"user_id"`
	UserMessage          string             `bson:"user_message" json:"user_message"`
	AIResponse           string             `bson:"ai_response" json:"ai_response"`
	Timestamp            time.Time          `bson:"timestamp" json:"timestamp"`
	WellnessDataProvided bool               `bson:"wellness_data_provided" json:"wellness_data_provided"`
}

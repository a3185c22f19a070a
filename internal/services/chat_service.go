package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
	"github.com/wellmind-ai/wellmind-backend/internal/providers/llm"
	mongorepo "github.com/wellmind-ai/wellmind-backend/internal/repositories/mongo"
	"github.com/wellmind-ai/wellmind-backend/internal/utils"
)

// SystemPrompt is the fixed persona for every chat turn.
const SystemPrompt = `You are WellMind AI, a compassionate and knowledgeable wellness coach. Your role is to help users understand their wellness patterns and provide personalized, actionable advice.

Guidelines:
- Be empathetic, supportive, and encouraging
- Provide specific, actionable recommendations based on the user's data
- Focus on evidence-based wellness practices
- Keep responses concise (2-3 sentences when possible, longer when needed for complex topics)
- If wellness data is provided, reference it naturally in your responses
- Encourage positive behavior changes without being preachy
- If asked about something outside wellness, politely redirect to wellness topics

Always prioritize the user's mental and physical wellbeing.`

// FallbackResponse replaces an empty completion.
const FallbackResponse = "I apologize, but I could not generate a response. Please try again."

const auditTimeout = 10 * time.Second

// ChatService relays user messages to the completion API, optionally
// enriched with the user's recent wellness context.
type ChatService interface {
	// Send validates the message, assembles the prompt and returns the
	// generated reply. wellness, when non-nil, is summarized into a
	// context turn; otherwise includeContext asks the service to build
	// the context from the store.
	Send(ctx context.Context, userID, message string, wellness *models.WellnessData, includeContext bool) (string, error)
}

type chatService struct {
	provider llm.Provider // nil when no API credential is configured
	contexts WellnessContextService
	audits   mongorepo.ChatLogRepository
	log      *logrus.Logger
}

func NewChatService(provider llm.Provider, contexts WellnessContextService, audits mongorepo.ChatLogRepository, log *logrus.Logger) ChatService {
	return &chatService{provider: provider, contexts: contexts, audits: audits, log: log}
}

func (s *chatService) Send(ctx context.Context, userID, message string, wellness *models.WellnessData, includeContext bool) (string, error) {
	const op = "ChatService.Send"

	message = strings.TrimSpace(message)
	if message == "" {
		return "", utils.E(utils.CodeValidation, op, "Message is required", nil)
	}
	if userID == "" {
		return "", utils.E(utils.CodeValidation, op, "user_id is required", nil)
	}
	if s.provider == nil {
		return "", utils.E(utils.CodeConfiguration, op,
			"AI service not configured. Please set OPENAI_API_KEY.", nil)
	}

	contextText := ""
	wellnessProvided := false
	switch {
	case wellness != nil:
		contextText = Summarize(*wellness)
		wellnessProvided = true
	case includeContext:
		contextText = s.contexts.Summary(ctx, userID)
		wellnessProvided = true
	}

	messages := make([]llm.Message, 0, 3)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: SystemPrompt})
	if contextText != "" {
		messages = append(messages, llm.Message{
			Role: llm.RoleSystem,
			Content: "User's recent wellness data:\n" + contextText +
				"\nUse this context to provide personalized advice when relevant.",
		})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	reply, err := s.provider.Complete(ctx, messages)
	if err != nil {
		return "", err
	}
	if reply == "" {
		reply = FallbackResponse
	}

	s.auditAsync(userID, message, reply, wellnessProvided)

	return reply, nil
}

// auditAsync writes the exchange to chat_logs without blocking the reply.
// Failures are logged and discarded.
func (s *chatService) auditAsync(userID, message, reply string, wellnessProvided bool) {
	if s.audits == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		err := s.audits.Insert(ctx, &models.ChatLog{
			UserID:               userID,
			UserMessage:          message,
			AIResponse:           reply,
			Timestamp:            time.Now().UTC(),
			WellnessDataProvided: wellnessProvided,
		})
		if err != nil {
			s.log.WithError(err).Warn("chat audit write failed")
		}
	}()
}

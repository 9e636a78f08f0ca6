package service

import (
	"context"
	"errors"
	"time"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/internal/repository/memory"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/pkg/gemini"
	"ai-stylist-be/pkg/store"
	"ai-stylist-be/pkg/stylist"

	"github.com/google/uuid"
)

const (
	ChatModeGuided  = "guided"
	ChatModeGated   = "gated"
	ChatModeStylist = "stylist"
)

type IChatService interface {
	History(ctx context.Context, userId uuid.UUID) (*dto.ChatHistoryResponse, error)
	Send(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	// Reset drops the in-memory chat session. Called on sign-out.
	Reset(userId uuid.UUID)
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	chatSessions *memory.ChatSessionRepository
	generator    gemini.TextGenerator
	logger       logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	chatSessions *memory.ChatSessionRepository,
	generator gemini.TextGenerator,
	l logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		chatSessions: chatSessions,
		generator:    generator,
		logger:       l,
	}
}

// History returns the current in-memory conversation, creating it on first
// access. A fresh session opens with the greeting; when the profile still
// misses a guided field the first question follows and the flow takes over.
func (s *chatService) History(ctx context.Context, userId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	sess, err := s.loadOrStartSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	messages := make([]dto.ChatMessageDTO, 0, len(sess.Messages))
	for _, m := range sess.Messages {
		messages = append(messages, dto.ChatMessageDTO{Id: m.ID, Text: m.Text, IsUser: m.IsUser})
	}

	return &dto.ChatHistoryResponse{
		Messages:    messages,
		Suggestions: stylist.QuickSuggestions,
	}, nil
}

func (s *chatService) Send(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sess, err := s.loadOrStartSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	sent := store.ChatMessage{
		ID:     time.Now().UnixNano(),
		Text:   req.Message,
		IsUser: true,
	}
	sess.Append(sent)
	sess.LastQuery = req.Message

	var reply store.ChatMessage
	var mode string

	switch {
	case stylist.Active(sess.Step):
		reply, err = s.handleGuidedAnswer(ctx, userId, sess, req.Message)
		mode = ChatModeGuided
	default:
		reply, mode, err = s.handleFreeForm(ctx, userId, req.Message)
	}
	if err != nil {
		return nil, err
	}

	sess.Append(reply)
	s.chatSessions.Save(sess)

	sentDTO := dto.ChatMessageDTO{Id: sent.ID, Text: sent.Text, IsUser: true}
	replyDTO := dto.ChatMessageDTO{Id: reply.ID, Text: reply.Text, IsUser: false}
	return &dto.SendChatResponse{
		Sent:  &sentDTO,
		Reply: &replyDTO,
		Mode:  mode,
	}, nil
}

func (s *chatService) Reset(userId uuid.UUID) {
	s.chatSessions.Delete(userId.String())
}

func (s *chatService) loadOrStartSession(ctx context.Context, userId uuid.UUID) (*store.ChatSession, error) {
	if sess, found := s.chatSessions.Get(userId.String()); found {
		return sess, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}

	sess := &store.ChatSession{
		UserID: userId.String(),
		Step:   store.StepDone,
	}
	sess.Append(store.ChatMessage{
		ID:   time.Now().UnixNano(),
		Text: stylist.GreetingMessage,
	})

	if profile == nil || profile.NeedsGuidedOnboarding() {
		sess.Step = store.StepAskBody
		sess.Append(store.ChatMessage{
			ID:   time.Now().UnixNano() + 1,
			Text: stylist.QuestionBodyShape,
		})
	}

	s.chatSessions.Save(sess)
	return sess, nil
}

// handleGuidedAnswer persists the answer to its single profile column and
// advances the flow. Each answer maps to exactly one field.
func (s *chatService) handleGuidedAnswer(ctx context.Context, userId uuid.UUID, sess *store.ChatSession, answer string) (store.ChatMessage, error) {
	field, replyText, next, ok := stylist.Advance(sess.Step)
	if !ok {
		return store.ChatMessage{}, errors.New("guided flow is not active")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProfileRepository().UpdateField(ctx, userId, field, answer); err != nil {
		return store.ChatMessage{}, err
	}

	sess.Step = next

	return store.ChatMessage{
		ID:   time.Now().UnixNano(),
		Text: replyText,
	}, nil
}

func (s *chatService) handleFreeForm(ctx context.Context, userId uuid.UUID, message string) (store.ChatMessage, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return store.ChatMessage{}, "", err
	}
	if profile == nil {
		profile = &entity.Profile{Id: userId}
	}

	// Gate: an incomplete profile never reaches the generator.
	if missing := profile.MissingChatFields(); len(missing) > 0 {
		return store.ChatMessage{
			ID:   time.Now().UnixNano(),
			Text: stylist.MissingFieldsMessage(missing),
		}, ChatModeGated, nil
	}

	prompt := stylist.NewChatPromptBuilder(profile, message).Build()
	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		// A failed generation never fails the chat turn. The user gets a
		// fallback reply and the conversation continues.
		s.logger.Error("ChatService", "recommendation generation failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return store.ChatMessage{
			ID:   time.Now().UnixNano(),
			Text: stylist.UnavailableMessage,
		}, ChatModeStylist, nil
	}

	rec := &entity.Recommendation{
		Id:                 uuid.New(),
		UserId:             userId,
		RecommendationText: text,
		CreatedAt:          time.Now(),
	}
	if err := uow.RecommendationRepository().Create(ctx, rec); err != nil {
		// The reply is still useful; persisting it is best effort.
		s.logger.Warn("ChatService", "failed to persist recommendation", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	return store.ChatMessage{
		ID:   time.Now().UnixNano(),
		Text: text,
	}, ChatModeStylist, nil
}

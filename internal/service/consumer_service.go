package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/internal/websocket"
	"ai-stylist-be/pkg/gemini"
	"ai-stylist-be/pkg/stylist"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService generates profile-based recommendations off the request
// path. Every failure is terminal for its message: the error is logged and
// the message acked, never redelivered. A missing recommendation is
// non-fatal; the next profile save queues a fresh one.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	generator  gemini.TextGenerator
	hub        *websocket.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	generator gemini.TextGenerator,
	hub *websocket.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		generator:  generator,
		hub:        hub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishGenerateRecommendationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Generating recommendation for UserId: %s", payload.UserId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to load profile %s: %v", payload.UserId, err)
		msg.Ack()
		return
	}
	if profile == nil {
		log.Printf("[ERROR] Profile not found: %s", payload.UserId)
		msg.Ack() // Profile deleted? Ack.
		return
	}

	prompt := stylist.NewProfilePromptBuilder(profile).Build()

	text, err := cs.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Generation failed for user %s: %v", payload.UserId, err)
		msg.Ack()
		return
	}

	rec := &entity.Recommendation{
		Id:                 uuid.New(),
		UserId:             payload.UserId,
		RecommendationText: text,
		CreatedAt:          time.Now(),
	}
	if err := uow.RecommendationRepository().Create(ctx, rec); err != nil {
		log.Printf("[ERROR] Failed to store recommendation for user %s: %v", payload.UserId, err)
		msg.Ack()
		return
	}

	if cs.hub != nil {
		cs.hub.Send(payload.UserId, websocket.Event{
			Type: websocket.EventRecommendationReady,
			Data: dto.RecommendationResponse{
				Id:                 rec.Id,
				UserId:             rec.UserId,
				RecommendationText: rec.RecommendationText,
				CreatedAt:          rec.CreatedAt,
			},
		})
	}

	log.Printf("[SUCCESS] Recommendation %s stored for UserId: %s", rec.Id, payload.UserId)
	msg.Ack()
}

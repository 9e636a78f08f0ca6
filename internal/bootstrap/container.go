package bootstrap

import (
	"context"
	"time"

	"ai-stylist-be/internal/config"
	"ai-stylist-be/internal/controller"
	"ai-stylist-be/internal/handler"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/internal/pkg/mailer"
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/internal/repository/memory"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/internal/service"
	"ai-stylist-be/internal/websocket"
	"ai-stylist-be/pkg/gemini"
	"ai-stylist-be/pkg/navigation"
	"ai-stylist-be/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const generateRecommendationTopic = "GENERATE_RECOMMENDATION"

type Container struct {
	// Controllers
	AuthController           controller.IAuthController
	OAuthController          controller.IOAuthController
	ProfileController        controller.IProfileController
	ChatController           controller.IChatController
	RecommendationController controller.IRecommendationController
	NavigationController     controller.INavigationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	EventsHandler *handler.EventsHandler
	WebSocketHub  *websocket.Hub

	// App state machines
	SessionStore *session.Store
	Navigation   *navigation.Controller
	Logger       logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Domain building blocks
	generator := gemini.NewClient(cfg.Keys.GoogleGemini, cfg.Ai.GeminiModel)
	chatSessions := memory.NewChatSessionRepository()
	sessionStore := session.NewStore()

	accessTTL := time.Duration(cfg.Auth.AccessTokenTTLMin) * time.Minute
	refreshTTL := time.Duration(cfg.Auth.RefreshTokenTTLDay) * 24 * time.Hour

	// WebSocket Hub
	wsHub := websocket.NewHub(sysLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(generateRecommendationTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		generateRecommendationTopic,
		uowFactory,
		generator,
		wsHub,
	)

	// 4. Navigation state machine: session changes come from the store,
	// profile completeness from the profile service. The two reference
	// each other, so the checker closes over the service variable.
	var profileService service.IProfileService
	nav := navigation.NewController(sessionStore, func(ctx context.Context, userId uuid.UUID) (bool, error) {
		return profileService.IsCompleted(ctx, userId)
	}, sysLogger)
	profileService = service.NewProfileService(uowFactory, publisherService, nav.NotifyProfileSaved)
	nav.Start(context.Background())

	chatService := service.NewChatService(uowFactory, chatSessions, generator, sysLogger)

	authService := service.NewAuthService(
		uowFactory,
		emailService,
		sessionStore,
		cfg.Auth.JWTSecret,
		cfg.Auth.DeepLinkScheme,
		accessTTL,
		refreshTTL,
		func(userId uuid.UUID) { chatService.Reset(userId) },
	)

	oauthService := service.NewOAuthService(
		uowFactory,
		sessionStore,
		cfg.Auth.GoogleClientID,
		cfg.Auth.GoogleClientSecret,
		cfg.App.BaseURL+"/api/oauth/google/callback",
		cfg.Auth.JWTSecret,
		cfg.Auth.DeepLinkScheme,
		accessTTL,
		refreshTTL,
	)

	recommendationService := service.NewRecommendationService(uowFactory)

	authMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	eventsHandler := handler.NewEventsHandler(wsHub, cfg.Auth.JWTSecret, sysLogger)

	return &Container{
		AuthController:           controller.NewAuthController(authService),
		OAuthController:          controller.NewOAuthController(oauthService),
		ProfileController:        controller.NewProfileController(profileService, authMiddleware),
		ChatController:           controller.NewChatController(chatService, authMiddleware),
		RecommendationController: controller.NewRecommendationController(recommendationService, authMiddleware),
		NavigationController:     controller.NewNavigationController(nav),

		ConsumerService: consumerService,

		EventsHandler: eventsHandler,
		WebSocketHub:  wsHub,

		SessionStore: sessionStore,
		Navigation:   nav,
		Logger:       sysLogger,
	}
}

package bootstrap

import (
	"log"
	"time"

	"hananav-be/internal/config"
	"hananav-be/internal/controller"
	"hananav-be/internal/pkg/logger"
	"hananav-be/internal/repository/memory"
	"hananav-be/internal/service"
	"hananav-be/pkg/admin/dashboard"
	adminEvents "hananav-be/pkg/admin/events"
	"hananav-be/pkg/admin/usage"
	"hananav-be/pkg/answer"
	"hananav-be/pkg/answer/simulated"

	pktNats "hananav-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const usageTopicName = "query_answered"

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	EvidenceController controller.IEvidenceController
	SavedController    controller.ISavedController
	AdminController    controller.IAdminController
	DocumentController controller.IDocumentController
	HomeController     controller.IHomeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS telemetry is optional; a nil publisher disables it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// In-memory state
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Answer.SessionTTL) * time.Minute)
	savedRepo := memory.NewSavedRepository()

	// Answer backend
	var provider answer.Provider
	switch cfg.Answer.Provider {
	default:
		provider = simulated.NewProvider(time.Duration(cfg.Answer.SimulatedDelay) * time.Millisecond)
		log.Printf("[INFO] Using Answer Provider: SIMULATED (%dms delay)", cfg.Answer.SimulatedDelay)
	}

	// Admin Domain Components
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	usageTracker := usage.NewTracker(sysLogger)
	dashboardAggregator := dashboard.NewAggregator(sysLogger, usageTracker)

	// 3. Services
	publisherService := service.NewPublisherService(usageTopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, usageTopicName, usageTracker)

	chatService := service.NewChatService(
		sessionRepo,
		provider,
		time.Duration(cfg.Answer.QueryTimeout)*time.Millisecond,
		publisherService,
		adminEventPublisher,
		sysLogger,
	)
	evidenceService := service.NewEvidenceService(sessionRepo, sysLogger)
	savedService := service.NewSavedService(savedRepo, adminEventPublisher, sysLogger)
	adminService := service.NewAdminService(dashboardAggregator, sysLogger)
	documentService := service.NewDocumentService()
	homeService := service.NewHomeService()

	// 4. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService),
		EvidenceController: controller.NewEvidenceController(evidenceService),
		SavedController:    controller.NewSavedController(savedService),
		AdminController:    controller.NewAdminController(adminService),
		DocumentController: controller.NewDocumentController(documentService),
		HomeController:     controller.NewHomeController(homeService),

		ConsumerService: consumerService,
	}
}

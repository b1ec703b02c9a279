package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"campus/config"
	"campus/internal/delivery"
	"campus/internal/delivery/http"
	"campus/internal/delivery/http/router/handler"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/infra/catalog"
	"campus/internal/infra/llm"
	logs "campus/internal/infra/log"
	"campus/internal/infra/persistence/sqlite"
	"campus/internal/infra/qrcode"
	"campus/internal/usecase"
	"campus/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.Open,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCatalogRepository,
			sqlite.NewIdentityRepository,
			sqlite.NewFavoriteRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
			newReplyProvider,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newReplyProvider selects the response mode for the whole session: a
// configured API key enables the delegated generative provider, otherwise
// the chat engine stays on canned replies. The choice never changes
// mid-conversation.
func newReplyProvider(cfg *config.Config, logger *slog.Logger) service.ReplyProvider {
	if cfg.Chatbot == nil || cfg.Chatbot.APIKey == "" {
		logger.Info("No chatbot API key configured, using canned replies")

		return nil
	}

	return llm.NewAnthropicProvider(cfg.Chatbot.APIKey, cfg.Chatbot.Model)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationUsecase,
			newChatUsecase,
			impl.NewSearchUsecase,
			impl.NewSessionUsecase,
			impl.NewFavoriteUsecase,
			impl.NewReviewUsecase,
			impl.NewCatalogUsecase,
		),
	)
}

// newCatalogRepository builds and validates the in-memory catalog store
func newCatalogRepository() (repository.CatalogRepository, error) {
	return catalog.NewFromSeed()
}

func newNotificationUsecase(cfg *config.Config) usecase.NotificationUsecase {
	return impl.NewNotificationUsecase(cfg.Notifications.TTL)
}

func newChatUsecase(provider service.ReplyProvider, cfg *config.Config, logger *slog.Logger) usecase.ChatUsecase {
	var thinkingDelay, providerTimeout time.Duration
	if cfg.Chatbot != nil {
		thinkingDelay = cfg.Chatbot.ThinkingDelay
		providerTimeout = cfg.Chatbot.ProviderTimeout
	}

	return impl.NewChatUsecase(provider, thinkingDelay, providerTimeout, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewChatHandler,
			handler.NewSessionHandler,
			handler.NewReviewHandler,
			handler.NewFavoriteHandler,
			handler.NewNotificationHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"farmgrid/config"
	"farmgrid/internal/delivery"
	"farmgrid/internal/delivery/http"
	httpmiddleware "farmgrid/internal/delivery/http/middleware"
	"farmgrid/internal/delivery/http/router/handler"
	"farmgrid/internal/delivery/middleware"
	"farmgrid/internal/domain/lifecycle"
	"farmgrid/internal/domain/service"
	logs "farmgrid/internal/infra/log"
	"farmgrid/internal/infra/otp"
	"farmgrid/internal/infra/persistence/postgres"
	"farmgrid/internal/infra/pubsub"
	"farmgrid/internal/infra/sms"
	"farmgrid/internal/usecase"
	"farmgrid/internal/usecase/impl"

	"go.uber.org/fx"
)

const defaultOTPTTL = 5 * time.Minute

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
		injectMiddleware(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFarmerRepository,
			postgres.NewCooperativeRepository,
			postgres.NewCommodityRepository,
			postgres.NewCollectionRepository,
			postgres.NewSmsLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newSMSSender,
			newOTPStore,
			newEventPublisher,
		),
	)
}

// newSMSSender selects the outbound SMS provider from configuration. The
// log-only sender is the fallback for local development.
func newSMSSender(cfg *config.Config, logger *slog.Logger) service.SMSSender {
	if cfg.SMS != nil && cfg.SMS.Provider == "http" {
		return sms.NewHTTPSender(cfg.SMS.Endpoint, cfg.SMS.APIKey, cfg.SMS.Shortcode, cfg.SMS.Timeout, logger)
	}

	return sms.NewLogSender(logger)
}

// newOTPStore selects the verification code store from configuration.
func newOTPStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.OTPStore, error) {
	if cfg.OTP != nil && cfg.OTP.Store == "redis" && cfg.OTP.Redis != nil {
		return otp.NewRedisStore(ctx, cfg.OTP.Redis, logger)
	}

	return otp.NewMemoryStore(), nil
}

// newEventPublisher creates the collection event publisher when Pub/Sub is
// configured. Publishing is optional; a nil publisher disables it.
func newEventPublisher(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.PubSub == nil || cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
		return nil, nil // Event publishing is optional
	}

	publisher, err := pubsub.NewGooglePubSubPublisher(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			_, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return publisher.Close()
		},
	})

	return publisher, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGatewayService,
			newOTPUsecase,
		),
	)
}

// newOTPUsecase wires the OTP service with the configured code lifetime.
func newOTPUsecase(cfg *config.Config, logger *slog.Logger, store service.OTPStore, sender service.SMSSender) usecase.OTPUsecase {
	ttl := defaultOTPTTL
	if cfg.OTP != nil && cfg.OTP.TTL > 0 {
		ttl = cfg.OTP.TTL
	}

	return impl.NewOTPService(logger, store, sender, ttl)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewOTPHandler,
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

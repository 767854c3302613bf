// Package pubsub provides the login-code dispatch channel implementations.
package pubsub

import (
	"context"
	"log/slog"

	"depot/config"
	"depot/internal/domain/constants"
	"depot/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopNotifier is a no-op implementation when Pub/Sub is disabled
type noopNotifier struct {
	logger *slog.Logger
}

func (p *noopNotifier) PublishLoginCode(ctx context.Context, event *service.LoginCodeEvent) error {
	p.logger.Debug("[NoopPubSub] Login code publishing disabled, skipping",
		slog.String("email", event.Email),
	)

	return nil
}

func (p *noopNotifier) Close() error {
	return nil
}

// NotifierParams holds dependencies for LoginCodeNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLoginCodeNotifier creates a LoginCodeNotifier based on configuration
func NewLoginCodeNotifier(params NotifierParams) (service.LoginCodeNotifier, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op notifier
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op login code notifier")

		return &noopNotifier{logger: logger}, nil
	}

	var notifier service.LoginCodeNotifier
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		notifier = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		notifier, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close notifier on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing LoginCodeNotifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}

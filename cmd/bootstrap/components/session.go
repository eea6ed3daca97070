package components

import (
	"context"
	"log/slog"

	"coupon-portal/internal/handler/middleware"
	"coupon-portal/internal/infra/session"
	"coupon-portal/internal/pkg/clock"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/usecase"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(middleware.SessionStore)),
		),
	),
)

// NewSessionStore runs the expiry sweeper for the lifetime of the app and ends every
// session on shutdown.
func NewSessionStore(
	lc fx.Lifecycle,
	cfg config.Config,
	factory usecase.WorkflowFactory,
	clk clock.Clock,
	logger *slog.Logger,
) *session.Store {
	store := session.NewStore(cfg.Session, factory, clk, logger)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.RunSweeper(ctx, cfg.Session.SweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			store.Close()
			return nil
		},
	})

	return store
}

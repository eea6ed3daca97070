package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"coupon-portal/internal/infra/telemetry"
	"coupon-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		telemetry.NewMetrics,
	),
	fx.Invoke(
		InitTelemetry,
	),
)

func InitTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdownTracer, err := telemetry.InitTracer(cfg.Telemetry)
	if err != nil {
		return err
	}
	shutdownMeter, err := telemetry.InitMeter(cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.Enabled {
		logger.Info("telemetry enabled", "endpoint", cfg.Telemetry.Endpoint, "service", cfg.Telemetry.ServiceName)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.Join(shutdownTracer(ctx), shutdownMeter(ctx))
		},
	})
	return nil
}

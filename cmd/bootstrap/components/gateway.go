package components

import (
	"log/slog"

	"coupon-portal/internal/infra/couponapi"
	"coupon-portal/internal/infra/telemetry"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewCouponAPIClient,
			fx.As(new(usecase.CouponGateway)),
		),
	),
)

func NewCouponAPIClient(cfg config.Config, metrics *telemetry.Metrics, logger *slog.Logger) *couponapi.Client {
	return couponapi.NewClient(cfg.CouponAPI, metrics, logger)
}

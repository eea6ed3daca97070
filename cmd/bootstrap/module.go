package bootstrap

import (
	"coupon-portal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.DocumentModule,
	components.SessionModule,
	components.HandlerModule,
)

package components

import (
	"coupon-portal/internal/pkg/clock"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/pkg/localedate"
	"coupon-portal/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewWorkflowFactory,
		usecase.NewCouponDocuments,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *localedate.Formatter {
		return localedate.NewFormatter(cfg.Locale.Language)
	},
)

package components

import (
	"log/slog"

	"coupon-portal/internal/handler/web"
	"coupon-portal/internal/infra/artwork"
	"coupon-portal/internal/infra/document"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/usecase"

	"go.uber.org/fx"
)

var DocumentModule = fx.Module("document",
	fx.Provide(
		fx.Annotate(
			NewArtworkStore,
			fx.As(new(document.ImageLoader)),
			fx.As(new(web.ArtworkSource)),
		),
		fx.Annotate(
			document.NewRenderer,
			fx.As(new(usecase.DocumentRenderer)),
		),
	),
)

func NewArtworkStore(cfg config.Config, logger *slog.Logger) (*artwork.Store, error) {
	return artwork.NewStore(cfg.Artwork, logger)
}

package usecase

import (
	"context"
	"log/slog"

	"coupon-portal/internal/domain/campaign"
	"coupon-portal/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

// CampaignCatalog fetches the selectable campaigns. It keeps no state of its own; the
// workflow owns the loaded collection.
//
// Concurrent Fetch calls share one request to the coupon service.
type CampaignCatalog struct {
	gateway CouponGateway
	group   singleflight.Group
	log     *slog.Logger
}

func NewCampaignCatalog(gateway CouponGateway, log *slog.Logger) *CampaignCatalog {
	return &CampaignCatalog{gateway: gateway, log: log}
}

// Fetch returns the campaigns in service order, unsorted and without dedup.
func (c *CampaignCatalog) Fetch(ctx context.Context) ([]*campaign.Campaign, error) {
	v, err, shared := c.group.Do("campaigns", func() (any, error) {
		return c.gateway.ListCampaigns(ctx)
	})
	if err != nil {
		c.log.Error("failed to load campaigns", "error", err, "shared", shared)
		return nil, errs.Wrap(err, "list campaigns")
	}

	campaigns, _ := v.([]*campaign.Campaign)
	c.log.Debug("campaigns loaded", "count", len(campaigns), "shared", shared)
	// callers sharing a result must not see each other's slice
	return append([]*campaign.Campaign(nil), campaigns...), nil
}

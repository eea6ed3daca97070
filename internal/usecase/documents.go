package usecase

import (
	"context"
	"log/slog"

	"coupon-portal/internal/pkg/errs"
)

// CouponDocuments hands out the PDF for the coupon a workflow currently holds.
type CouponDocuments struct {
	renderer DocumentRenderer
	log      *slog.Logger
}

func NewCouponDocuments(renderer DocumentRenderer, log *slog.Logger) *CouponDocuments {
	return &CouponDocuments{renderer: renderer, log: log}
}

// Download renders a fresh document on every call. ErrNoCouponResult means the workflow
// has nothing to download (never succeeded, or already dismissed).
func (d *CouponDocuments) Download(ctx context.Context, wf *Workflow) (*Document, error) {
	result := wf.Result()
	if result == nil {
		return nil, errs.ErrNoCouponResult
	}

	doc, err := d.renderer.RenderDocument(ctx, result)
	if err != nil {
		d.log.Error("failed to render coupon document", "coupon_code", result.Code().String(), "error", err)
		return nil, errs.Wrap(err, "render coupon document")
	}
	return doc, nil
}

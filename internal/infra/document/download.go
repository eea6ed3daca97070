package document

import (
	"context"

	"coupon-portal/internal/domain/coupon"
	"coupon-portal/internal/infra/telemetry"
	"coupon-portal/internal/pkg/errs"
	"coupon-portal/internal/usecase"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("coupon-portal/document")

// RenderDocument runs one render into a fresh MemorySink and waits for the save.
// There is no timeout of its own: if the artwork never loads, only ctx ends the wait.
func (r *Renderer) RenderDocument(ctx context.Context, c *coupon.Coupon) (*usecase.Document, error) {
	ctx, span := tracer.Start(ctx, "document.render")
	defer span.End()
	span.SetAttributes(
		attribute.String("coupon.code", c.Code().String()),
		attribute.String("coupon.artwork", c.Artwork().String()),
	)

	sink := NewMemorySink()
	fut := r.Render(c, sink)

	select {
	case <-ctx.Done():
		span.SetStatus(codes.Error, "abandoned before save")
		return nil, errs.Wrap(ctx.Err(), "wait for coupon document")
	case <-fut.Done():
	}

	saved, err := fut.Result()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, err
	}

	name, data := sink.Document()
	span.SetAttributes(attribute.Bool("coupon.with_artwork", saved.WithArtwork), attribute.Int("pdf.size", saved.Size))
	return &usecase.Document{FileName: name, Data: data, WithArtwork: saved.WithArtwork}, nil
}

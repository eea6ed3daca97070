package telemetry

import (
	"context"

	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const meterName = "coupon-portal"

// InitMeter installs the global meter provider, exporting over OTLP/HTTP on the same
// endpoint as traces.
func InitMeter(cfg config.TelemetryConfig) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return nil, errs.Wrap(err, "create otlp metric exporter")
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, errs.Wrap(err, "create telemetry resource")
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return mp.Shutdown, nil
}

// Metrics holds the portal's counters.
type Metrics struct {
	// calls to the remote coupon service, by operation and outcome
	CouponRequests metric.Int64Counter
	// saved coupon PDFs, by whether the artwork made it in
	DocumentsRendered metric.Int64Counter
	// renders that fell back to text only
	ArtworkFallbacks metric.Int64Counter
}

// NewMetrics registers the counters on the global meter provider. Instruments created
// before InitMeter runs are forwarded once the provider is installed.
func NewMetrics() (*Metrics, error) {
	return newMetrics(otel.Meter(meterName))
}

// NewNoopMetrics records nothing.
func NewNoopMetrics() *Metrics {
	m, _ := newMetrics(noop.NewMeterProvider().Meter(meterName))
	return m
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	couponRequests, err := meter.Int64Counter(
		"coupon_service_requests_total",
		metric.WithDescription("Requests sent to the remote coupon service"),
	)
	if err != nil {
		return nil, errs.Wrap(err, "coupon_service_requests_total")
	}

	documentsRendered, err := meter.Int64Counter(
		"coupon_documents_rendered_total",
		metric.WithDescription("Coupon PDFs saved"),
	)
	if err != nil {
		return nil, errs.Wrap(err, "coupon_documents_rendered_total")
	}

	artworkFallbacks, err := meter.Int64Counter(
		"coupon_artwork_fallbacks_total",
		metric.WithDescription("Coupon PDFs saved without artwork"),
	)
	if err != nil {
		return nil, errs.Wrap(err, "coupon_artwork_fallbacks_total")
	}

	return &Metrics{
		CouponRequests:    couponRequests,
		DocumentsRendered: documentsRendered,
		ArtworkFallbacks:  artworkFallbacks,
	}, nil
}

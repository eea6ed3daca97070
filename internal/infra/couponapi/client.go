package couponapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"coupon-portal/internal/domain/campaign"
	"coupon-portal/internal/infra/telemetry"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/pkg/errs"
	"coupon-portal/internal/usecase"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	campaignsPath = "/coupons/campaigns"
	generatePath  = "/coupons/generate"

	// error bodies larger than this are not inspected for a message
	maxErrorBody = 64 << 10
)

// Client is the HTTP gateway to the remote coupon service.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *telemetry.Metrics
	log     *slog.Logger
}

func NewClient(cfg config.CouponAPIConfig, metrics *telemetry.Metrics, log *slog.Logger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.Timeout,
	}, metrics, log)
}

func NewClientWithHTTP(cfg config.CouponAPIConfig, httpClient *http.Client, metrics *telemetry.Metrics, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		metrics: metrics,
		log:     log,
	}
}

// record counts one call. outcome is "ok", "remote_error" or "error".
func (c *Client) record(ctx context.Context, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		var remote *usecase.RemoteError
		if errs.As(err, &remote) {
			outcome = "remote_error"
		}
	}
	c.metrics.CouponRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

var _ usecase.CouponGateway = (*Client)(nil)

func (c *Client) ListCampaigns(ctx context.Context) (campaigns []*campaign.Campaign, err error) {
	defer func() { c.record(ctx, "list_campaigns", err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+campaignsPath, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build campaigns request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &usecase.RemoteError{Err: errs.Mark(err, errs.ErrRemoteUnavailable)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.remoteError(resp)
	}

	var body []campaignDTO
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode campaigns"), errs.ErrMalformedResponse)
	}

	campaigns = make([]*campaign.Campaign, 0, len(body))
	for i, dto := range body {
		cmp, err := dto.toDomain()
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "campaign #%d", i), errs.ErrMalformedResponse)
		}
		campaigns = append(campaigns, cmp)
	}
	return campaigns, nil
}

func (c *Client) GenerateCoupon(ctx context.Context, in usecase.CouponRequest) (_ *usecase.GenerateOutcome, err error) {
	defer func() { c.record(ctx, "generate", err) }()

	payload, err := json.Marshal(in)
	if err != nil {
		return nil, errs.Wrap(err, "encode coupon request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "build generate request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &usecase.RemoteError{Err: errs.Mark(err, errs.ErrRemoteUnavailable)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.remoteError(resp)
	}

	if resp.StatusCode != http.StatusCreated {
		// drained so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &usecase.GenerateOutcome{StatusCode: resp.StatusCode}, nil
	}

	var body couponDTO
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode coupon"), errs.ErrMalformedResponse)
	}
	issued, err := body.toDomain()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "coupon response"), errs.ErrMalformedResponse)
	}

	return &usecase.GenerateOutcome{StatusCode: resp.StatusCode, Coupon: issued}, nil
}

// remoteError reads the optional {"message": "..."} body of a failed response.
func (c *Client) remoteError(resp *http.Response) error {
	remote := &usecase.RemoteError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		c.log.Warn("failed to read coupon service error body", "status", resp.StatusCode, "error", err)
		return remote
	}

	var body errorBodyDTO
	if json.Unmarshal(raw, &body) == nil {
		remote.Message = body.Message
	}
	return remote
}

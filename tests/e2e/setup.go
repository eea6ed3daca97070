//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"coupon-portal/cmd/bootstrap"
	"coupon-portal/cmd/bootstrap/components"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/usecase"
	"coupon-portal/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Remote coupon service stand-in
// ------------------------------------------------------------

// CouponService answers the two remote endpoints. Issued emails are remembered, so a
// second request for the same email gets the duplicate message.
type CouponService struct {
	mu        sync.Mutex
	server    *httptest.Server
	campaigns []map[string]string
	coupon    *builder.CouponBuilder
	issued    map[string]bool
	requests  []usecase.CouponRequest
}

func NewCouponService(t *testing.T) *CouponService {
	t.Helper()
	svc := &CouponService{
		campaigns: []map[string]string{
			{"campaignCode": "A", "courseName": "Course A"},
			{"campaignCode": "B", "courseName": "Course B"},
		},
		coupon: builder.NewCouponBuilder(),
		issued: map[string]bool{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /coupons/campaigns", func(w http.ResponseWriter, _ *http.Request) {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		writeJSON(w, http.StatusOK, svc.campaigns)
	})
	mux.HandleFunc("POST /coupons/generate", func(w http.ResponseWriter, r *http.Request) {
		var req usecase.CouponRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
			return
		}

		svc.mu.Lock()
		defer svc.mu.Unlock()
		svc.requests = append(svc.requests, req)
		if svc.issued[req.Email] {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Coupon with this email already exists"})
			return
		}
		svc.issued[req.Email] = true

		b := *svc.coupon
		b.Name, b.Email, b.Phone, b.CampaignCode = req.Name, req.Email, req.Phone, req.CampaignCode
		writeJSON(w, http.StatusCreated, b.BuildResponseBody())
	})

	svc.server = httptest.NewServer(mux)
	t.Cleanup(svc.server.Close)
	return svc
}

func (s *CouponService) URL() string {
	return s.server.URL
}

// SetCoupon changes the coupon returned for the next requests.
func (s *CouponService) SetCoupon(b *builder.CouponBuilder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = b
}

func (s *CouponService) Requests() []usecase.CouponRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]usecase.CouponRequest(nil), s.requests...)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ------------------------------------------------------------
// Application built from the production fx modules
// ------------------------------------------------------------
func buildE2EApp(serviceURL string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			c := config.NewTestConfig()
			c.CouponAPI.BaseURL = serviceURL
			c.CouponAPI.Timeout = 5 * time.Second
			return c
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.TelemetryModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.DocumentModule,
		components.SessionModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, cfg, app
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Config  config.Config
	Service *CouponService
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Service = NewCouponService(s.T())

	router, cfg, app := buildE2EApp(s.Service.URL())
	require.NotNil(s.T(), router, "router setup failed")
	s.Router = router
	s.Config = cfg

	s.T().Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
}

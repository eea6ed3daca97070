//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"testing/fstest"

	"coupon-portal/internal/handler"
	"coupon-portal/internal/handler/api"
	"coupon-portal/internal/handler/middleware"
	"coupon-portal/internal/handler/presenter"
	"coupon-portal/internal/handler/web"
	"coupon-portal/internal/infra/artwork"
	"coupon-portal/internal/infra/session"
	"coupon-portal/internal/pkg/clock"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/pkg/localedate"
	"coupon-portal/internal/usecase"
	"coupon-portal/tests/common/builder"
	"coupon-portal/tests/common/httptest"
	usecasemock "coupon-portal/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	gateway := usecasemock.NewMockCouponGateway(ctrl)
	gateway.EXPECT().ListCampaigns(gomock.Any()).Return(builder.NewCampaigns("A", "Course A"), nil).AnyTimes()
	renderer := usecasemock.NewMockDocumentRenderer(ctrl)

	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := session.NewStore(cfg.Session, usecase.NewWorkflowFactory(gateway, logger), clock.NewRealClock(), logger)
	t.Cleanup(store.Close)

	p := presenter.NewPresenter(localedate.NewFormatter(cfg.Locale.Language))
	docs := usecase.NewCouponDocuments(renderer, logger)
	art := artwork.NewStoreFS(fstest.MapFS{"coupon_100.png": {Data: []byte("png")}}, logger)

	engine := gin.New()
	err := handler.NewRouter(
		engine,
		cfg,
		logger,
		api.NewFormHandler(p, docs),
		web.NewPageHandler(p, docs, art, cfg, logger),
		middleware.NewSessionMiddleware(store, cfg, logger),
	)
	require.NoError(t, err)
	return engine
}

func TestRouter(t *testing.T) {
	router := newRouter(t)

	t.Run("health", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("page opens a session", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		c := httptest.ExtractCookie(w, "coupon_session")
		require.NotNil(t, c)
		assert.True(t, c.HttpOnly)
	})

	t.Run("api shares the page session", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/", nil)
		c := httptest.ExtractCookie(w, "coupon_session")
		require.NotNil(t, c)

		w = httptest.PerformRequest(t, router, http.MethodGet, "/api/form", nil, c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, c.Value, httptest.ExtractCookie(w, "coupon_session").Value)
	})

	t.Run("artwork needs no session", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/artwork/100", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, httptest.ExtractCookie(w, "coupon_session"))
	})

	t.Run("swagger is only mounted in debug mode", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/swagger/index.html", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

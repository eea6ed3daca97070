package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/pkg/cookie"
	"coupon-portal/internal/pkg/errs"
	"coupon-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionStore is the part of the session store the middleware needs.
type SessionStore interface {
	Get(id string) (*usecase.Workflow, error)
	Create(ctx context.Context) (string, *usecase.Workflow)
}

type SessionMiddleware struct {
	store SessionStore
	cfg   config.SessionConfig
	log   *slog.Logger
}

const (
	ctxSessionIDKey = "session_id"
	ctxWorkflowKey  = "workflow"
)

func NewSessionMiddleware(store SessionStore, cfg config.Config, log *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		store: store,
		cfg:   cfg.Session,
		log:   log,
	}
}

// LoadOrCreate attaches the visitor's workflow to the request. A missing or expired
// session is replaced by a new one, which also starts its catalog request.
func (m *SessionMiddleware) LoadOrCreate() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cookie.GetSessionID(c, m.cfg)

		wf, err := m.store.Get(id)
		if err != nil {
			if errs.Is(err, errs.ErrSessionExpired) {
				m.log.Info("session expired, starting a new one", "session_id", id)
			}
			id, wf = m.store.Create(c.Request.Context())
		}

		// refresh on every request so the cookie lives as long as the session does
		cookie.SetSessionCookie(c, m.cfg, id)
		c.Set(ctxSessionIDKey, id)
		c.Set(ctxWorkflowKey, wf)
		c.Next()
	}
}

func GetWorkflow(c *gin.Context) (*usecase.Workflow, bool) {
	v, exists := c.Get(ctxWorkflowKey)
	if !exists {
		return nil, false
	}
	wf, ok := v.(*usecase.Workflow)
	return wf, ok && wf != nil
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

// MustWorkflow aborts with 500 when the session middleware did not run.
func MustWorkflow(c *gin.Context) (*usecase.Workflow, bool) {
	wf, ok := GetWorkflow(c)
	if !ok {
		slog.Error("workflow missing from context; session middleware not installed", "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return nil, false
	}
	return wf, true
}

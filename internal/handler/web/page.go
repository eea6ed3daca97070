package web

import (
	"log/slog"
	"net/http"
	"time"

	"coupon-portal/internal/domain/coupon"
	"coupon-portal/internal/domain/form"
	reqdto "coupon-portal/internal/handler/dto/request"
	"coupon-portal/internal/handler/httperr"
	"coupon-portal/internal/handler/middleware"
	"coupon-portal/internal/handler/presenter"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const pageTemplate = "index.html"

// ArtworkSource serves the raw artwork bytes for the confirmation image.
type ArtworkSource interface {
	Bytes(bucket coupon.ArtworkBucket) ([]byte, error)
}

// PageHandler serves the server-rendered form. Every state change answers with a
// redirect back to the page (Post/Redirect/Get).
type PageHandler struct {
	presenter   *presenter.Presenter
	documents   *usecase.CouponDocuments
	artwork     ArtworkSource
	catalogWait time.Duration
	log         *slog.Logger
}

func NewPageHandler(
	p *presenter.Presenter,
	documents *usecase.CouponDocuments,
	artwork ArtworkSource,
	cfg config.Config,
	log *slog.Logger,
) *PageHandler {
	return &PageHandler{
		presenter:   p,
		documents:   documents,
		artwork:     artwork,
		catalogWait: cfg.Server.CatalogWait,
		log:         log,
	}
}

// Index waits briefly for the catalog so a fresh visitor usually sees the courses,
// then falls back to the loading placeholder.
func (h *PageHandler) Index(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}

	if h.catalogWait > 0 {
		timer := time.NewTimer(h.catalogWait)
		defer timer.Stop()
		select {
		case <-wf.CatalogReady():
		case <-timer.C:
		case <-c.Request.Context().Done():
		}
	}

	c.HTML(http.StatusOK, pageTemplate, h.presenter.Form(wf.Snapshot()))
}

func (h *PageHandler) Submit(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}

	var req reqdto.CouponFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, pageTemplate, h.presenter.Form(wf.Snapshot()))
		return
	}

	// only fields the visitor actually changed lose their error
	current := wf.Snapshot().Values
	posted := req.ToValues()
	for _, f := range form.AllFields {
		if posted.Get(f) != current.Get(f) {
			wf.EditField(f, posted.Get(f))
		}
	}

	snap, err := wf.Submit(c.Request.Context())
	if err != nil {
		h.renderConflict(c, snap, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) Close(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}

	snap, err := wf.Reset()
	if err != nil {
		h.renderConflict(c, snap, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) Download(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}

	doc, err := h.documents.Download(c.Request.Context(), wf)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	sendDocument(c, doc)
}

func (h *PageHandler) Artwork(c *gin.Context) {
	bucket, err := coupon.ParseBucket(c.Param("bucket"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Artwork not found", nil)
		return
	}

	data, err := h.artwork.Bytes(bucket)
	if err != nil {
		h.log.Error("failed to read artwork", "bucket", bucket.String(), "error", err)
		httperr.Abort(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", data)
}

// renderConflict shows the page again with the reason the action was refused.
func (h *PageHandler) renderConflict(c *gin.Context, snap usecase.Snapshot, err error) {
	status, msg := httperr.Classify(err)
	view := h.presenter.Form(snap)
	view.Banner = msg
	c.HTML(status, pageTemplate, view)
}

func sendDocument(c *gin.Context, doc *usecase.Document) {
	c.Header("Content-Disposition", httperr.Attachment(doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

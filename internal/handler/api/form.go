package api

import (
	"net/http"

	reqdto "coupon-portal/internal/handler/dto/request"
	resdto "coupon-portal/internal/handler/dto/response"
	"coupon-portal/internal/handler/httperr"
	"coupon-portal/internal/handler/middleware"
	"coupon-portal/internal/handler/presenter"
	"coupon-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const downloadPath = "/api/form/coupon.pdf"

type FormHandler struct {
	presenter *presenter.Presenter
	documents *usecase.CouponDocuments
}

func NewFormHandler(p *presenter.Presenter, documents *usecase.CouponDocuments) *FormHandler {
	return &FormHandler{
		presenter: p,
		documents: documents,
	}
}

// @Summary Get form state
// @Description Current values, field errors, banner, campaigns and confirmation of the visitor's session
// @Tags form
// @Produce json
// @Success 200 {object} resdto.FormStateResponse
// @Router /api/form [get]
func (h *FormHandler) GetState(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, wf.Snapshot())
}

// @Summary Edit a field
// @Description Store a new value for one field and clear only that field's error
// @Tags form
// @Accept json
// @Produce json
// @Param request body reqdto.EditFieldRequest true "Field and value"
// @Success 200 {object} resdto.FormStateResponse
// @Failure 400 {object} httperr.Response
// @Router /api/form/fields [patch]
func (h *FormHandler) EditField(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}

	var req reqdto.EditFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	field, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown field", gin.H{"field": req.Field})
		return
	}

	h.respond(c, http.StatusOK, wf.EditField(field, req.Value))
}

// @Summary Submit the form
// @Description Validate and, when valid, request a coupon. Validation and service failures are reported in the state body. 409 while a request is outstanding or a coupon is already issued.
// @Tags form
// @Produce json
// @Success 200 {object} resdto.FormStateResponse
// @Failure 409 {object} httperr.Response
// @Router /api/form/submit [post]
func (h *FormHandler) Submit(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}

	snap, err := wf.Submit(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, snap)
}

// @Summary Close the confirmation
// @Description Dismiss the issued coupon and clear the four form fields
// @Tags form
// @Produce json
// @Success 200 {object} resdto.FormStateResponse
// @Failure 409 {object} httperr.Response
// @Router /api/form/reset [post]
func (h *FormHandler) Reset(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}

	snap, err := wf.Reset()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, snap)
}

// @Summary Download the coupon PDF
// @Description Render the issued coupon as a PDF attachment
// @Tags form
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /api/form/coupon.pdf [get]
func (h *FormHandler) DownloadPDF(c *gin.Context) {
	wf, ok := middleware.MustWorkflow(c)
	if !ok {
		return
	}

	doc, err := h.documents.Download(c.Request.Context(), wf)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Content-Disposition", httperr.Attachment(doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

func (h *FormHandler) respond(c *gin.Context, status int, snap usecase.Snapshot) {
	res, err := resdto.FromFormView(h.presenter.Form(snap), downloadPath)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

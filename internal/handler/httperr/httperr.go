package httperr

import (
	"mime"
	"net/http"

	"coupon-portal/internal/pkg/errs"
	"coupon-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Classify maps workflow errors to a status and a message that is safe to show.
func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrSubmissionInFlight):
		return http.StatusConflict, usecase.MsgSubmissionInFlight
	case errs.Is(err, errs.ErrCouponAlreadyIssued):
		return http.StatusConflict, usecase.MsgCouponIssued
	case errs.Is(err, errs.ErrNoCouponResult):
		return http.StatusNotFound, "No coupon to download"
	case errs.Is(err, errs.ErrArtworkNotFound):
		return http.StatusNotFound, "Artwork not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// Abort classifies err and aborts with the JSON error body.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

// Attachment is the Content-Disposition value for a download. The file name is quoted
// and escaped as needed.
func Attachment(fileName string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": fileName})
}

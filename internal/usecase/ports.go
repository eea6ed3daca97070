package usecase

import (
	"context"
	"fmt"
	"strings"

	"coupon-portal/internal/domain/campaign"
	"coupon-portal/internal/domain/coupon"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

// DuplicateEmailMessage is the server message for an email that already holds a coupon.
const DuplicateEmailMessage = "coupon with this email already exists"

// CouponRequest is built fresh from the form values for every submission attempt.
type CouponRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CampaignCode string `json:"campaignCode"`
}

// GenerateOutcome is a response that reached the portal without a transport or HTTP error.
// Coupon is only set for 201 Created.
type GenerateOutcome struct {
	StatusCode int
	Coupon     *coupon.Coupon
}

// CouponGateway talks to the remote coupon service.
//
// Network failures and non-2xx responses are reported as *RemoteError. Any other error
// (an undecodable 201 body, for instance) is unexpected.
type CouponGateway interface {
	ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error)
	GenerateCoupon(ctx context.Context, req CouponRequest) (*GenerateOutcome, error)
}

// RemoteError is a transport or HTTP-level failure. StatusCode is 0 when no response
// was received; Message is the server's "message" field when present.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return "coupon service request failed: " + e.Err.Error()
	case e.Message != "":
		return fmt.Sprintf("coupon service responded %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("coupon service responded %d", e.StatusCode)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsDuplicateEmail ignores case and surrounding space; the service has sent the message
// capitalised in the past.
func (e *RemoteError) IsDuplicateEmail() bool {
	return strings.EqualFold(strings.TrimSpace(e.Message), DuplicateEmailMessage)
}

// Document is a rendered coupon PDF ready to be sent to the visitor.
type Document struct {
	FileName    string
	Data        []byte
	WithArtwork bool
}

// DocumentRenderer turns an issued coupon into its PDF. It blocks until the document is
// saved or ctx is done.
type DocumentRenderer interface {
	RenderDocument(ctx context.Context, c *coupon.Coupon) (*Document, error)
}

package coupon

import (
	"errors"
	"strings"
	"time"

	"coupon-portal/internal/pkg/localedate"
)

var (
	ErrEmptyCouponCode       = errors.New("coupon code cannot be empty")
	ErrInvalidDiscountAmount = errors.New("discount amount cannot be negative")
)

// Terms is the campaign snapshot the coupon service returns with an issued coupon.
type Terms struct {
	ID             string
	CampaignCode   string
	CourseName     string
	DiscountAmount int
	// ExpirationDate is the raw ISO-8601 value from the service.
	ExpirationDate string
}

// Coupon is the issued coupon held by a workflow until the visitor dismisses it.
type Coupon struct {
	code  Code
	name  string
	email string
	phone string
	terms Terms
}

func NewCoupon(code, name, email, phone string, terms Terms) (*Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCouponCode
	}
	if terms.DiscountAmount < 0 {
		return nil, ErrInvalidDiscountAmount
	}
	return &Coupon{
		code:  Code(code),
		name:  name,
		email: email,
		phone: phone,
		terms: terms,
	}, nil
}

// Artwork is a pure function of the discount amount.
func (c *Coupon) Artwork() ArtworkBucket {
	return BucketFor(c.terms.DiscountAmount)
}

// DiscountLabel renders the amount the way it is printed on the coupon, e.g. "150€".
func (c *Coupon) DiscountLabel() string {
	return FormatAmount(c.terms.DiscountAmount)
}

// ExpiresAt reports false when the service sent a date that cannot be parsed.
func (c *Coupon) ExpiresAt() (time.Time, bool) {
	return localedate.Parse(c.terms.ExpirationDate)
}

// FileName is the download name of the coupon document.
func (c *Coupon) FileName() string {
	return c.code.String() + "_cupon.pdf"
}

func (c *Coupon) Code() Code     { return c.code }
func (c *Coupon) Name() string   { return c.name }
func (c *Coupon) Email() string  { return c.email }
func (c *Coupon) Phone() string  { return c.phone }
func (c *Coupon) Terms() Terms   { return c.terms }
func (c *Coupon) Amount() int    { return c.terms.DiscountAmount }
func (c *Coupon) Course() string { return c.terms.CourseName }

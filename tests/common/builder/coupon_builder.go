//go:build unit || e2e

package builder

import (
	"net/http"

	"coupon-portal/internal/domain/campaign"
	"coupon-portal/internal/domain/coupon"
	"coupon-portal/internal/usecase"
)

type CouponBuilder struct {
	CouponCode     string
	Name           string
	Email          string
	Phone          string
	CampaignID     string
	CampaignCode   string
	CourseName     string
	DiscountAmount int
	ExpirationDate string
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		CouponCode:     "X1",
		Name:           "Ana",
		Email:          "a@b.com",
		Phone:          "123",
		CampaignID:     "cmp-1",
		CampaignCode:   "A",
		CourseName:     "Course A",
		DiscountAmount: 150,
		ExpirationDate: "2025-12-31",
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithAmount(amount int) *CouponBuilder {
	b.DiscountAmount = amount
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	c, err := coupon.NewCoupon(b.CouponCode, b.Name, b.Email, b.Phone, coupon.Terms{
		ID:             b.CampaignID,
		CampaignCode:   b.CampaignCode,
		CourseName:     b.CourseName,
		DiscountAmount: b.DiscountAmount,
		ExpirationDate: b.ExpirationDate,
	})
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CouponBuilder) BuildOutcome() *usecase.GenerateOutcome {
	return &usecase.GenerateOutcome{
		StatusCode: http.StatusCreated,
		Coupon:     b.BuildDomain(),
	}
}

// BuildResponseBody is the JSON the remote service answers with on 201.
func (b *CouponBuilder) BuildResponseBody() map[string]any {
	return map[string]any{
		"couponCode": b.CouponCode,
		"name":       b.Name,
		"email":      b.Email,
		"phone":      b.Phone,
		"campaign": map[string]any{
			"id":             b.CampaignID,
			"campaignCode":   b.CampaignCode,
			"courseName":     b.CourseName,
			"discountAmount": b.DiscountAmount,
			"expirationDate": b.ExpirationDate,
		},
	}
}

// BuildRequest is the submission that produces this coupon.
func (b *CouponBuilder) BuildRequest() usecase.CouponRequest {
	return usecase.CouponRequest{
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		CampaignCode: b.CampaignCode,
	}
}

func NewCampaigns(pairs ...string) []*campaign.Campaign {
	out := make([]*campaign.Campaign, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		c, err := campaign.NewCampaign(pairs[i], pairs[i+1])
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

package couponapi

import (
	"coupon-portal/internal/domain/campaign"
	"coupon-portal/internal/domain/coupon"
)

type campaignDTO struct {
	CampaignCode string `json:"campaignCode"`
	CourseName   string `json:"courseName"`
}

type couponTermsDTO struct {
	ID             string `json:"id"`
	CampaignCode   string `json:"campaignCode"`
	CourseName     string `json:"courseName"`
	DiscountAmount int    `json:"discountAmount"`
	ExpirationDate string `json:"expirationDate"`
}

type couponDTO struct {
	CouponCode string         `json:"couponCode"`
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	Phone      string         `json:"phone"`
	Campaign   couponTermsDTO `json:"campaign"`
}

type errorBodyDTO struct {
	Message string `json:"message"`
}

func (d campaignDTO) toDomain() (*campaign.Campaign, error) {
	return campaign.NewCampaign(d.CampaignCode, d.CourseName)
}

func (d couponDTO) toDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(d.CouponCode, d.Name, d.Email, d.Phone, coupon.Terms{
		ID:             d.Campaign.ID,
		CampaignCode:   d.Campaign.CampaignCode,
		CourseName:     d.Campaign.CourseName,
		DiscountAmount: d.Campaign.DiscountAmount,
		ExpirationDate: d.Campaign.ExpirationDate,
	})
}

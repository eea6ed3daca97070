package request

import (
	"coupon-portal/internal/domain/form"
)

type EditFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (r EditFieldRequest) ToDomain() (form.Field, error) {
	return form.ParseField(r.Field)
}

// CouponFormRequest is the urlencoded body of the HTML form. Missing inputs bind as empty.
type CouponFormRequest struct {
	Name         string `form:"name"`
	Email        string `form:"email"`
	Phone        string `form:"phone"`
	CampaignCode string `form:"campaignCode"`
}

func (r CouponFormRequest) ToValues() form.Values {
	return form.Values{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		CampaignCode: r.CampaignCode,
	}
}

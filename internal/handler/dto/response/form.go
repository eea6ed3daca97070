package response

import (
	"coupon-portal/internal/handler/presenter"

	"github.com/jinzhu/copier"
)

type CampaignResponse struct {
	Code       string `json:"campaignCode"`
	CourseName string `json:"courseName"`
	Selected   bool   `json:"selected"`
}

type ConfirmationResponse struct {
	Heading       string `json:"heading"`
	Name          string `json:"name"`
	DiscountLabel string `json:"discountLabel"`
	CouponCode    string `json:"couponCode"`
	ExpiresOn     string `json:"expiresOn"`
	Email         string `json:"email"`
	ArtworkBucket string `json:"artworkBucket"`
	ArtworkURL    string `json:"artworkUrl"`
	DownloadURL   string `json:"downloadUrl"`
}

type FormStateResponse struct {
	Phase             string                `json:"phase"`
	Name              string                `json:"name"`
	Email             string                `json:"email"`
	Phone             string                `json:"phone"`
	CampaignCode      string                `json:"campaignCode"`
	FieldErrors       map[string]string     `json:"fieldErrors"`
	Banner            string                `json:"banner,omitempty"`
	InFlight          bool                  `json:"inFlight"`
	SubmitLabel       string                `json:"submitLabel"`
	CampaignsLoading  bool                  `json:"campaignsLoading"`
	SelectPlaceholder string                `json:"selectPlaceholder"`
	Campaigns         []CampaignResponse    `json:"campaigns"`
	TermsNotice       string                `json:"termsNotice"`
	Confirmation      *ConfirmationResponse `json:"confirmation,omitempty" copier:"-"`
}

// FromFormView maps the page view to the JSON body. downloadURL is attached to the
// confirmation when there is one.
func FromFormView(v presenter.Form, downloadURL string) (*FormStateResponse, error) {
	res := &FormStateResponse{}
	if err := copier.CopyWithOption(res, &v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.FieldErrors == nil {
		res.FieldErrors = map[string]string{}
	}
	if res.Campaigns == nil {
		res.Campaigns = []CampaignResponse{}
	}

	if v.Confirmation != nil {
		conf := &ConfirmationResponse{}
		if err := copier.Copy(conf, v.Confirmation); err != nil {
			return nil, err
		}
		conf.DownloadURL = downloadURL
		res.Confirmation = conf
	}
	return res, nil
}

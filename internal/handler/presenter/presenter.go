package presenter

import (
	"strings"

	"coupon-portal/internal/pkg/localedate"
	"coupon-portal/internal/usecase"
)

const (
	SubmitLabel       = "Request coupon"
	SubmittingLabel   = "Generating coupon..."
	SelectPlaceholder = "select a course"
	LoadingCourses    = "loading courses..."
	TermsNotice       = "By requesting a coupon you accept the terms of use and the privacy policy. " +
		"We will only use your details to send you information about the selected course."
)

type CampaignOption struct {
	Code       string
	CourseName string
	Selected   bool
}

// Confirmation is the modal shown after a coupon was issued.
type Confirmation struct {
	Heading       string
	Name          string
	DiscountLabel string
	CouponCode    string
	ExpiresOn     string
	Email         string
	ArtworkBucket string
	ArtworkURL    string
}

// Form is everything the page needs to draw the form for one snapshot.
type Form struct {
	Phase             string
	Name              string
	Email             string
	Phone             string
	CampaignCode      string
	FieldErrors       map[string]string
	Banner            string
	InFlight          bool
	SubmitLabel       string
	BusyLabel         string
	CampaignsLoading  bool
	SelectPlaceholder string
	Campaigns         []CampaignOption
	TermsNotice       string
	Confirmation      *Confirmation
}

type Presenter struct {
	dates *localedate.Formatter
}

func NewPresenter(dates *localedate.Formatter) *Presenter {
	return &Presenter{dates: dates}
}

// Confirmation is nil unless the snapshot holds an issued coupon.
func (p *Presenter) Confirmation(snap usecase.Snapshot) *Confirmation {
	c := snap.Result
	if c == nil {
		return nil
	}

	name := strings.ToUpper(c.Name())
	expires := c.Terms().ExpirationDate
	if t, ok := c.ExpiresAt(); ok {
		expires = p.dates.Long(t)
	}
	bucket := c.Artwork().String()

	return &Confirmation{
		Heading:       "Congratulations, " + name + "!",
		Name:          name,
		DiscountLabel: c.DiscountLabel(),
		CouponCode:    c.Code().String(),
		ExpiresOn:     expires,
		Email:         c.Email(),
		ArtworkBucket: bucket,
		ArtworkURL:    "/artwork/" + bucket,
	}
}

func (p *Presenter) Form(snap usecase.Snapshot) Form {
	f := Form{
		Phase:             string(snap.Phase),
		Name:              snap.Values.Name,
		Email:             snap.Values.Email,
		Phone:             snap.Values.Phone,
		CampaignCode:      snap.Values.CampaignCode,
		FieldErrors:       snap.FieldErrors.StringMap(),
		Banner:            snap.Banner,
		InFlight:          snap.InFlight,
		SubmitLabel:       SubmitLabel,
		BusyLabel:         SubmittingLabel,
		CampaignsLoading:  snap.CampaignsLoading,
		SelectPlaceholder: SelectPlaceholder,
		TermsNotice:       TermsNotice,
		Confirmation:      p.Confirmation(snap),
	}
	if snap.InFlight {
		f.SubmitLabel = SubmittingLabel
	}
	if snap.CampaignsLoading {
		f.SelectPlaceholder = LoadingCourses
	}

	f.Campaigns = make([]CampaignOption, 0, len(snap.Campaigns))
	for _, c := range snap.Campaigns {
		f.Campaigns = append(f.Campaigns, CampaignOption{
			Code:       c.Code(),
			CourseName: c.CourseName(),
			Selected:   c.Code() == snap.Values.CampaignCode,
		})
	}
	return f
}

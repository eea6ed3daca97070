//go:build unit

package presenter_test

import (
	"testing"

	"coupon-portal/internal/domain/form"
	"coupon-portal/internal/handler/presenter"
	"coupon-portal/internal/pkg/localedate"
	"coupon-portal/internal/usecase"
	"coupon-portal/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmation(t *testing.T) {
	p := presenter.NewPresenter(localedate.NewFormatter("es-ES"))

	t.Run("nothing without a result", func(t *testing.T) {
		assert.Nil(t, p.Confirmation(usecase.Snapshot{Phase: usecase.PhaseIdle}))
	})

	t.Run("issued coupon", func(t *testing.T) {
		snap := usecase.Snapshot{
			Phase:  usecase.PhaseSuccess,
			Result: builder.NewCouponBuilder().BuildDomain(),
		}

		got := p.Confirmation(snap)

		want := &presenter.Confirmation{
			Heading:       "Congratulations, ANA!",
			Name:          "ANA",
			DiscountLabel: "150€",
			CouponCode:    "X1",
			ExpiresOn:     "31 de diciembre de 2025",
			Email:         "a@b.com",
			ArtworkBucket: "150",
			ArtworkURL:    "/artwork/150",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("confirmation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("artwork bucket follows the discount", func(t *testing.T) {
		for amount, bucket := range map[int]string{100: "100", 150: "150", 200: "200", 999: "100"} {
			snap := usecase.Snapshot{Result: builder.NewCouponBuilder().WithAmount(amount).BuildDomain()}
			assert.Equal(t, bucket, p.Confirmation(snap).ArtworkBucket, "amount %d", amount)
		}
	})

	t.Run("unparseable expiration is shown as sent", func(t *testing.T) {
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ExpirationDate = "soon"
		}).BuildDomain()

		got := p.Confirmation(usecase.Snapshot{Result: c})

		assert.Equal(t, "soon", got.ExpiresOn)
	})
}

func TestForm(t *testing.T) {
	p := presenter.NewPresenter(localedate.NewFormatter("es-ES"))

	t.Run("loading catalog", func(t *testing.T) {
		got := p.Form(usecase.Snapshot{Phase: usecase.PhaseIdle, CampaignsLoading: true})

		assert.Equal(t, presenter.LoadingCourses, got.SelectPlaceholder)
		assert.Empty(t, got.Campaigns)
		assert.Nil(t, got.Confirmation)
		assert.Equal(t, presenter.TermsNotice, got.TermsNotice)
	})

	t.Run("in flight disables with the generating label", func(t *testing.T) {
		got := p.Form(usecase.Snapshot{Phase: usecase.PhaseSubmitting, InFlight: true})

		assert.True(t, got.InFlight)
		assert.Equal(t, presenter.SubmittingLabel, got.SubmitLabel)
	})

	t.Run("values, errors and options in fetch order", func(t *testing.T) {
		snap := usecase.Snapshot{
			Phase:       usecase.PhaseIdle,
			Values:      form.Values{Name: "Ana", Email: "bad", CampaignCode: "A"},
			FieldErrors: form.Errors{form.FieldEmail: form.MsgEmailInvalid},
			Banner:      usecase.MsgSubmissionFailed,
			Campaigns:   builder.NewCampaigns("B", "Course B", "A", "Course A"),
		}

		got := p.Form(snap)

		require.Len(t, got.Campaigns, 2)
		assert.Equal(t, []presenter.CampaignOption{
			{Code: "B", CourseName: "Course B"},
			{Code: "A", CourseName: "Course A", Selected: true},
		}, got.Campaigns)
		assert.Equal(t, map[string]string{"email": form.MsgEmailInvalid}, got.FieldErrors)
		assert.Equal(t, usecase.MsgSubmissionFailed, got.Banner)
		assert.Equal(t, presenter.SubmitLabel, got.SubmitLabel)
		assert.Equal(t, presenter.SelectPlaceholder, got.SelectPlaceholder)
		assert.Equal(t, "Ana", got.Name)
	})
}

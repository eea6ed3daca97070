//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"coupon-portal/internal/domain/coupon"
	"coupon-portal/internal/domain/form"
	"coupon-portal/internal/pkg/errs"
	"coupon-portal/internal/usecase"
	"coupon-portal/tests/common/builder"
	usecasemock "coupon-portal/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponDocumentsDownload(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := builder.NewCouponBuilder()

	issued := func(t *testing.T, ctrl *gomock.Controller) *usecase.Workflow {
		t.Helper()
		gateway := usecasemock.NewMockCouponGateway(ctrl)
		gateway.EXPECT().GenerateCoupon(gomock.Any(), gomock.Any()).Return(b.BuildOutcome(), nil)
		wf := usecase.NewWorkflow(gateway, logger)
		wf.EditField(form.FieldName, b.Name)
		wf.EditField(form.FieldEmail, b.Email)
		wf.EditField(form.FieldPhone, b.Phone)
		wf.EditField(form.FieldCampaign, b.CampaignCode)
		snap, err := wf.Submit(context.Background())
		require.NoError(t, err)
		require.Equal(t, usecase.PhaseSuccess, snap.Phase)
		return wf
	}

	t.Run("success: renders the workflow's coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := usecasemock.NewMockDocumentRenderer(ctrl)
		wf := issued(t, ctrl)
		want := &usecase.Document{FileName: "X1_cupon.pdf", Data: []byte("%PDF-1.3"), WithArtwork: true}
		renderer.EXPECT().
			RenderDocument(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *coupon.Coupon) (*usecase.Document, error) {
				assert.Equal(t, "X1", c.Code().String())
				return want, nil
			})

		got, err := usecase.NewCouponDocuments(renderer, logger).Download(context.Background(), wf)

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("error: nothing to download without a result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := usecasemock.NewMockDocumentRenderer(ctrl)
		renderer.EXPECT().RenderDocument(gomock.Any(), gomock.Any()).Times(0)
		wf := usecase.NewWorkflow(usecasemock.NewMockCouponGateway(ctrl), logger)

		_, err := usecase.NewCouponDocuments(renderer, logger).Download(context.Background(), wf)

		assert.True(t, errs.Is(err, errs.ErrNoCouponResult))
	})

	t.Run("error: dismissed result cannot be downloaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := usecasemock.NewMockDocumentRenderer(ctrl)
		renderer.EXPECT().RenderDocument(gomock.Any(), gomock.Any()).Times(0)
		wf := issued(t, ctrl)
		_, err := wf.Reset()
		require.NoError(t, err)

		_, err = usecase.NewCouponDocuments(renderer, logger).Download(context.Background(), wf)

		assert.True(t, errs.Is(err, errs.ErrNoCouponResult))
	})

	t.Run("error: renderer failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := usecasemock.NewMockDocumentRenderer(ctrl)
		wf := issued(t, ctrl)
		boom := errors.New("boom")
		renderer.EXPECT().RenderDocument(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := usecase.NewCouponDocuments(renderer, logger).Download(context.Background(), wf)

		assert.ErrorIs(t, err, boom)
	})
}

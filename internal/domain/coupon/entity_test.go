//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"coupon-portal/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerms(amount int) coupon.Terms {
	return coupon.Terms{
		ID:             "c-1",
		CampaignCode:   "A",
		CourseName:     "Course A",
		DiscountAmount: amount,
		ExpirationDate: "2025-12-31",
	}
}

func TestBucketFor(t *testing.T) {
	cases := []struct {
		amount int
		want   coupon.ArtworkBucket
	}{
		{amount: 100, want: coupon.Bucket100},
		{amount: 150, want: coupon.Bucket150},
		{amount: 200, want: coupon.Bucket200},
		{amount: 999, want: coupon.Bucket100},
		{amount: 0, want: coupon.Bucket100},
		{amount: 199, want: coupon.Bucket100},
	}
	for _, tc := range cases {
		t.Run(coupon.FormatAmount(tc.amount), func(t *testing.T) {
			assert.Equal(t, tc.want, coupon.BucketFor(tc.amount))
			// same input, same bucket
			assert.Equal(t, coupon.BucketFor(tc.amount), coupon.BucketFor(tc.amount))
		})
	}
}

func TestParseBucket(t *testing.T) {
	b, err := coupon.ParseBucket("150")
	require.NoError(t, err)
	assert.Equal(t, coupon.Bucket150, b)

	for _, raw := range []string{"", "abc", "120", "999"} {
		_, err := coupon.ParseBucket(raw)
		assert.ErrorIs(t, err, coupon.ErrUnknownArtworkBucket, raw)
	}
}

func TestNewCoupon(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, err := coupon.NewCoupon("X1", "Ana", "a@b.com", "123", newTerms(150))
		require.NoError(t, err)

		assert.Equal(t, coupon.Code("X1"), c.Code())
		assert.Equal(t, "150€", c.DiscountLabel())
		assert.Equal(t, coupon.Bucket150, c.Artwork())
		assert.Equal(t, "X1_cupon.pdf", c.FileName())

		exp, ok := c.ExpiresAt()
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), exp)
	})

	t.Run("empty code rejected", func(t *testing.T) {
		_, err := coupon.NewCoupon(" ", "Ana", "a@b.com", "123", newTerms(150))
		assert.ErrorIs(t, err, coupon.ErrEmptyCouponCode)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := coupon.NewCoupon("X1", "Ana", "a@b.com", "123", newTerms(-1))
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)
	})

	t.Run("unparseable expiration date", func(t *testing.T) {
		terms := newTerms(100)
		terms.ExpirationDate = "soon"
		c, err := coupon.NewCoupon("X1", "Ana", "a@b.com", "123", terms)
		require.NoError(t, err)
		_, ok := c.ExpiresAt()
		assert.False(t, ok)
	})
}

//go:build unit

package document_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"coupon-portal/internal/domain/coupon"
	"coupon-portal/internal/infra/artwork"
	"coupon-portal/internal/infra/document"
	"coupon-portal/internal/infra/telemetry"
	"coupon-portal/internal/pkg/async"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/pkg/localedate"
	"coupon-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader hands out futures the test settles by hand.
type stubLoader struct {
	mu       sync.Mutex
	requests []coupon.ArtworkBucket
	futures  []*async.Future[[]byte]
}

func (s *stubLoader) Load(bucket coupon.ArtworkBucket) *async.Future[[]byte] {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := async.NewFuture[[]byte]()
	s.requests = append(s.requests, bucket)
	s.futures = append(s.futures, f)
	return f
}

func (s *stubLoader) last() *async.Future[[]byte] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.futures[len(s.futures)-1]
}

type failingSink struct{}

func (failingSink) Save(string, []byte) error { return errors.New("disk full") }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func embeddedArtwork(t *testing.T, bucket coupon.ArtworkBucket) []byte {
	t.Helper()
	store, err := artwork.NewStore(config.ArtworkConfig{}, discardLogger())
	require.NoError(t, err)
	img, err := store.Bytes(bucket)
	require.NoError(t, err)
	return img
}

func await(t *testing.T, f *async.Future[document.Saved]) (document.Saved, error) {
	t.Helper()
	select {
	case <-f.Done():
		return f.Result()
	case <-time.After(5 * time.Second):
		t.Fatal("render did not finish")
		return document.Saved{}, nil
	}
}

func TestRender(t *testing.T) {
	dates := localedate.NewFormatter("es-ES")

	t.Run("success: saves once with artwork for the coupon bucket", func(t *testing.T) {
		loader := &stubLoader{}
		sink := document.NewMemorySink()
		r := document.NewRenderer(loader, dates, telemetry.NewNoopMetrics(), discardLogger())
		c := builder.NewCouponBuilder().WithAmount(200).BuildDomain()

		fut := r.Render(c, sink)
		require.Equal(t, []coupon.ArtworkBucket{coupon.Bucket200}, loader.requests)
		loader.last().Resolve(embeddedArtwork(t, coupon.Bucket200))

		saved, err := await(t, fut)
		require.NoError(t, err)
		assert.Equal(t, "X1_cupon.pdf", saved.FileName)
		assert.True(t, saved.WithArtwork)
		assert.Equal(t, 1, sink.Saves())

		name, data := sink.Document()
		assert.Equal(t, "X1_cupon.pdf", name)
		assert.Equal(t, saved.Size, len(data))
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		assert.Contains(t, string(data), "/Subtype /Image")
	})

	t.Run("artwork that never loads means nothing is saved", func(t *testing.T) {
		loader := &stubLoader{}
		sink := document.NewMemorySink()
		r := document.NewRenderer(loader, dates, telemetry.NewNoopMetrics(), discardLogger())

		fut := r.Render(builder.NewCouponBuilder().BuildDomain(), sink)

		select {
		case <-fut.Done():
			t.Fatal("render finished without artwork")
		case <-time.After(100 * time.Millisecond):
		}
		assert.Zero(t, sink.Saves())
	})

	t.Run("failed artwork load still saves the text document", func(t *testing.T) {
		loader := &stubLoader{}
		sink := document.NewMemorySink()
		r := document.NewRenderer(loader, dates, telemetry.NewNoopMetrics(), discardLogger())

		fut := r.Render(builder.NewCouponBuilder().BuildDomain(), sink)
		loader.last().Reject(errors.New("missing"))

		saved, err := await(t, fut)
		require.NoError(t, err)
		assert.False(t, saved.WithArtwork)
		assert.Equal(t, 1, sink.Saves())

		_, data := sink.Document()
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		assert.NotContains(t, string(data), "/Subtype /Image")
	})

	t.Run("undecodable artwork falls back to text only", func(t *testing.T) {
		loader := &stubLoader{}
		sink := document.NewMemorySink()
		r := document.NewRenderer(loader, dates, telemetry.NewNoopMetrics(), discardLogger())

		fut := r.Render(builder.NewCouponBuilder().BuildDomain(), sink)
		loader.last().Resolve([]byte("not a png"))

		saved, err := await(t, fut)
		require.NoError(t, err)
		assert.False(t, saved.WithArtwork)
		assert.Equal(t, 1, sink.Saves())
	})

	t.Run("error: sink failure rejects the render", func(t *testing.T) {
		loader := &stubLoader{}
		r := document.NewRenderer(loader, dates, telemetry.NewNoopMetrics(), discardLogger())

		fut := r.Render(builder.NewCouponBuilder().BuildDomain(), failingSink{})
		loader.last().Resolve(embeddedArtwork(t, coupon.Bucket150))

		_, err := await(t, fut)
		assert.ErrorContains(t, err, "disk full")
	})

	t.Run("two renders of the same coupon both save", func(t *testing.T) {
		loader := &stubLoader{}
		sink := document.NewMemorySink()
		r := document.NewRenderer(loader, dates, telemetry.NewNoopMetrics(), discardLogger())
		c := builder.NewCouponBuilder().BuildDomain()
		img := embeddedArtwork(t, coupon.Bucket150)

		first := r.Render(c, sink)
		loader.last().Resolve(img)
		second := r.Render(c, sink)
		loader.last().Resolve(img)

		_, err := await(t, first)
		require.NoError(t, err)
		_, err = await(t, second)
		require.NoError(t, err)
		assert.Equal(t, 2, sink.Saves())
	})
}

func TestRenderDocument(t *testing.T) {
	dates := localedate.NewFormatter("es-ES")

	t.Run("success: returns the saved pdf", func(t *testing.T) {
		loader := &stubLoader{}
		r := document.NewRenderer(loader, dates, telemetry.NewNoopMetrics(), discardLogger())
		c := builder.NewCouponBuilder().BuildDomain()
		img := embeddedArtwork(t, coupon.Bucket150)

		go func() {
			for {
				loader.mu.Lock()
				n := len(loader.futures)
				loader.mu.Unlock()
				if n > 0 {
					loader.last().Resolve(img)
					return
				}
				time.Sleep(time.Millisecond)
			}
		}()

		doc, err := r.RenderDocument(context.Background(), c)

		require.NoError(t, err)
		assert.Equal(t, "X1_cupon.pdf", doc.FileName)
		assert.True(t, doc.WithArtwork)
		assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
	})

	t.Run("error: context ends the wait when artwork never loads", func(t *testing.T) {
		r := document.NewRenderer(&stubLoader{}, dates, telemetry.NewNoopMetrics(), discardLogger())
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		doc, err := r.RenderDocument(ctx, builder.NewCouponBuilder().BuildDomain())

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

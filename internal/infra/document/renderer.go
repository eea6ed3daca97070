package document

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"coupon-portal/internal/domain/coupon"
	"coupon-portal/internal/infra/telemetry"
	"coupon-portal/internal/pkg/async"
	"coupon-portal/internal/pkg/errs"
	"coupon-portal/internal/pkg/localedate"

	"github.com/go-pdf/fpdf"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ImageLoader loads artwork asynchronously. A future that never settles means the
// document is never saved.
type ImageLoader interface {
	Load(bucket coupon.ArtworkBucket) *async.Future[[]byte]
}

// Saved describes a document that reached its sink.
type Saved struct {
	FileName    string
	Size        int
	WithArtwork bool
}

// artwork placement in mm
const (
	artX = 10
	artY = 90
	artW = 180
	artH = 100
)

// Renderer builds the coupon PDF in two phases: text is written synchronously, then the
// artwork load continues the pipeline and performs the single save.
//
// Each Render call is independent. Two renders of the same coupon started back to back both
// run to completion and both save; nothing serializes them.
type Renderer struct {
	loader  ImageLoader
	dates   *localedate.Formatter
	metrics *telemetry.Metrics
	log     *slog.Logger
}

func NewRenderer(loader ImageLoader, dates *localedate.Formatter, metrics *telemetry.Metrics, log *slog.Logger) *Renderer {
	return &Renderer{loader: loader, dates: dates, metrics: metrics, log: log}
}

func (r *Renderer) Render(c *coupon.Coupon, sink Sink) *async.Future[Saved] {
	doc := r.writeText(c)
	done := async.NewFuture[Saved]()
	bucket := c.Artwork()

	r.loader.Load(bucket).Then(
		func(img []byte) {
			withArtwork := embedArtwork(doc, bucket, img)
			if !withArtwork {
				r.log.Error("failed to embed artwork, saving document without it",
					"coupon_code", c.Code().String(), "bucket", bucket.String(), "error", doc.Error())
				// a failed image registration poisons the document, so start over
				doc = r.writeText(c)
			}
			r.persist(doc, c, sink, withArtwork, done)
		},
		func(err error) {
			r.log.Error("failed to load artwork, saving document without it",
				"coupon_code", c.Code().String(), "bucket", bucket.String(), "error", err)
			r.persist(doc, c, sink, false, done)
		},
	)
	return done
}

func (r *Renderer) writeText(c *coupon.Coupon) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Coupon "+c.Code().String(), true)
	doc.AddPage()
	// core fonts are cp1252; the translator covers accents and the euro sign
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "", 20)
	doc.Text(10, 20, tr("COUPON FOR "+strings.ToUpper(c.Name())))

	doc.SetFontSize(12)
	doc.Text(10, 30, tr("Name: "+c.Name()))
	doc.Text(10, 35, tr("Email: "+c.Email()))
	doc.Text(10, 40, tr("Phone: "+c.Phone()))
	doc.Text(10, 45, tr("Course of interest: "+c.Course()))
	doc.Text(10, 50, tr("Coupon value: "+c.DiscountLabel()))

	doc.SetFontSize(14)
	doc.Text(10, 60, tr("Coupon code:"))
	doc.SetFontSize(20)
	doc.SetTextColor(75, 0, 130)
	doc.Text(10, 70, tr(c.Code().String()))

	doc.SetFontSize(12)
	doc.SetTextColor(0, 0, 0)
	doc.Text(10, 80, tr("Valid until: "+r.expiration(c)))

	return doc
}

func (r *Renderer) expiration(c *coupon.Coupon) string {
	t, ok := c.ExpiresAt()
	if !ok {
		return c.Terms().ExpirationDate
	}
	return r.dates.Short(t)
}

func embedArtwork(doc *fpdf.Fpdf, bucket coupon.ArtworkBucket, img []byte) bool {
	name := "artwork-" + bucket.String()
	opts := fpdf.ImageOptions{ImageType: "PNG"}

	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
	if doc.Err() {
		return false
	}
	doc.ImageOptions(name, artX, artY, artW, artH, false, opts, 0, "")
	return !doc.Err()
}

func (r *Renderer) persist(doc *fpdf.Fpdf, c *coupon.Coupon, sink Sink, withArtwork bool, done *async.Future[Saved]) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		done.Reject(errs.Wrap(err, "write pdf"))
		return
	}

	name := c.FileName()
	if err := sink.Save(name, buf.Bytes()); err != nil {
		done.Reject(errs.Wrapf(err, "save %s", name))
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("with_artwork", withArtwork))
	r.metrics.DocumentsRendered.Add(context.Background(), 1, attrs)
	if !withArtwork {
		r.metrics.ArtworkFallbacks.Add(context.Background(), 1)
	}

	r.log.Info("coupon document saved",
		"coupon_code", c.Code().String(), "file", name, "size", buf.Len(), "with_artwork", withArtwork)
	done.Resolve(Saved{FileName: name, Size: buf.Len(), WithArtwork: withArtwork})
}

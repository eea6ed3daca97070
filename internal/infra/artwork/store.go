package artwork

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"coupon-portal/internal/domain/coupon"
	"coupon-portal/internal/pkg/async"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/pkg/errs"
)

//go:embed assets/*.png
var embedded embed.FS

// Store serves the three static artwork images, one per bucket.
type Store struct {
	fsys fs.FS
	log  *slog.Logger
}

func NewStore(cfg config.ArtworkConfig, log *slog.Logger) (*Store, error) {
	if cfg.Dir != "" {
		if _, err := os.Stat(cfg.Dir); err != nil {
			return nil, errs.Wrapf(err, "artwork dir %q", cfg.Dir)
		}
		log.Info("using artwork override directory", "dir", cfg.Dir)
		return NewStoreFS(os.DirFS(cfg.Dir), log), nil
	}

	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return nil, errs.Wrap(err, "embedded artwork")
	}
	return NewStoreFS(sub, log), nil
}

func NewStoreFS(fsys fs.FS, log *slog.Logger) *Store {
	return &Store{fsys: fsys, log: log}
}

func FileName(bucket coupon.ArtworkBucket) string {
	return "coupon_" + bucket.String() + ".png"
}

// Bytes reads the bucket's image synchronously.
func (s *Store) Bytes(bucket coupon.ArtworkBucket) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, FileName(bucket))
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "artwork %s", bucket), errs.ErrArtworkNotFound)
	}
	return data, nil
}

// Load reads the image on its own goroutine; the future settles once, with the bytes or
// the read error.
func (s *Store) Load(bucket coupon.ArtworkBucket) *async.Future[[]byte] {
	f := async.NewFuture[[]byte]()
	go func() {
		data, err := s.Bytes(bucket)
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(data)
	}()
	return f
}

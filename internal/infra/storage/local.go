package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"smartwash/internal/pkg/config"
	"smartwash/internal/pkg/errs"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const thumbWidth = 300

var ErrNotImage = errs.New("uploaded file is not a decodable image")

// LocalStore keeps payment screenshots on disk under BaseDir and serves them
// through the router's static /uploads route.
type LocalStore struct {
	baseDir   string
	publicURL string
}

func NewLocalStore(cfg config.StorageConfig) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(cfg.BaseDir, "screenshots"), 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to prepare storage directory")
	}
	return &LocalStore{baseDir: cfg.BaseDir, publicURL: cfg.PublicURL}, nil
}

// SaveScreenshot decodes the upload, writes the original plus a fixed-width
// thumbnail, and returns the public URL of the original.
func (s *LocalStore) SaveScreenshot(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", errs.Mark(err, ErrNotImage)
	}

	name := uuid.New().String() + ".jpg"
	originalPath := filepath.Join(s.baseDir, "screenshots", name)
	thumbPath := filepath.Join(s.baseDir, "screenshots", "thumb_"+name)

	if err := imaging.Save(img, originalPath); err != nil {
		return "", errs.Wrap(err, "failed to save screenshot")
	}

	thumbImg := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbPath); err != nil {
		os.Remove(originalPath)
		return "", errs.Wrap(err, "failed to save thumbnail")
	}

	return s.publicURL + "/screenshots/" + name, nil
}

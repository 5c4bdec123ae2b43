package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Subdirectories under the uploads root, one per image-bearing
// resource. The static file server mirrors this layout at /uploads.
const (
	SubProducts    = "products"
	SubCategories  = "categories"
	SubBanners     = "banners"
	SubSaleBanners = "sale-banners"
	SubProfiles    = "profiles"
)

const maxImageSize = 5 << 20 // 5MB per file

var allowedExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var ErrNotImage = errors.New("only images allowed (jpeg, jpg, png, gif, webp)")
var ErrTooLarge = errors.New("image exceeds 5MB limit")

// Store writes and removes image files under a single uploads root.
// File operations are best-effort relative to database writes; a
// missing file on delete is a no-op.
type Store struct {
	Root string
	log  *zap.Logger
}

func NewStore(root string, log *zap.Logger) *Store {
	return &Store{Root: root, log: log}
}

// SaveImage validates and persists one uploaded file, returning the
// generated filename (not the full path).
func (s *Store) SaveImage(fh *multipart.FileHeader, sub string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", ErrNotImage
	}
	if fh.Size > maxImageSize {
		return "", ErrTooLarge
	}

	dir := filepath.Join(s.Root, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// SaveImages persists up to max files, rolling back the ones already
// written when any single save fails.
func (s *Store) SaveImages(files []*multipart.FileHeader, sub string, max int) ([]string, error) {
	if len(files) > max {
		return nil, fmt.Errorf("maximum %d images allowed", max)
	}
	saved := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := s.SaveImage(fh, sub)
		if err != nil {
			s.RemoveAll(sub, saved)
			return nil, err
		}
		saved = append(saved, name)
	}
	return saved, nil
}

// Remove deletes one stored image. A missing file is silently skipped;
// any other failure is logged, never fatal for the request.
func (s *Store) Remove(sub, name string) {
	if name == "" {
		return
	}
	path := filepath.Join(s.Root, sub, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Error("image remove failed", zap.String("path", path), zap.Error(err))
	}
}

func (s *Store) RemoveAll(sub string, names []string) {
	for _, name := range names {
		s.Remove(sub, name)
	}
}

// RemovePath deletes by a stored URL path like /uploads/profiles/x.png.
func (s *Store) RemovePath(urlPath string) {
	rel := strings.TrimPrefix(urlPath, "/uploads/")
	if rel == "" || rel == urlPath {
		return
	}
	sub, name := filepath.Split(rel)
	s.Remove(strings.Trim(sub, "/"), name)
}

package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	return form.File["image"][0]
}

func TestSaveImage(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())

	name, err := store.SaveImage(fileHeader(t, "photo.PNG", []byte("fake image bytes")), SubProducts)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("expected lowercased .png extension, got %q", name)
	}
	if _, err := os.Stat(filepath.Join(store.Root, SubProducts, name)); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestSaveImageRejectsNonImage(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())

	_, err := store.SaveImage(fileHeader(t, "notes.txt", []byte("hello")), SubProducts)
	if !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestSaveImagesOverLimit(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())

	files := []*multipart.FileHeader{
		fileHeader(t, "a.jpg", []byte("a")),
		fileHeader(t, "b.jpg", []byte("b")),
	}
	if _, err := store.SaveImages(files, SubBanners, 1); err == nil {
		t.Fatal("expected error when exceeding the image limit")
	}
}

func TestRemoveMissingFile(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	// must not panic or log fatally
	store.Remove(SubCategories, "does-not-exist.png")
	store.Remove(SubCategories, "")
}

func TestRemovePath(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())

	dir := filepath.Join(store.Root, SubProfiles)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	store.RemovePath("/uploads/profiles/pic.png")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file removed by its url path")
	}

	// non-upload paths are left alone
	store.RemovePath("/images/user/owner.jpg")
	store.RemovePath("")
}

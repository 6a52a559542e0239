package banner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		stem  string
		scale int
		want  string
	}{
		{"base density", "news/banners/42", 1, "news/banners/42.jpg"},
		{"double density", "news/banners/42", 2, "news/banners/42@2x.jpg"},
		{"bare stem", "banner", 1, "banner.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.stem, tt.scale); got != tt.want {
				t.Errorf("OutputPath(%q, %d) = %q, want %q", tt.stem, tt.scale, got, tt.want)
			}
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news", "banners", "42.jpg")

	if err := EncodeJPEG(gradientImage(670, 200), path); err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}

	img := decodeOutput(t, path)
	if img.Bounds().Dx() != 670 || img.Bounds().Dy() != 200 {
		t.Errorf("decoded output is %dx%d, want 670x200", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestEncodeJPEGParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "banners")
	if err := os.WriteFile(blocker, []byte("in the way"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := EncodeJPEG(gradientImage(10, 10), filepath.Join(blocker, "42.jpg"))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

package utils

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDeriveTitleFromFilename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"id prefix", "1971987 - Camellia - GHOST.png", "Camellia GHOST"},
		{"underscores", "some_artist_some_song.jpg", "some artist some song"},
		{"hyphens", "artist-song-cut-ver.png", "artist song cut ver"},
		{"nested path", filepath.Join("rounds", "bg", "42_Artist_Song.png"), "Artist Song"},
		{"plain", "Title.png", "Title"},
		{"no separator after digits", "123456.png", "123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTitleFromFilename(tt.path); got != tt.want {
				t.Errorf("DeriveTitleFromFilename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestValidateImageFile(t *testing.T) {
	dir := t.TempDir()

	imgPath := filepath.Join(dir, "bg.png")
	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	f.Close()

	textPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(textPath, []byte("not an image at all"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := ValidateImageFile(imgPath); err != nil {
		t.Errorf("valid png rejected: %v", err)
	}

	if err := ValidateImageFile(textPath); err == nil || !strings.Contains(err.Error(), "not an image") {
		t.Errorf("text file accepted: %v", err)
	}

	missing := filepath.Join(dir, "nope.png")
	if err := ValidateImageFile(missing); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("missing file accepted: %v", err)
	}
}

package banner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRegisterDefault(t *testing.T) {
	fonts := NewFontRegistry()

	family, err := fonts.RegisterDefault()
	if err != nil {
		t.Fatalf("RegisterDefault: %v", err)
	}
	if family == "" {
		t.Fatal("RegisterDefault returned an empty family name")
	}
	if !fonts.Has(family) {
		t.Errorf("Has(%q) = false after registration", family)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	fonts := NewFontRegistry()

	first, err := fonts.RegisterBytes(goregular.TTF)
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	second, err := fonts.RegisterBytes(goregular.TTF)
	if err != nil {
		t.Fatalf("second registration of the same font errored: %v", err)
	}
	if first != second {
		t.Errorf("family changed between registrations: %q vs %q", first, second)
	}
}

func TestRegisterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "title.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatalf("write font fixture: %v", err)
	}

	fonts := NewFontRegistry()
	family, err := fonts.RegisterFile(path)
	if err != nil {
		t.Fatalf("RegisterFile: %v", err)
	}
	if !fonts.Has(family) {
		t.Errorf("Has(%q) = false after file registration", family)
	}
}

func TestRegisterErrors(t *testing.T) {
	fonts := NewFontRegistry()

	t.Run("missing file", func(t *testing.T) {
		_, err := fonts.RegisterFile(filepath.Join(t.TempDir(), "nope.ttf"))
		if !errors.Is(err, ErrAssetIO) {
			t.Errorf("expected ErrAssetIO, got %v", err)
		}
	})

	t.Run("not a font", func(t *testing.T) {
		_, err := fonts.RegisterBytes([]byte("definitely not a font"))
		if !errors.Is(err, ErrAssetIO) {
			t.Errorf("expected ErrAssetIO, got %v", err)
		}
	})
}

func TestFace(t *testing.T) {
	fonts := NewFontRegistry()
	family, err := fonts.RegisterDefault()
	if err != nil {
		t.Fatalf("RegisterDefault: %v", err)
	}

	face, err := fonts.Face(family, 21)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if w := font.MeasureString(face, "Artist - Song"); w <= 0 {
		t.Errorf("face measures %v for a non-empty string", w)
	}

	larger, err := fonts.Face(family, 42)
	if err != nil {
		t.Fatalf("Face at 42px: %v", err)
	}
	small := font.MeasureString(face, "Artist - Song")
	big := font.MeasureString(larger, "Artist - Song")
	if big <= small {
		t.Errorf("42px advance %v not larger than 21px advance %v", big, small)
	}
}

func TestFaceUnknownFamily(t *testing.T) {
	fonts := NewFontRegistry()

	_, err := fonts.Face("No Such Family", 21)
	if !errors.Is(err, ErrAssetIO) {
		t.Errorf("expected ErrAssetIO, got %v", err)
	}
}

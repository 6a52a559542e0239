package banner

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

type FontRegistry interface {
	// RegisterFile parses a TTF/OTF file and returns its family name.
	// Registering an already known family is not an error; the existing
	// registration is reused.
	RegisterFile(path string) (string, error)
	RegisterBytes(data []byte) (string, error)
	// RegisterDefault registers the embedded Go Regular face for setups
	// with no font asset configured.
	RegisterDefault() (string, error)
	Has(family string) bool
	// Face builds a fresh face at the given pixel size. Faces are built
	// per call because they are not safe for concurrent use; the parsed
	// font is.
	Face(family string, sizePx float64) (font.Face, error)
}

type fontRegistry struct {
	mu    sync.Mutex
	buf   sfnt.Buffer
	fonts map[string]*sfnt.Font
}

func NewFontRegistry() FontRegistry {
	return &fontRegistry{fonts: make(map[string]*sfnt.Font)}
}

func (fr *fontRegistry) RegisterFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read font %s: %v", ErrAssetIO, path, err)
	}
	return fr.RegisterBytes(data)
}

func (fr *fontRegistry) RegisterBytes(data []byte) (string, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return "", fmt.Errorf("%w: parse font: %v", ErrAssetIO, err)
	}

	fr.mu.Lock()
	defer fr.mu.Unlock()

	family, err := parsed.Name(&fr.buf, sfnt.NameIDFamily)
	if err != nil {
		return "", fmt.Errorf("%w: font has no family name: %v", ErrAssetIO, err)
	}

	if _, ok := fr.fonts[family]; !ok {
		fr.fonts[family] = parsed
	}
	return family, nil
}

func (fr *fontRegistry) RegisterDefault() (string, error) {
	return fr.RegisterBytes(goregular.TTF)
}

func (fr *fontRegistry) Has(family string) bool {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	_, ok := fr.fonts[family]
	return ok
}

func (fr *fontRegistry) Face(family string, sizePx float64) (font.Face, error) {
	fr.mu.Lock()
	parsed, ok := fr.fonts[family]
	fr.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: font family not registered: %s", ErrAssetIO, family)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: build %s face at %.0fpx: %v", ErrAssetIO, family, sizePx, err)
	}
	return face, nil
}

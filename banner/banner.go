package banner

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	ErrAssetIO  = errors.New("asset error")
	ErrCacheIO  = errors.New("cache error")
	ErrEncoding = errors.New("encoding error")
)

// Request describes one banner to produce.
type Request struct {
	// BackgroundPath is the source image; empty selects the default asset.
	BackgroundPath string
	// OutputStem is the output path without extension; the engine writes
	// <stem>.jpg and <stem>@2x.jpg.
	OutputStem string
	// Title is the display title, already override-resolved by the caller.
	Title string
}

// State is the cache disposition of one request, reported without rendering.
type State string

const (
	StateCached  State = "cached"
	StateStale   State = "stale"
	StatePending State = "pending"
)

// Generator renders voting banners. All collaborators are injected and a
// Generator is safe for concurrent use.
type Generator struct {
	fonts  FontRegistry
	assets AssetLibrary
	cache  CacheStore
	family string
}

func NewGenerator(fonts FontRegistry, assets AssetLibrary, cache CacheStore, family string) *Generator {
	return &Generator{fonts: fonts, assets: assets, cache: cache, family: family}
}

// CreateBanner produces both density variants for req. It returns true when
// the banner was rendered and false when the cache already covered it.
//
// A cache hit requires the key in the index and both output files on disk.
// Rendering errors abort this request only; the cache is recorded after both
// outputs are written, so a failed request never leaves a stale entry.
func (g *Generator) CreateBanner(req Request) (bool, error) {
	background, err := g.backgroundBytes(req.BackgroundPath)
	if err != nil {
		return false, err
	}

	key := CacheKey(background, req.Title)
	if g.cache.Has(key) && g.outputsExist(req.OutputStem) {
		return false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(background))
	if err != nil {
		return false, fmt.Errorf("%w: decode background %s: %v", ErrAssetIO, req.BackgroundPath, err)
	}

	measureFace, err := g.fonts.Face(g.family, titleSizePx)
	if err != nil {
		return false, err
	}
	bounds := img.Bounds()
	layout := ComputeLayout(measureFace, bounds.Dx(), bounds.Dy(), req.Title)

	for _, target := range RenderTargets() {
		overlay, err := g.assets.Overlay(target.Scale)
		if err != nil {
			return false, err
		}
		face, err := g.fonts.Face(g.family, float64(titleSizePx*target.Scale))
		if err != nil {
			return false, err
		}
		frame := Rasterize(img, overlay, face, layout, target)
		if err := EncodeJPEG(frame, OutputPath(req.OutputStem, target.Scale)); err != nil {
			return false, err
		}
	}

	if err := g.cache.Record(key); err != nil {
		logrus.Warnf("Banner rendered but cache index was not updated: %v", err)
	}

	return true, nil
}

// State inspects the cache and the output files for req without rendering.
func (g *Generator) State(req Request) (State, error) {
	background, err := g.backgroundBytes(req.BackgroundPath)
	if err != nil {
		return "", err
	}

	key := CacheKey(background, req.Title)
	switch {
	case !g.cache.Has(key):
		return StatePending, nil
	case !g.outputsExist(req.OutputStem):
		return StateStale, nil
	default:
		return StateCached, nil
	}
}

func (g *Generator) backgroundBytes(path string) ([]byte, error) {
	if path == "" {
		return g.assets.DefaultBackground()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read background %s: %v", ErrAssetIO, path, err)
	}
	return data, nil
}

func (g *Generator) outputsExist(stem string) bool {
	for _, target := range RenderTargets() {
		if _, err := os.Stat(OutputPath(stem, target.Scale)); err != nil {
			return false
		}
	}
	return true
}

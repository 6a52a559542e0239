package banner

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

type AssetLibrary interface {
	// DefaultBackground returns the raw bytes of the fallback background
	// used by requests that carry no background of their own.
	DefaultBackground() ([]byte, error)
	// Overlay returns the decorative frame for a render scale. It is
	// decoded at most once per process and shared read-only afterwards.
	// A scale with no configured path yields a nil overlay.
	Overlay(scale int) (image.Image, error)
}

type overlayAsset struct {
	path string
	once sync.Once
	img  image.Image
	err  error
}

type assetLibrary struct {
	defaultBackground string
	overlays          map[int]*overlayAsset
}

func NewAssetLibrary(defaultBackground, overlay1x, overlay2x string) AssetLibrary {
	return &assetLibrary{
		defaultBackground: defaultBackground,
		overlays: map[int]*overlayAsset{
			1: {path: overlay1x},
			2: {path: overlay2x},
		},
	}
}

func (al *assetLibrary) DefaultBackground() ([]byte, error) {
	if al.defaultBackground == "" {
		return nil, fmt.Errorf("%w: no default background configured", ErrAssetIO)
	}
	data, err := os.ReadFile(al.defaultBackground)
	if err != nil {
		return nil, fmt.Errorf("%w: read default background %s: %v", ErrAssetIO, al.defaultBackground, err)
	}
	return data, nil
}

func (al *assetLibrary) Overlay(scale int) (image.Image, error) {
	ov, ok := al.overlays[scale]
	if !ok {
		return nil, fmt.Errorf("%w: no overlay registered for scale %d", ErrAssetIO, scale)
	}
	if ov.path == "" {
		return nil, nil
	}
	ov.once.Do(func() {
		ov.img, ov.err = loadImage(ov.path)
	})
	return ov.img, ov.err
}

func loadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrAssetIO, path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrAssetIO, path, err)
	}
	return img, nil
}

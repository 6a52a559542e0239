package banner

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
)

const jpegQuality = 95

// OutputPath returns the on-disk path of a banner stem at a render scale:
// <stem>.jpg for scale 1, <stem>@2x.jpg for scale 2.
func OutputPath(stem string, scale int) string {
	if scale == 1 {
		return stem + ".jpg"
	}
	return fmt.Sprintf("%s@%dx.jpg", stem, scale)
}

// EncodeJPEG writes one rendered frame to path, creating parent directories
// as needed.
func EncodeJPEG(img image.Image, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create output directory %s: %v", ErrEncoding, dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrEncoding, path, err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		return fmt.Errorf("%w: encode %s: %v", ErrEncoding, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrEncoding, path, err)
	}
	return nil
}

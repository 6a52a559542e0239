package banner

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func rasterTarget(t *testing.T, scale int) RenderTarget {
	t.Helper()
	for _, target := range RenderTargets() {
		if target.Scale == scale {
			return target
		}
	}
	t.Fatalf("no render target for scale %d", scale)
	return RenderTarget{}
}

func TestRasterizeDimensions(t *testing.T) {
	bg := gradientImage(800, 300)
	face := testFace(t, titleSizePx)
	layout := ComputeLayout(face, 800, 300, "Artist - Song")

	for _, target := range RenderTargets() {
		scaled := testFace(t, titleSizePx*float64(target.Scale))
		frame := Rasterize(bg, nil, scaled, layout, target)
		if frame.Bounds().Dx() != target.Width || frame.Bounds().Dy() != target.Height {
			t.Errorf("scale %d frame is %dx%d, want %dx%d",
				target.Scale, frame.Bounds().Dx(), frame.Bounds().Dy(), target.Width, target.Height)
		}
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	bg := gradientImage(800, 300)
	overlay := solidImage(670, 200, color.NRGBA{R: 255, G: 102, B: 170, A: 48})
	target := rasterTarget(t, 1)
	layout := ComputeLayout(testFace(t, titleSizePx), 800, 300, "Artist - Song")

	first := Rasterize(bg, overlay, testFace(t, titleSizePx), layout, target)
	second := Rasterize(bg, overlay, testFace(t, titleSizePx), layout, target)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("identical inputs produced different frames")
	}
}

func TestRasterizeDrawsTitle(t *testing.T) {
	bg := solidImage(670, 200, color.NRGBA{R: 20, G: 20, B: 60, A: 255})
	face := testFace(t, titleSizePx)
	target := rasterTarget(t, 1)

	withTitle := Rasterize(bg, nil, face, ComputeLayout(face, 670, 200, "LOVED"), target)
	withoutTitle := Rasterize(bg, nil, face, ComputeLayout(face, 670, 200, ""), target)

	if bytes.Equal(withTitle.Pix, withoutTitle.Pix) {
		t.Fatal("title did not change the frame")
	}
	if found := findBrightPixel(withTitle); !found {
		t.Error("no bright pixel where the title should be")
	}
	if found := findBrightPixel(withoutTitle); found {
		t.Error("bright pixel found without a title")
	}
}

// findBrightPixel scans the bottom-right region where the title is anchored.
func findBrightPixel(frame *image.RGBA) bool {
	for y := 140; y < 200; y++ {
		for x := 400; x < 670; x++ {
			r, g, b, _ := frame.At(x, y).RGBA()
			if r>>8 >= 200 && g>>8 >= 200 && b>>8 >= 200 {
				return true
			}
		}
	}
	return false
}

func TestRasterizeDrawsShadow(t *testing.T) {
	// White title on a white background: only the shadow is visible.
	bg := solidImage(670, 200, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	face := testFace(t, titleSizePx)
	target := rasterTarget(t, 1)

	frame := Rasterize(bg, nil, face, ComputeLayout(face, 670, 200, "LOVED"), target)

	darkened := false
	for y := 140; y < 200 && !darkened; y++ {
		for x := 400; x < 670; x++ {
			r, _, _, _ := frame.At(x, y).RGBA()
			if r>>8 < 240 {
				darkened = true
				break
			}
		}
	}
	if !darkened {
		t.Error("no shadowed pixel under the title")
	}
}

func TestRasterizeAppliesOverlay(t *testing.T) {
	bg := solidImage(670, 200, color.NRGBA{R: 20, G: 20, B: 60, A: 255})
	overlay := solidImage(670, 200, color.NRGBA{R: 255, A: 128})
	face := testFace(t, titleSizePx)
	target := rasterTarget(t, 1)
	layout := ComputeLayout(face, 670, 200, "")

	plain := Rasterize(bg, nil, face, layout, target)
	framed := Rasterize(bg, overlay, face, layout, target)

	if bytes.Equal(plain.Pix, framed.Pix) {
		t.Fatal("overlay did not change the frame")
	}
	pr, _, _, _ := plain.At(10, 10).RGBA()
	fr, _, _, _ := framed.At(10, 10).RGBA()
	if fr <= pr {
		t.Errorf("overlay pixel not composited: plain red %d, framed red %d", pr>>8, fr>>8)
	}
}

func TestRasterizeCoverCrop(t *testing.T) {
	// Left half black, right half white; a centered cover crop of the wide
	// source keeps both halves.
	bg := image.NewNRGBA(image.Rect(0, 0, 2000, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 2000; x++ {
			c := color.NRGBA{A: 255}
			if x >= 1000 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			bg.SetNRGBA(x, y, c)
		}
	}

	face := testFace(t, titleSizePx)
	target := rasterTarget(t, 1)
	frame := Rasterize(bg, nil, face, ComputeLayout(face, 2000, 200, ""), target)

	lr, _, _, _ := frame.At(5, 100).RGBA()
	rr, _, _, _ := frame.At(664, 100).RGBA()
	if lr>>8 > 50 {
		t.Errorf("left edge should come from the dark half, got red %d", lr>>8)
	}
	if rr>>8 < 200 {
		t.Errorf("right edge should come from the bright half, got red %d", rr>>8)
	}
}

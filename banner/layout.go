package banner

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Logical banner geometry. Banners render at integer multiples of this
// canvas, never at other sizes.
const (
	BaseWidth  = 670
	BaseHeight = 200

	titleSizePx  = 21
	titleMarginX = 16
	titleOffsetY = 31

	titleEllipsis = "..."
)

// RenderTarget is one output density of a banner.
type RenderTarget struct {
	Scale  int
	Width  int
	Height int
}

// RenderTargets returns the two densities every banner is produced at.
func RenderTargets() []RenderTarget {
	return []RenderTarget{
		{Scale: 1, Width: BaseWidth, Height: BaseHeight},
		{Scale: 2, Width: 2 * BaseWidth, Height: 2 * BaseHeight},
	}
}

// Layout is the resolved geometry of one banner: the source-space crop of
// the background that maps onto the canvas, and the display title after
// width fitting. It is computed once per request and shared by both render
// targets.
type Layout struct {
	CropX, CropY int
	CropW, CropH int
	DisplayTitle string
	Truncated    bool
}

func (l Layout) CropRect() image.Rectangle {
	return image.Rect(l.CropX, l.CropY, l.CropX+l.CropW, l.CropY+l.CropH)
}

// ComputeLayout resolves the geometry for one banner request. srcW and srcH
// are the background's dimensions; the face must be sized at the logical
// title size.
func ComputeLayout(face font.Face, srcW, srcH int, title string) Layout {
	x, y, w, h := CoverCrop(srcW, srcH)
	display, truncated := FitTitle(face, title)
	return Layout{
		CropX: x, CropY: y,
		CropW: w, CropH: h,
		DisplayTitle: display,
		Truncated:    truncated,
	}
}

// CoverCrop computes the centered source-space rectangle with the canvas
// aspect ratio. At most one axis is cropped and the rectangle always lies
// within the source bounds, so scaling it to the canvas fills every pixel
// without letterboxing.
func CoverCrop(srcW, srcH int) (x, y, w, h int) {
	w = srcW
	h = srcH

	// Wider than the canvas ratio trims the sides, narrower trims top and
	// bottom. Equal ratios keep the full frame.
	if srcW*BaseHeight > srcH*BaseWidth {
		w = srcH * BaseWidth / BaseHeight
	} else if srcW*BaseHeight < srcH*BaseWidth {
		h = srcW * BaseHeight / BaseWidth
	}

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	x = (srcW - w) / 2
	y = (srcH - h) / 2
	return x, y, w, h
}

// FitTitle measures title at the logical font size and shortens it with an
// ellipsis until it fits the logical text width: drop the final rune,
// measure candidate+ellipsis, repeat. The result never becomes empty; at
// least one rune is kept ahead of the ellipsis.
func FitTitle(face font.Face, title string) (string, bool) {
	maxWidth := fixed.I(BaseWidth - 2*titleMarginX)
	if font.MeasureString(face, title) <= maxWidth {
		return title, false
	}

	runes := []rune(title)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + titleEllipsis
		if font.MeasureString(face, candidate) <= maxWidth {
			return candidate, true
		}
	}
	return string(runes) + titleEllipsis, true
}

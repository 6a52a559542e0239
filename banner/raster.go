package banner

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	shadowOffsetY = 3
	shadowSigma   = 1.5
	shadowAlpha   = 102 // ~40% black
)

// Rasterize composes one banner frame at the given density: the cover-fit
// background, the decorative overlay, then the title over its drop shadow.
// The face must be sized at the target's title size. Output is deterministic
// for identical inputs.
func Rasterize(bg image.Image, overlay image.Image, face font.Face, layout Layout, target RenderTarget) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, target.Width, target.Height))

	cropped := imaging.Crop(bg, layout.CropRect())
	scaled := imaging.Resize(cropped, target.Width, target.Height, imaging.Lanczos)
	draw.Draw(canvas, canvas.Bounds(), scaled, image.Point{}, draw.Src)

	if overlay != nil {
		draw.Draw(canvas, canvas.Bounds(), overlay, image.Point{}, draw.Over)
	}

	drawTitle(canvas, face, layout.DisplayTitle, target)

	return canvas
}

// drawTitle stamps the title right-aligned above the bottom edge. The anchor
// is the baseline's right end at (W - 16*scale, H - 31*scale); descenders
// may extend below it.
func drawTitle(canvas *image.RGBA, face font.Face, title string, target RenderTarget) {
	if title == "" {
		return
	}

	advance := font.MeasureString(face, title)
	dot := fixed.Point26_6{
		X: fixed.I(target.Width-titleMarginX*target.Scale) - advance,
		Y: fixed.I(target.Height - titleOffsetY*target.Scale),
	}

	shadow := image.NewRGBA(canvas.Bounds())
	shadowDrawer := &font.Drawer{
		Dst:  shadow,
		Src:  image.NewUniform(color.NRGBA{A: shadowAlpha}),
		Face: face,
		Dot:  fixed.Point26_6{X: dot.X, Y: dot.Y + fixed.I(shadowOffsetY*target.Scale)},
	}
	shadowDrawer.DrawString(title)
	blurred := imaging.Blur(shadow, shadowSigma*float64(target.Scale))
	draw.Draw(canvas, canvas.Bounds(), blurred, image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  dot,
	}
	drawer.DrawString(title)
}

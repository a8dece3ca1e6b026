package layout

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"adforge/internal/domain"
)

// Canvas and band geometry. Story reshapes to a fixed tall canvas; the
// banded formats keep the source image's dimensions.
const (
	storyWidth  = 1080
	storyHeight = 1920

	storyBleed      = 120 // backdrop oversize before blur and crop
	storyBlurSigma  = 12
	storyDarkAlpha  = 120
	storyInsetEdge  = 840
	storyInsetLift  = 60 // inset sits slightly above vertical center
	storyBorder     = 12
	storyTitleY     = 220
	storyLineGap    = 76
	storyWrapWidth  = 22
	storyCaptionY   = storyHeight - 90
	storyCallToAct  = "Swipe up to order"
	bandTopHeight   = 180
	bandTopAlpha    = 150
	bandBotHeight   = 300
	bandBotAlpha    = 180
	bandTitleTop    = 20
	bandSloganTop   = 280 // measured up from the bottom edge
	bandLineGap     = 55
	bandWrapWidth   = 40
)

var (
	gold  = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	white = color.White
)

// Engine composites a business name and slogan onto a base image according
// to the requested output format.
type Engine struct {
	fonts FontSet
}

// NewEngine builds an engine around a resolved font set.
func NewEngine(fonts FontSet) *Engine {
	return &Engine{fonts: fonts}
}

// Compose renders the final creative. Story produces a fixed 1080x1920
// canvas; Square and Landscape draw bands over the original image and keep
// its dimensions.
func (e *Engine) Compose(base image.Image, business, slogan string, format domain.Format) image.Image {
	if format == domain.FormatStory {
		return e.composeStory(base, business, slogan)
	}
	return e.composeBanded(base, business, slogan)
}

func (e *Engine) composeStory(base image.Image, business, slogan string) image.Image {
	backdrop := imaging.Fill(base, storyWidth+storyBleed, storyHeight+storyBleed, imaging.Center, imaging.Lanczos)
	backdrop = imaging.Blur(backdrop, storyBlurSigma)
	backdrop = imaging.CropCenter(backdrop, storyWidth, storyHeight)

	dc := gg.NewContext(storyWidth, storyHeight)
	dc.DrawImage(backdrop, 0, 0)

	// Darken for text contrast.
	dc.SetRGBA255(0, 0, 0, storyDarkAlpha)
	dc.DrawRectangle(0, 0, storyWidth, storyHeight)
	dc.Fill()

	// White-bordered inset of the product shot near vertical center.
	inset := imaging.Fit(base, storyInsetEdge, storyInsetEdge, imaging.Lanczos)
	iw, ih := inset.Bounds().Dx(), inset.Bounds().Dy()
	ix := (storyWidth - iw) / 2
	iy := (storyHeight-ih)/2 - storyInsetLift
	dc.SetColor(white)
	dc.DrawRectangle(float64(ix-storyBorder), float64(iy-storyBorder),
		float64(iw+2*storyBorder), float64(ih+2*storyBorder))
	dc.Fill()
	dc.DrawImage(inset, ix, iy)

	dc.SetFontFace(e.fonts.Title)
	dc.SetColor(gold)
	drawCentered(dc, strings.ToUpper(business), storyWidth, storyTitleY)

	dc.SetFontFace(e.fonts.Slogan)
	dc.SetColor(white)
	y := float64(iy+ih) + float64(storyLineGap)
	for _, line := range wrapText(slogan, storyWrapWidth) {
		drawCentered(dc, line, storyWidth, y)
		y += storyLineGap
	}

	dc.SetFontFace(e.fonts.Caption)
	dc.SetColor(white)
	drawCentered(dc, storyCallToAct, storyWidth, storyCaptionY)

	return dc.Image()
}

func (e *Engine) composeBanded(base image.Image, business, slogan string) image.Image {
	bounds := base.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dc := gg.NewContext(w, h)
	dc.DrawImage(base, 0, 0)

	dc.SetRGBA255(0, 0, 0, bandTopAlpha)
	dc.DrawRectangle(0, 0, float64(w), bandTopHeight)
	dc.Fill()
	dc.SetRGBA255(0, 0, 0, bandBotAlpha)
	dc.DrawRectangle(0, float64(h-bandBotHeight), float64(w), bandBotHeight)
	dc.Fill()

	dc.SetFontFace(e.fonts.Title)
	dc.SetColor(gold)
	title := strings.ToUpper(business)
	_, th := dc.MeasureString(title)
	drawCentered(dc, title, float64(w), bandTitleTop+th)

	dc.SetFontFace(e.fonts.Slogan)
	dc.SetColor(white)
	_, lh := dc.MeasureString(slogan)
	y := float64(h-bandSloganTop) + lh
	for _, line := range wrapText(slogan, bandWrapWidth) {
		drawCentered(dc, line, float64(w), y)
		y += bandLineGap
	}

	return dc.Image()
}

// drawCentered places s so that its horizontal offset is exactly
// (width - measured) / 2, using the active face's glyph extents. y is the
// text baseline.
func drawCentered(dc *gg.Context, s string, width, y float64) {
	tw, _ := dc.MeasureString(s)
	dc.DrawString(s, (width-tw)/2, y)
}

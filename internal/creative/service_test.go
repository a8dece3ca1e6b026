package creative

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"adforge/internal/domain"
	"adforge/internal/infra"
	"adforge/internal/layout"
)

type stubText struct {
	response string
	err      error
	prompts  []string
	budgets  []int
	calls    *[]string
}

func (s *stubText) Complete(_ context.Context, prompt string, maxTokens int) (string, error) {
	s.prompts = append(s.prompts, prompt)
	s.budgets = append(s.budgets, maxTokens)
	if s.calls != nil {
		*s.calls = append(*s.calls, "text")
	}
	return s.response, s.err
}

type stubImage struct {
	data    []byte
	err     error
	prompts []string
	calls   *[]string
}

func (s *stubImage) Generate(_ context.Context, prompt string) ([]byte, error) {
	s.prompts = append(s.prompts, prompt)
	if s.calls != nil {
		*s.calls = append(*s.calls, "image")
	}
	return s.data, s.err
}

type stubVision struct {
	caption string
	err     error
	count   int
}

func (s *stubVision) Caption(_ context.Context, _ []byte) (string, error) {
	s.count++
	return s.caption, s.err
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func testService(text TextCompleter, img ImageGenerator, vision Captioner) *Service {
	builtin := basicfont.Face7x13
	engine := layout.NewEngine(layout.FontSet{Title: builtin, Slogan: builtin, Caption: builtin})
	return NewService(text, img, vision, engine, infra.Logger(zerolog.New(io.Discard)))
}

func TestAnalyzeImageParsesGuess(t *testing.T) {
	text := &stubText{response: "Cafe Mocha | Luxury"}
	vision := &stubVision{caption: "a cup of coffee on a table"}
	svc := testService(text, &stubImage{}, vision)

	analysis, err := svc.AnalyzeImage(context.Background(), testJPEG(t, 640, 640))
	require.NoError(t, err)
	assert.Equal(t, "a cup of coffee on a table", analysis.Description)
	assert.Equal(t, "Cafe Mocha", analysis.BusinessType)
	assert.Equal(t, "Luxury", analysis.Tone)
	assert.Equal(t, 1, vision.count)
	require.Len(t, text.prompts, 1)
	assert.Contains(t, text.prompts[0], "'a cup of coffee on a table'")
	assert.Equal(t, []int{50}, text.budgets)
}

func TestAnalyzeImageFallsBackOnCaptionFailure(t *testing.T) {
	text := &stubText{response: "no separator here"}
	vision := &stubVision{err: domain.ErrNoCaption}
	svc := testService(text, &stubImage{}, vision)

	analysis, err := svc.AnalyzeImage(context.Background(), testJPEG(t, 64, 64))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCaption, analysis.Description)
	assert.Equal(t, "Auto Business", analysis.BusinessType)
	assert.Equal(t, "Professional", analysis.Tone)
}

func TestAnalyzeImageSurfacesTextProviderFailure(t *testing.T) {
	text := &stubText{err: errors.New("model overloaded")}
	svc := testService(text, &stubImage{}, &stubVision{caption: "a storefront"})

	_, err := svc.AnalyzeImage(context.Background(), testJPEG(t, 64, 64))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestAnalyzeImageRejectsUndecodableUpload(t *testing.T) {
	svc := testService(&stubText{}, &stubImage{}, &stubVision{})
	_, err := svc.AnalyzeImage(context.Background(), []byte("not an image"))
	require.Error(t, err)
}

func TestGenerateSloganSanitizesOutput(t *testing.T) {
	text := &stubText{response: `Slogan: "Fresh brews daily"`}
	svc := testService(text, &stubImage{}, &stubVision{})

	req := domain.CreativeRequest{BusinessType: "Cafe Mocha", ProductDescription: "artisan coffee", Tone: "Luxury", Language: "English"}
	slogan, err := svc.GenerateSlogan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Fresh brews daily", slogan)
	assert.Equal(t, []int{60}, text.budgets)
}

func TestGenerateSloganSurfacesProviderFailure(t *testing.T) {
	text := &stubText{err: errors.New("quota exhausted")}
	svc := testService(text, &stubImage{}, &stubVision{})

	_, err := svc.GenerateSlogan(context.Background(), domain.CreativeRequest{BusinessType: "Cafe Mocha"})
	require.Error(t, err)
}

func TestGenerateImageReturnsJPEG(t *testing.T) {
	img := &stubImage{data: testJPEG(t, 320, 240)}
	svc := testService(&stubText{}, img, &stubVision{})

	req := domain.CreativeRequest{BusinessType: "Cafe Mocha", ProductDescription: "artisan coffee", Tone: "Catchy"}
	data, err := svc.GenerateImage(context.Background(), req)
	require.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 320, decoded.Bounds().Dx())
	require.Len(t, img.prompts, 1)
	assert.Contains(t, img.prompts[0], "Cafe Mocha")
	assert.Contains(t, img.prompts[0], "pop-art style")
}

func TestGeneratePosterOrderingAndOutput(t *testing.T) {
	var order []string
	text := &stubText{response: "Brew different", calls: &order}
	img := &stubImage{data: testJPEG(t, 1024, 1024), calls: &order}
	svc := testService(text, img, &stubVision{})

	req := domain.CreativeRequest{
		BusinessType:       "Cafe Mocha",
		ProductDescription: "artisan coffee",
		Tone:               "Luxury",
		Language:           "English",
		Format:             domain.FormatStory,
	}
	poster, err := svc.GeneratePoster(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"text", "image"}, order, "slogan generation precedes image generation")
	assert.Equal(t, "Brew different", poster.Slogan)
	assert.Equal(t, []int{40}, text.budgets)

	decoded, err := imaging.Decode(bytes.NewReader(poster.JPEG))
	require.NoError(t, err)
	assert.Equal(t, 1080, decoded.Bounds().Dx())
	assert.Equal(t, 1920, decoded.Bounds().Dy())
}

func TestGeneratePosterSquarePreservesImageSize(t *testing.T) {
	text := &stubText{response: "Brew different"}
	img := &stubImage{data: testJPEG(t, 960, 720)}
	svc := testService(text, img, &stubVision{})

	req := domain.CreativeRequest{BusinessType: "Cafe Mocha", Format: domain.FormatSquare}
	poster, err := svc.GeneratePoster(context.Background(), req)
	require.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(poster.JPEG))
	require.NoError(t, err)
	assert.Equal(t, 960, decoded.Bounds().Dx())
	assert.Equal(t, 720, decoded.Bounds().Dy())
}

func TestGeneratePosterStopsWhenSloganFails(t *testing.T) {
	var order []string
	text := &stubText{err: errors.New("boom"), calls: &order}
	img := &stubImage{data: testJPEG(t, 64, 64), calls: &order}
	svc := testService(text, img, &stubVision{})

	_, err := svc.GeneratePoster(context.Background(), domain.CreativeRequest{BusinessType: "Cafe Mocha"})
	require.Error(t, err)
	assert.Equal(t, []string{"text"}, order, "image provider must not be called after slogan failure")
}

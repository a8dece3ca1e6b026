package creative

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"adforge/internal/domain"
	"adforge/internal/infra"
	"adforge/internal/layout"
	"adforge/internal/prompt"
)

// TextCompleter is the text-completion capability consumed by the pipeline.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// ImageGenerator is the text-to-image capability.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// Captioner describes an image in natural language.
type Captioner interface {
	Caption(ctx context.Context, imageBytes []byte) (string, error)
}

// Token budgets per call, matching the instruction each one carries.
const (
	guessMaxTokens        = 50
	sloganMaxTokens       = 60
	posterSloganMaxTokens = 40
)

const (
	jpegQuality    = 85
	analyzeMaxEdge = 512
)

// Service orchestrates the creative-composition pipeline: captioning,
// business-identity inference, slogan and image generation, and layout
// composition. Every artifact is request-scoped; nothing is cached across
// calls.
type Service struct {
	text   TextCompleter
	image  ImageGenerator
	vision Captioner
	layout *layout.Engine
	logger infra.Logger
}

// NewService wires the capability providers and the layout engine.
func NewService(text TextCompleter, image ImageGenerator, vision Captioner, engine *layout.Engine, logger infra.Logger) *Service {
	return &Service{text: text, image: image, vision: vision, layout: engine, logger: logger}
}

// Analysis is the outcome of the analyze-image flow.
type Analysis struct {
	Description  string
	BusinessType string
	Tone         string
}

// Poster is the outcome of the poster flow.
type Poster struct {
	JPEG   []byte
	Slogan string
}

// AnalyzeImage downsamples the upload to fit within 512x512, re-encodes it,
// captions it, and asks the text model to infer a business name and tone
// from the caption. Captioning failure degrades to the default caption
// instead of failing the request; a text-provider failure surfaces.
func (s *Service) AnalyzeImage(ctx context.Context, upload []byte) (*Analysis, error) {
	img, err := imaging.Decode(bytes.NewReader(upload))
	if err != nil {
		return nil, fmt.Errorf("decode upload: %w", err)
	}
	thumb := img
	if b := img.Bounds(); b.Dx() > analyzeMaxEdge || b.Dy() > analyzeMaxEdge {
		thumb = imaging.Fit(img, analyzeMaxEdge, analyzeMaxEdge, imaging.Lanczos)
	}
	encoded, err := encodeJPEG(thumb)
	if err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	caption, err := s.vision.Caption(ctx, encoded)
	if err != nil {
		s.logger.Warn().Err(err).Msg("vision caption unavailable, using default")
		caption = domain.DefaultCaption
	}

	raw, err := s.text.Complete(ctx, prompt.BusinessGuessInstruction(caption), guessMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("infer business identity: %w", err)
	}
	guess := domain.ParseBusinessGuess(strings.TrimSpace(raw))
	return &Analysis{Description: caption, BusinessType: guess.Name, Tone: guess.Tone}, nil
}

// GenerateSlogan invokes the text provider once and sanitizes the result.
// Provider failure surfaces to the caller; substituting placeholder copy
// would mislead the end user.
func (s *Service) GenerateSlogan(ctx context.Context, req domain.CreativeRequest) (string, error) {
	instruction := prompt.SloganInstruction(req.BusinessType, req.ProductDescription, req.Tone, req.Language)
	raw, err := s.text.Complete(ctx, instruction, sloganMaxTokens)
	if err != nil {
		return "", fmt.Errorf("generate slogan: %w", err)
	}
	return prompt.Sanitize(raw), nil
}

// GenerateImage composes the enhanced prompt, invokes the image provider
// once, and returns the result re-encoded as JPEG.
func (s *Service) GenerateImage(ctx context.Context, req domain.CreativeRequest) ([]byte, error) {
	data, err := s.image.Generate(ctx, prompt.ComposeImagePrompt(req.BusinessType, req.ProductDescription, req.Tone))
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode generated image: %w", err)
	}
	return encodeJPEG(img)
}

// GeneratePoster runs slogan generation, then image generation, then the
// layout engine. The two generation prompts are independent, but the calls
// are sequential and this flow is deliberately not a composition of the
// standalone slogan and image operations, to avoid doubled round-trips.
func (s *Service) GeneratePoster(ctx context.Context, req domain.CreativeRequest) (*Poster, error) {
	rawSlogan, err := s.text.Complete(ctx, prompt.PosterSloganInstruction(req.BusinessType, req.Language), posterSloganMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("generate slogan: %w", err)
	}
	slogan := prompt.Sanitize(rawSlogan)

	data, err := s.image.Generate(ctx, prompt.ComposeImagePrompt(req.BusinessType, req.ProductDescription, req.Tone))
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode generated image: %w", err)
	}

	composite := s.layout.Compose(img, req.BusinessType, slogan, req.Format)
	encoded, err := encodeJPEG(composite)
	if err != nil {
		return nil, fmt.Errorf("encode poster: %w", err)
	}
	s.logger.Debug().
		Str("business", req.BusinessType).
		Str("format", string(req.Format)).
		Int("bytes", len(encoded)).
		Msg("poster composed")
	return &Poster{JPEG: encoded, Slogan: slogan}, nil
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

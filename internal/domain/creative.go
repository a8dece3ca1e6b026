package domain

import "strings"

// Format selects the target creative's aspect/layout class.
type Format string

const (
	FormatSquare    Format = "Square"
	FormatLandscape Format = "Landscape"
	FormatStory     Format = "Story"
)

// ParseFormat maps a caller-supplied format label onto a known Format.
// Unrecognized or empty values fall back to Square.
func ParseFormat(raw string) Format {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "story":
		return FormatStory
	case "landscape":
		return FormatLandscape
	default:
		return FormatSquare
	}
}

// DefaultLanguage is used when the caller does not specify one.
const DefaultLanguage = "English"

// CreativeRequest carries the business metadata for one generation call.
// The contract is permissive: absent fields flow through as empty strings
// rather than failing validation.
type CreativeRequest struct {
	BusinessType       string
	ProductDescription string
	Tone               string
	Language           string
	Format             Format
}

// Normalize fills request defaults in place.
func (r *CreativeRequest) Normalize() {
	if strings.TrimSpace(r.Language) == "" {
		r.Language = DefaultLanguage
	}
	if r.Format == "" {
		r.Format = FormatSquare
	}
}

// DefaultCaption stands in for the vision provider's answer when captioning
// is unavailable or returns nothing usable.
const DefaultCaption = "A product image"

// BusinessGuess is the business identity inferred from an image caption.
type BusinessGuess struct {
	Name string
	Tone string
}

// ParseBusinessGuess parses the "Name | Tone" single-line convention the
// text model is instructed to follow. A response without the separator
// degrades to a fixed guess instead of failing.
func ParseBusinessGuess(raw string) BusinessGuess {
	name, tone, ok := strings.Cut(raw, "|")
	if !ok {
		return BusinessGuess{Name: "Auto Business", Tone: "Professional"}
	}
	return BusinessGuess{Name: strings.TrimSpace(name), Tone: strings.TrimSpace(tone)}
}

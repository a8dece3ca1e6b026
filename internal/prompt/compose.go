package prompt

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// baseStyle is appended to every image prompt regardless of tone.
const baseStyle = "High quality, 8k resolution, cinematic lighting."

// toneClauses are matched by substring against the caller-supplied tone
// label in fixed priority order; the first hit wins. A tone containing
// several keywords resolving to the first clause is accepted ambiguity.
var toneClauses = []struct {
	keyword string
	clause  string
}{
	{"Catchy", " Vibrant colors, pop-art style, energetic."},
	{"Professional", " Sleek, minimalistic, modern office background."},
	{"Luxury", " Dark moody lighting, gold accents, elegant, macro shot."},
	{"Humorous", " Playful, bright lighting, fun props."},
}

// ComposeImagePrompt builds the descriptive text-to-image prompt for a
// business, its product description, and a tone label.
func ComposeImagePrompt(business, description, tone string) string {
	base := fmt.Sprintf("A high-end commercial advertisement poster for %s featuring %s.", business, description)
	style := baseStyle
	for _, tc := range toneClauses {
		if strings.Contains(tone, tc.keyword) {
			style += tc.clause
			break
		}
	}
	return base + " " + style
}

// SloganInstruction builds the language- and tone-aware instruction for the
// standalone slogan endpoint.
func SloganInstruction(business, description, tone, lang string) string {
	lang = NormalizeLanguage(lang)
	return fmt.Sprintf("Write a %s slogan for %s (%s) in %s language. Output ONLY the slogan in %s.",
		tone, business, description, lang, lang)
}

// PosterSloganInstruction builds the shorter slogan instruction used inside
// the poster pipeline.
func PosterSloganInstruction(business, lang string) string {
	return fmt.Sprintf("Write a catchy 5-word slogan for %s in %s language.", business, NormalizeLanguage(lang))
}

// BusinessGuessInstruction asks the text model to infer a business identity
// from an image caption, with a strict single-line output convention.
func BusinessGuessInstruction(caption string) string {
	return fmt.Sprintf("Based on this image description: '%s', "+
		"guess a short Business Name (max 3 words) and a Tone. Format: Name | Tone", caption)
}

// NormalizeLanguage title-cases a caller-supplied language label so
// "english" and "English" produce the same instruction, defaulting to
// English when absent.
func NormalizeLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "English"
	}
	return cases.Title(language.Und).String(raw)
}

package layout

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontSet holds the three logical faces used by the compositor.
type FontSet struct {
	Title   font.Face
	Slogan  font.Face
	Caption font.Face
}

const (
	titleFontSize   = 80
	sloganFontSize  = 45
	captionFontSize = 28
)

// systemFontPaths are tried after the bundled regional font, in order.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// LoadFonts resolves the font chain: the bundled regional font first, then
// known system fonts, and finally the built-in bitmap font. The chain never
// fails; the built-in face is always available.
func LoadFonts(bundledPath string) FontSet {
	paths := make([]string, 0, len(systemFontPaths)+1)
	if bundledPath != "" {
		paths = append(paths, bundledPath)
	}
	paths = append(paths, systemFontPaths...)
	for _, path := range paths {
		if set, err := loadFontSet(path); err == nil {
			return set
		}
	}
	builtin := basicfont.Face7x13
	return FontSet{Title: builtin, Slogan: builtin, Caption: builtin}
}

func loadFontSet(path string) (FontSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FontSet{}, err
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return FontSet{}, err
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(parsed, &truetype.Options{Size: size})
	}
	return FontSet{
		Title:   face(titleFontSize),
		Slogan:  face(sloganFontSize),
		Caption: face(captionFontSize),
	}, nil
}

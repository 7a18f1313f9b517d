package recommender

import (
	"github.com/lucasb-eyer/go-colorful"
)

// colorMatchThreshold is the CIEDE2000 delta below which two named colors
// count as the same hue. Fixed design constant, not tunable per call.
const colorMatchThreshold = 15.0

// namedColors maps the closed color vocabulary to sRGB. Unknown names fall
// back to neutral gray rather than failing.
var namedColors = map[string]colorful.Color{
	"red":    rgb(255, 0, 0),
	"blue":   rgb(0, 0, 255),
	"green":  rgb(0, 128, 0),
	"black":  rgb(0, 0, 0),
	"white":  rgb(255, 255, 255),
	"pink":   rgb(255, 192, 203),
	"gray":   rgb(128, 128, 128),
	"yellow": rgb(255, 255, 0),
	"purple": rgb(128, 0, 128),
	"orange": rgb(255, 165, 0),
	"brown":  rgb(139, 69, 19),
	"navy":   rgb(0, 0, 128),
	"gold":   rgb(255, 215, 0),
}

// colorVocabulary is the full set of tag words treated as colors, including
// near-white synonyms that only the matcher's normalization maps onto RGB.
var colorVocabulary = newStringSet(
	"red", "blue", "green", "black", "white", "pink", "gray", "yellow",
	"purple", "orange", "brown", "navy", "gold", "cream", "ivory",
	"offwhite", "beige",
)

var neutralGray = rgb(128, 128, 128)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func lookupColor(name string) colorful.Color {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return neutralGray
}

// colorDistance returns the perceptual CIEDE2000 delta between two named
// colors on the conventional 0-100 Lab scale. go-colorful reports the delta
// over its normalized Lab (L in 0..1), hence the rescale before comparing
// against the threshold.
func colorDistance(a, b string) float64 {
	return lookupColor(a).DistanceCIEDE2000(lookupColor(b)) * 100
}

// colorsClose reports whether two named colors fall within the match
// threshold.
func colorsClose(a, b string) bool {
	return colorDistance(a, b) < colorMatchThreshold
}

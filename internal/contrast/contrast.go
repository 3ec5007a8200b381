// Package contrast picks a legible text color for an arbitrary background.
// It compares the background against a fixed dark and a fixed light
// reference color and returns whichever differs more in luminance.
//
// Luminance here is a plain weighted sum of the 0-255 channels normalized to
// 0-1. It is NOT the gamma-corrected WCAG relative luminance, and "contrast"
// is the absolute luminance difference rather than the WCAG ratio. Calendar
// event styling depends on the exact crossover this produces, so keep it.
package contrast

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a color string is not "#RRGGBB".
var ErrInvalidColorFormat = errors.New("invalid color format")

// Channel weights for the luminance sum.
const (
	weightRed   = 0.2126
	weightGreen = 0.7152
	weightBlue  = 0.0722
)

// Color is an RGB triple with 8-bit channels. Colors are plain values.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Reference colors used for calendar event text.
var (
	DarkReference  = Color{R: 0x17, G: 0x16, B: 0x16}
	LightReference = Color{R: 0xe8, G: 0xe9, B: 0xe9}
)

// ParseHex decodes a "#RRGGBB" string. Hex digits may be either case.
// Shorthand ("#fff"), named colors and anything else are rejected.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is like ParseHex but panics on malformed input. Only for
// package-level literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(ch byte) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Luminance returns the ungamma'd weighted channel sum in [0, 1].
func Luminance(c Color) float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	return weightRed*r + weightGreen*g + weightBlue*b
}

// Contrast returns the absolute luminance difference between two colors.
func Contrast(a, b Color) float64 {
	return math.Abs(Luminance(a) - Luminance(b))
}

// Choice identifies which reference a Resolver picked.
type Choice int

const (
	// ChoiceLight means the light reference was picked.
	ChoiceLight Choice = iota
	// ChoiceDark means the dark reference was picked.
	ChoiceDark
)

// Resolver chooses between a dark and a light reference color.
type Resolver struct {
	Dark  Color
	Light Color
}

// DefaultResolver uses DarkReference and LightReference.
var DefaultResolver = Resolver{Dark: DarkReference, Light: LightReference}

// Choose reports which reference contrasts more with background. Dark wins
// only on a strictly greater contrast; ties go to light.
func (r Resolver) Choose(background Color) Choice {
	withDark := Contrast(r.Dark, background)
	withLight := Contrast(r.Light, background)
	if withDark > withLight {
		return ChoiceDark
	}
	return ChoiceLight
}

// Resolve returns the reference color to draw on top of background.
func (r Resolver) Resolve(background Color) Color {
	if r.Choose(background) == ChoiceDark {
		return r.Dark
	}
	return r.Light
}

// Resolve picks a text color for background using the default references.
func Resolve(background Color) Color {
	return DefaultResolver.Resolve(background)
}

// ResolveContrastColor decodes a "#RRGGBB" background and returns the
// resolved reference color in the same form. Malformed input returns an
// error wrapping ErrInvalidColorFormat.
func ResolveContrastColor(background string) (string, error) {
	bg, err := ParseHex(background)
	if err != nil {
		return "", err
	}
	return Resolve(bg).Hex(), nil
}

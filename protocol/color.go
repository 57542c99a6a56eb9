package protocol

import (
	"encoding/json"
	"strings"
)

// ColorKind discriminates the color variants kakoune sends in faces.
type ColorKind uint8

const (
	// ColorDefault is the terminal's default color. It is the zero value
	// so an empty Color means "no explicit color".
	ColorDefault ColorKind = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
	ColorWhite
	// ColorRGB carries the raw payload after the "rgb:" prefix.
	ColorRGB
	// ColorRGBA carries the raw payload after the "rgba:" prefix.
	ColorRGBA
)

// Color is a color token from the editor: one of the nine keyword colors,
// or an rgb:/rgba: value whose hex payload is kept verbatim. The payload is
// opaque at this layer; validating or interpreting it is the renderer's job.
type Color struct {
	Kind    ColorKind
	Payload string // set only for ColorRGB and ColorRGBA
}

// RGB returns a Color carrying a raw "rgb:" payload.
func RGB(payload string) Color {
	return Color{Kind: ColorRGB, Payload: payload}
}

// RGBA returns a Color carrying a raw "rgba:" payload.
func RGBA(payload string) Color {
	return Color{Kind: ColorRGBA, Payload: payload}
}

const (
	rgbPrefix  = "rgb:"
	rgbaPrefix = "rgba:"
)

var namedColors = map[string]ColorKind{
	"default": ColorDefault,
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"purple":  ColorPurple,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

var colorNames = map[ColorKind]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorPurple:  "purple",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// ParseColor decodes a single color token. Matching is ordered: the exact
// keyword set first, then the rgba:/rgb: prefixes, otherwise an
// InvalidColor error carrying the token.
func ParseColor(s string) (Color, error) {
	if kind, ok := namedColors[s]; ok {
		return Color{Kind: kind}, nil
	}
	// rgba: before rgb:, since rgb: is a prefix of neither but checking
	// the longer token first keeps the dispatch order obvious.
	if strings.HasPrefix(s, rgbaPrefix) {
		return RGBA(s[len(rgbaPrefix):]), nil
	}
	if strings.HasPrefix(s, rgbPrefix) {
		return RGB(s[len(rgbPrefix):]), nil
	}
	return Color{}, &DecodeError{Kind: InvalidColor, Token: s}
}

// String renders the color in its wire form.
func (c Color) String() string {
	switch c.Kind {
	case ColorRGB:
		return rgbPrefix + c.Payload
	case ColorRGBA:
		return rgbaPrefix + c.Payload
	default:
		return colorNames[c.Kind]
	}
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return malformed("", "color is null")
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

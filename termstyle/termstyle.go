// Package termstyle renders protocol faces with terminal escape sequences.
// It is the rendering consumer of the protocol's opaque rgb:/rgba: color
// payloads: they are interpreted here as rrggbb / rrggbbaa hex and degraded
// to whatever the output profile supports.
package termstyle

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/lydakis/kakui/protocol"
)

// Color converts a protocol color for profile p. The default color maps to
// termenv.NoColor; the rgba alpha byte is dropped, terminals having no use
// for it.
func Color(p termenv.Profile, c protocol.Color) termenv.Color {
	switch c.Kind {
	case protocol.ColorBlack:
		return p.Convert(termenv.ANSIBlack)
	case protocol.ColorRed:
		return p.Convert(termenv.ANSIRed)
	case protocol.ColorGreen:
		return p.Convert(termenv.ANSIGreen)
	case protocol.ColorYellow:
		return p.Convert(termenv.ANSIYellow)
	case protocol.ColorBlue:
		return p.Convert(termenv.ANSIBlue)
	case protocol.ColorPurple:
		return p.Convert(termenv.ANSIMagenta)
	case protocol.ColorCyan:
		return p.Convert(termenv.ANSICyan)
	case protocol.ColorWhite:
		return p.Convert(termenv.ANSIWhite)
	case protocol.ColorRGB:
		return hexColor(p, c.Payload)
	case protocol.ColorRGBA:
		if len(c.Payload) < 2 {
			return termenv.NoColor{}
		}
		return hexColor(p, c.Payload[:len(c.Payload)-2])
	}
	return termenv.NoColor{}
}

func hexColor(p termenv.Profile, payload string) termenv.Color {
	c := p.Color("#" + payload)
	if c == nil {
		// unparseable payload; render unstyled rather than fail
		return termenv.NoColor{}
	}
	return c
}

// Atom renders one atom's contents styled with its face.
func Atom(p termenv.Profile, a protocol.Atom) string {
	s := p.String(a.Contents)
	if fg := Color(p, a.Face.Fg); !isNoColor(fg) {
		s = s.Foreground(fg)
	}
	if bg := Color(p, a.Face.Bg); !isNoColor(bg) {
		s = s.Background(bg)
	}
	for _, attr := range a.Face.Attributes {
		switch attr {
		case protocol.AttrUnderline:
			s = s.Underline()
		case protocol.AttrReverse:
			s = s.Reverse()
		case protocol.AttrBlink:
			s = s.Blink()
		case protocol.AttrBold:
			s = s.Bold()
		case protocol.AttrDim:
			s = s.Faint()
		case protocol.AttrItalic:
			s = s.Italic()
		case protocol.AttrFinalFg, protocol.AttrFinalBg, protocol.AttrFinalAttr:
			// face compositing hints, nothing to draw
		}
	}
	return s.String()
}

// Line renders a full line, atoms in order.
func Line(p termenv.Profile, l protocol.Line) string {
	var b strings.Builder
	for _, a := range l {
		b.WriteString(Atom(p, a))
	}
	return b.String()
}

func isNoColor(c termenv.Color) bool {
	_, ok := c.(termenv.NoColor)
	return ok
}

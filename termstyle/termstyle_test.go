package termstyle

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/lydakis/kakui/protocol"
)

func TestColorKeywordMapping(t *testing.T) {
	p := termenv.TrueColor
	cases := []struct {
		in   protocol.Color
		want termenv.Color
	}{
		{protocol.Color{Kind: protocol.ColorBlack}, termenv.ANSIBlack},
		{protocol.Color{Kind: protocol.ColorRed}, termenv.ANSIRed},
		{protocol.Color{Kind: protocol.ColorGreen}, termenv.ANSIGreen},
		{protocol.Color{Kind: protocol.ColorYellow}, termenv.ANSIYellow},
		{protocol.Color{Kind: protocol.ColorBlue}, termenv.ANSIBlue},
		{protocol.Color{Kind: protocol.ColorPurple}, termenv.ANSIMagenta},
		{protocol.Color{Kind: protocol.ColorCyan}, termenv.ANSICyan},
		{protocol.Color{Kind: protocol.ColorWhite}, termenv.ANSIWhite},
		{protocol.Color{Kind: protocol.ColorDefault}, termenv.NoColor{}},
	}
	for _, tc := range cases {
		if got := Color(p, tc.in); got != tc.want {
			t.Fatalf("Color(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorRGBPayload(t *testing.T) {
	got := Color(termenv.TrueColor, protocol.RGB("ff0000"))
	if want := termenv.RGBColor("#ff0000"); got != want {
		t.Fatalf("Color(rgb:ff0000) = %v, want %v", got, want)
	}
}

func TestColorRGBADropsAlpha(t *testing.T) {
	got := Color(termenv.TrueColor, protocol.RGBA("00ff00cc"))
	if want := termenv.RGBColor("#00ff00"); got != want {
		t.Fatalf("Color(rgba:00ff00cc) = %v, want %v", got, want)
	}
}

func TestColorBadPayloadRendersUnstyled(t *testing.T) {
	for _, c := range []protocol.Color{protocol.RGB("zzz"), protocol.RGBA("f")} {
		if got := Color(termenv.TrueColor, c); got != (termenv.NoColor{}) {
			t.Fatalf("Color(%s) = %v, want NoColor", c, got)
		}
	}
}

func TestAtomStylesContents(t *testing.T) {
	atom := protocol.Atom{
		Face: protocol.Face{
			Fg:         protocol.Color{Kind: protocol.ColorRed},
			Attributes: []protocol.Attribute{protocol.AttrBold},
		},
		Contents: "hello",
	}
	got := Atom(termenv.TrueColor, atom)
	if want := "\x1b[31;1mhello\x1b[0m"; got != want {
		t.Fatalf("Atom() = %q, want %q", got, want)
	}
}

func TestAtomAsciiProfileIsPlain(t *testing.T) {
	atom := protocol.Atom{
		Face: protocol.Face{
			Fg:         protocol.Color{Kind: protocol.ColorRed},
			Attributes: []protocol.Attribute{protocol.AttrBold, protocol.AttrUnderline},
		},
		Contents: "plain",
	}
	if got := Atom(termenv.Ascii, atom); got != "plain" {
		t.Fatalf("Atom(Ascii) = %q, want %q", got, "plain")
	}
}

func TestAtomFinalAttributesDrawNothing(t *testing.T) {
	atom := protocol.Atom{
		Face: protocol.Face{
			Attributes: []protocol.Attribute{
				protocol.AttrFinalFg, protocol.AttrFinalBg, protocol.AttrFinalAttr,
			},
		},
		Contents: "as-is",
	}
	if got := Atom(termenv.TrueColor, atom); got != "as-is" {
		t.Fatalf("Atom() = %q, want unstyled contents", got)
	}
}

func TestLineConcatenatesAtoms(t *testing.T) {
	line := protocol.Line{
		{Contents: "a"},
		{Contents: "b"},
	}
	got := Line(termenv.Ascii, line)
	if got != "ab" {
		t.Fatalf("Line() = %q, want %q", got, "ab")
	}
	if strings.Contains(got, "\x1b") {
		t.Fatalf("Line() contains escapes: %q", got)
	}
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lydakis/kakui/protocol"
	"github.com/lydakis/kakui/termstyle"
)

// formatRequest renders one incoming request as a single trace entry.
// Display content (lines, titles, menus) is styled with the request's own
// faces; everything else is a compact summary.
func formatRequest(p termenv.Profile, req protocol.IncomingRequest) string {
	switch r := req.(type) {
	case protocol.Draw:
		var b strings.Builder
		fmt.Fprintf(&b, "draw: %d lines", len(r.Lines))
		for _, line := range r.Lines {
			b.WriteString("\n  ")
			b.WriteString(termstyle.Line(p, line))
		}
		return b.String()

	case protocol.DrawStatus:
		return fmt.Sprintf("draw_status: %s | %s",
			termstyle.Line(p, r.StatusLine), termstyle.Line(p, r.ModeLine))

	case protocol.MenuShow:
		var b strings.Builder
		fmt.Fprintf(&b, "menu_show (%s) at %d:%d:", r.Style, r.Anchor.Line, r.Anchor.Column)
		for _, item := range r.Items {
			b.WriteString("\n  ")
			b.WriteString(termstyle.Line(p, item))
		}
		return b.String()

	case protocol.MenuSelect:
		return fmt.Sprintf("menu_select: item %d", r.Selected)

	case protocol.InfoShow:
		var b strings.Builder
		fmt.Fprintf(&b, "info_show (%s): %s", r.Style, termstyle.Line(p, r.Title))
		for _, line := range r.Content {
			b.WriteString("\n  ")
			b.WriteString(termstyle.Line(p, line))
		}
		return b.String()

	case protocol.SetCursor:
		return fmt.Sprintf("set_cursor: %s %d:%d", r.Mode, r.Coord.Line, r.Coord.Column)

	case protocol.SetUIOptions:
		return formatOptions("set_ui_options", r.Options)

	case protocol.Refresh:
		return fmt.Sprintf("refresh: force=%t", r.Force)
	}
	// menu_hide, info_hide: the method name is the whole story
	return protocol.Method(req)
}

func formatOptions(label string, options map[string]string) string {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(label + ":")
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s=%s", k, options[k])
	}
	return b.String()
}

package protocol

import "encoding/json"

// Face is the styling applied to a span of text. Attribute order is
// preserved as sent; duplicates are permitted.
type Face struct {
	Fg         Color       `json:"fg"`
	Bg         Color       `json:"bg"`
	Attributes []Attribute `json:"attributes"`
}

// Atom is a run of text rendered with a single face.
type Atom struct {
	Face     Face   `json:"face"`
	Contents string `json:"contents"`
}

// Line is one display line, as atoms in left-to-right rendering order.
type Line []Atom

// Coord is a 0-indexed position on the display.
type Coord struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// The wire structs below decode through intermediates with pointer fields
// so that a missing or null field is an error, never a silent zero value.

func (f *Face) UnmarshalJSON(data []byte) error {
	var raw struct {
		Fg         *Color       `json:"fg"`
		Bg         *Color       `json:"bg"`
		Attributes *[]Attribute `json:"attributes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Fg == nil || raw.Bg == nil || raw.Attributes == nil {
		return malformed("", "face missing fg, bg, or attributes")
	}
	f.Fg, f.Bg, f.Attributes = *raw.Fg, *raw.Bg, *raw.Attributes
	return nil
}

func (a *Atom) UnmarshalJSON(data []byte) error {
	var raw struct {
		Face     *Face   `json:"face"`
		Contents *string `json:"contents"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Face == nil || raw.Contents == nil {
		return malformed("", "atom missing face or contents")
	}
	a.Face, a.Contents = *raw.Face, *raw.Contents
	return nil
}

func (l *Line) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return malformed("", "line is null")
	}
	var atoms []Atom
	if err := json.Unmarshal(data, &atoms); err != nil {
		return err
	}
	*l = atoms
	return nil
}

func (c *Coord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Line   *uint32 `json:"line"`
		Column *uint32 `json:"column"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Line == nil || raw.Column == nil {
		return malformed("", "coord missing line or column")
	}
	c.Line, c.Column = *raw.Line, *raw.Column
	return nil
}

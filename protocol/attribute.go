package protocol

import (
	"encoding/json"
	"fmt"
)

// Attribute is a face display attribute. The final_* attributes are
// compositing hints: they stop the corresponding part of the face from
// being overridden by faces merged on top of it.
type Attribute uint8

const (
	AttrUnderline Attribute = iota
	AttrReverse
	AttrBlink
	AttrBold
	AttrDim
	AttrItalic
	AttrFinalFg
	AttrFinalBg
	AttrFinalAttr
)

var attrNames = [...]string{
	AttrUnderline: "underline",
	AttrReverse:   "reverse",
	AttrBlink:     "blink",
	AttrBold:      "bold",
	AttrDim:       "dim",
	AttrItalic:    "italic",
	AttrFinalFg:   "final_fg",
	AttrFinalBg:   "final_bg",
	AttrFinalAttr: "final_attr",
}

var attrByName = func() map[string]Attribute {
	m := make(map[string]Attribute, len(attrNames))
	for i, name := range attrNames {
		m[name] = Attribute(i)
	}
	return m
}()

// ParseAttribute decodes a single attribute token by exact match against
// the closed lowercase snake_case set.
func ParseAttribute(s string) (Attribute, error) {
	attr, ok := attrByName[s]
	if !ok {
		return 0, &DecodeError{Kind: InvalidAttribute, Token: s}
	}
	return attr, nil
}

// String renders the attribute in its wire form.
func (a Attribute) String() string {
	if int(a) < len(attrNames) {
		return attrNames[a]
	}
	return fmt.Sprintf("attribute(%d)", uint8(a))
}

func (a *Attribute) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return malformed("", "attribute is null")
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAttribute(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

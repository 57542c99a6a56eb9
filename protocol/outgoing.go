package protocol

import (
	"encoding/json"
	"fmt"
)

// OutgoingRequest is one client-to-editor message. Encoding a well-formed
// value never fails; out-of-domain field values are the caller's invariant
// to keep.
type OutgoingRequest interface {
	outgoingMethod() string
	// outgoingParams returns the value marshaled into the params slot.
	// Every variant returns a positional slice except Keys, whose key
	// list is the params array itself.
	outgoingParams() any
}

// Keys sends key strings to the editor. The wire protocol treats keys as
// variadic-by-array: the params array is the key list itself, one key per
// slot, never a singleton-wrapped list.
type Keys []string

// Resize reports the client's display size in cells.
type Resize struct {
	Rows    uint32
	Columns uint32
}

// Scroll scrolls the buffer view by the given number of lines.
type Scroll struct {
	Amount uint32
}

// MouseMove reports a pointer move at a 0-indexed cell position.
type MouseMove struct {
	Line   uint32
	Column uint32
}

// MousePress reports a button press ("left", "middle", "right", ...).
type MousePress struct {
	Button string
	Line   uint32
	Column uint32
}

// MouseRelease reports a button release.
type MouseRelease struct {
	Button string
	Line   uint32
	Column uint32
}

// MenuSelection asks the editor to select a menu item. The wire method is
// menu_select, the same name the editor uses for the incoming highlight
// request; the distinct type name keeps the two directions apart.
type MenuSelection struct {
	Index uint32
}

func (Keys) outgoingMethod() string          { return "keys" }
func (Resize) outgoingMethod() string        { return "resize" }
func (Scroll) outgoingMethod() string        { return "scroll" }
func (MouseMove) outgoingMethod() string     { return "mouse_move" }
func (MousePress) outgoingMethod() string    { return "mouse_press" }
func (MouseRelease) outgoingMethod() string  { return "mouse_release" }
func (MenuSelection) outgoingMethod() string { return "menu_select" }

func (r Keys) outgoingParams() any {
	if r == nil {
		// nil Keys still encodes as an empty params array
		return []string{}
	}
	return []string(r)
}
func (r Resize) outgoingParams() any {
	return []any{r.Rows, r.Columns}
}
func (r Scroll) outgoingParams() any {
	return []any{r.Amount}
}
func (r MouseMove) outgoingParams() any {
	return []any{r.Line, r.Column}
}
func (r MousePress) outgoingParams() any {
	return []any{r.Button, r.Line, r.Column}
}
func (r MouseRelease) outgoingParams() any {
	return []any{r.Button, r.Line, r.Column}
}
func (r MenuSelection) outgoingParams() any {
	return []any{r.Index}
}

// EncodeOutgoing encodes one request as a single wire object, without a
// trailing newline. Output is deterministic: the same value always yields
// the same bytes.
func EncodeOutgoing(req OutgoingRequest) ([]byte, error) {
	data, err := json.Marshal(wireRequest{
		JSONRPC: Version,
		Method:  req.outgoingMethod(),
		Params:  req.outgoingParams(),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", req.outgoingMethod(), err)
	}
	return data, nil
}

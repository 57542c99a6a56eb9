package protocol

import "encoding/json"

// IncomingRequest is one editor-to-client message. The concrete type is
// one of Draw, DrawStatus, MenuShow, MenuSelect, MenuHide, InfoShow,
// InfoHide, SetCursor, SetUIOptions, or Refresh.
type IncomingRequest interface {
	incomingMethod() string
}

// Draw replaces the buffer display area.
type Draw struct {
	Lines       []Line
	DefaultFace Face
	PaddingFace Face
}

// DrawStatus replaces the status and mode lines.
type DrawStatus struct {
	StatusLine  Line
	ModeLine    Line
	DefaultFace Face
}

// MenuShow opens a completion or prompt menu.
type MenuShow struct {
	Items            []Line
	Anchor           Coord
	SelectedItemFace Face
	MenuFace         Face
	Style            string
}

// MenuSelect highlights one item of the open menu.
type MenuSelect struct {
	Selected uint32
}

// MenuHide closes the open menu.
type MenuHide struct{}

// InfoShow opens an info box.
type InfoShow struct {
	Title   Line
	Content []Line
	Anchor  Coord
	Face    Face
	Style   string
}

// InfoHide closes the open info box.
type InfoHide struct{}

// SetCursor moves the cursor. Mode is "prompt" or "buffer".
type SetCursor struct {
	Mode  string
	Coord Coord
}

// SetUIOptions replaces the full set of ui_* option values.
type SetUIOptions struct {
	Options map[string]string
}

// Refresh asks the client to redraw.
type Refresh struct {
	Force bool
}

func (Draw) incomingMethod() string         { return "draw" }
func (DrawStatus) incomingMethod() string   { return "draw_status" }
func (MenuShow) incomingMethod() string     { return "menu_show" }
func (MenuSelect) incomingMethod() string   { return "menu_select" }
func (MenuHide) incomingMethod() string     { return "menu_hide" }
func (InfoShow) incomingMethod() string     { return "info_show" }
func (InfoHide) incomingMethod() string     { return "info_hide" }
func (SetCursor) incomingMethod() string    { return "set_cursor" }
func (SetUIOptions) incomingMethod() string { return "set_ui_options" }
func (Refresh) incomingMethod() string      { return "refresh" }

// Method returns the wire method name of a decoded request.
func Method(req IncomingRequest) string { return req.incomingMethod() }

// DecodeIncoming decodes one complete wire message into its typed request.
// Decoding is two steps: a structural pass that checks the envelope, the
// method, and the per-slot types against the method's fixed arity (the
// only fallible step), then a positional-to-named relabeling that copies
// every slot value verbatim. All failures are *DecodeError.
func DecodeIncoming(data []byte) (IncomingRequest, error) {
	var msg wireMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, &DecodeError{Kind: MalformedMessage, Reason: "invalid envelope", Err: err}
	}
	if msg.JSONRPC == nil {
		return nil, malformed(msg.Method, "missing jsonrpc field")
	}
	if msg.Params == nil {
		return nil, malformed(msg.Method, "missing params field")
	}

	var params []json.RawMessage
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil, &DecodeError{Kind: MalformedMessage, Method: msg.Method, Reason: "params is not an array", Err: err}
	}
	if params == nil { // "params": null
		return nil, malformed(msg.Method, "params is not an array")
	}
	return decodeParams(msg.Method, params)
}

func decodeParams(method string, params []json.RawMessage) (IncomingRequest, error) {
	switch method {
	case "draw":
		var (
			lines                    []Line
			defaultFace, paddingFace Face
		)
		if err := unpack(method, params, &lines, &defaultFace, &paddingFace); err != nil {
			return nil, err
		}
		return Draw{Lines: lines, DefaultFace: defaultFace, PaddingFace: paddingFace}, nil

	case "draw_status":
		var (
			statusLine, modeLine Line
			defaultFace          Face
		)
		if err := unpack(method, params, &statusLine, &modeLine, &defaultFace); err != nil {
			return nil, err
		}
		return DrawStatus{StatusLine: statusLine, ModeLine: modeLine, DefaultFace: defaultFace}, nil

	case "menu_show":
		var (
			items                      []Line
			anchor                     Coord
			selectedItemFace, menuFace Face
			style                      string
		)
		if err := unpack(method, params, &items, &anchor, &selectedItemFace, &menuFace, &style); err != nil {
			return nil, err
		}
		return MenuShow{Items: items, Anchor: anchor, SelectedItemFace: selectedItemFace, MenuFace: menuFace, Style: style}, nil

	case "menu_select":
		var selected uint32
		if err := unpack(method, params, &selected); err != nil {
			return nil, err
		}
		return MenuSelect{Selected: selected}, nil

	case "menu_hide":
		if err := unpack(method, params); err != nil {
			return nil, err
		}
		return MenuHide{}, nil

	case "info_show":
		var (
			title   Line
			content []Line
			anchor  Coord
			face    Face
			style   string
		)
		if err := unpack(method, params, &title, &content, &anchor, &face, &style); err != nil {
			return nil, err
		}
		return InfoShow{Title: title, Content: content, Anchor: anchor, Face: face, Style: style}, nil

	case "info_hide":
		if err := unpack(method, params); err != nil {
			return nil, err
		}
		return InfoHide{}, nil

	case "set_cursor":
		var (
			mode  string
			coord Coord
		)
		if err := unpack(method, params, &mode, &coord); err != nil {
			return nil, err
		}
		return SetCursor{Mode: mode, Coord: coord}, nil

	case "set_ui_options":
		var options map[string]string
		if err := unpack(method, params, &options); err != nil {
			return nil, err
		}
		return SetUIOptions{Options: options}, nil

	case "refresh":
		var force bool
		if err := unpack(method, params, &force); err != nil {
			return nil, err
		}
		return Refresh{Force: force}, nil
	}
	return nil, malformed(method, "unknown method")
}

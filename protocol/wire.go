// Package protocol implements the typed codec for kakoune's JSON-RPC UI
// protocol: line-delimited {"jsonrpc","method","params"} objects where
// params is a positional array with a fixed per-method arity.
//
// Incoming (editor to client) messages decode via DecodeIncoming into one
// of the IncomingRequest variants; outgoing (client to editor) messages
// encode via EncodeOutgoing. The codec holds no state and does no I/O;
// framing and process management live in the session package.
package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the protocol marker carried by every message. Required to be
// present on decode, never otherwise inspected, and emitted verbatim on
// encode.
const Version = "2.0"

// wireMessage is the structural envelope shared by every message. Params
// stays raw until the method's arity table says what each slot is.
type wireMessage struct {
	JSONRPC json.RawMessage `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// wireRequest is the encode-side envelope. Field order fixes the output
// byte layout, which keeps encoding deterministic.
type wireRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

var jsonNull = []byte("null")

// isJSONNull reports whether raw is the JSON null literal. encoding/json
// leaves most destinations untouched on null, which would turn a malformed
// slot into a silent zero value; decode paths reject null explicitly.
func isJSONNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// unpack checks the params arity against the destination count and
// unmarshals each positional slot into the corresponding destination.
// Null slots are rejected up front. Typed codec errors from nested
// color/attribute tokens pass through unchanged; any other slot failure
// is a MalformedMessage.
func unpack(method string, params []json.RawMessage, dsts ...any) error {
	if len(params) != len(dsts) {
		return arityError(method, len(dsts), len(params))
	}
	for i, dst := range dsts {
		if isJSONNull(params[i]) {
			return malformed(method, fmt.Sprintf("param %d is null", i))
		}
		if err := json.Unmarshal(params[i], dst); err != nil {
			var derr *DecodeError
			if errors.As(err, &derr) {
				return err
			}
			return &DecodeError{Kind: MalformedMessage, Method: method, Reason: fmt.Sprintf("param %d", i), Err: err}
		}
	}
	return nil
}

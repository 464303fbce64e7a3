package hrapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The upstream wraps list payloads in one of three shapes, depending on the
// endpoint and its version: a bare array, {"data": [...]}, or
// {"data": {"<nested key>": [...]}}. EnvelopeShape enumerates them so every
// accepted shape is explicit and testable; anything else is ShapeUnknown
// and normalizes to an empty list rather than an error.
type EnvelopeShape int

const (
	ShapeUnknown EnvelopeShape = iota
	ShapeBareArray
	ShapeDataArray
	ShapeDataNested
)

// decodeEnvelope classifies the payload and returns the raw item array.
// nestedKey names the array field inside "data" for the third shape.
func decodeEnvelope(body []byte, nestedKey string) (EnvelopeShape, json.RawMessage) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ShapeUnknown, nil
	}

	if trimmed[0] == '[' {
		return ShapeBareArray, json.RawMessage(trimmed)
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return ShapeUnknown, nil
	}

	data := bytes.TrimSpace(wrapped.Data)
	if len(data) == 0 {
		return ShapeUnknown, nil
	}

	if data[0] == '[' {
		return ShapeDataArray, json.RawMessage(data)
	}

	var nested map[string]json.RawMessage
	if err := json.Unmarshal(data, &nested); err != nil {
		return ShapeUnknown, nil
	}
	if items, ok := nested[nestedKey]; ok {
		inner := bytes.TrimSpace(items)
		if len(inner) > 0 && inner[0] == '[' {
			return ShapeDataNested, json.RawMessage(inner)
		}
	}

	return ShapeUnknown, nil
}

// flexString accepts a JSON string or number; some upstream ids arrive as
// either.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*f = ""
		return nil
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }

// flexNumber accepts a JSON number or a numeric string; unparseable values
// default to zero.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*f = 0
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexNumber(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = flexNumber(n)
	return nil
}

func (f flexNumber) Float() float64 { return float64(f) }
func (f flexNumber) Int() int       { return int(f) }

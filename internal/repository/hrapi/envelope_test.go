package hrapi

import (
	"encoding/json"
	"testing"
)

func TestDecodeEnvelope(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		nestedKey string
		want      EnvelopeShape
		items     int
	}{
		{"bare array", `[{"a":1},{"a":2}]`, "items", ShapeBareArray, 2},
		{"data array", `{"data": [{"a":1}]}`, "items", ShapeDataArray, 1},
		{"data nested", `{"data": {"items": [{"a":1}]}}`, "items", ShapeDataNested, 1},
		{"empty body", ``, "items", ShapeUnknown, 0},
		{"null data", `{"data": null}`, "items", ShapeUnknown, 0},
		{"wrong nested key", `{"data": {"other": []}}`, "items", ShapeUnknown, 0},
		{"nested non-array", `{"data": {"items": "x"}}`, "items", ShapeUnknown, 0},
		{"scalar", `42`, "items", ShapeUnknown, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			shape, raw := decodeEnvelope([]byte(c.body), c.nestedKey)
			if shape != c.want {
				t.Fatalf("decodeEnvelope shape = %d, want %d", shape, c.want)
			}
			if c.want == ShapeUnknown {
				return
			}
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err != nil {
				t.Fatalf("items not an array: %v", err)
			}
			if len(items) != c.items {
				t.Errorf("item count = %d, want %d", len(items), c.items)
			}
		})
	}
}

func TestFlexString(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`"abc"`, "abc"},
		{`42`, "42"},
		{`4.5`, "4.5"},
		{`null`, ""},
	}
	for _, c := range cases {
		var f flexString
		if err := json.Unmarshal([]byte(c.raw), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", c.raw, err)
		}
		if f.String() != c.want {
			t.Errorf("flexString(%s) = %q, want %q", c.raw, f, c.want)
		}
	}
}

func TestFlexNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`3`, 3},
		{`3.5`, 3.5},
		{`"3.5"`, 3.5},
		{`" 2 "`, 2},
		{`"abc"`, 0},
		{`null`, 0},
		{`true`, 0},
	}
	for _, c := range cases {
		var f flexNumber
		if err := json.Unmarshal([]byte(c.raw), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", c.raw, err)
		}
		if f.Float() != c.want {
			t.Errorf("flexNumber(%s) = %v, want %v", c.raw, f.Float(), c.want)
		}
	}
}

package value

import (
	"encoding/json"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "hello", want: "hello"},
		{name: "bytes", in: []byte("hi"), want: "hi"},
		{name: "json number", in: json.Number("42"), want: "42"},
		{name: "whole float", in: float64(7), want: "7"},
		{name: "fractional float", in: 2.5, want: "2.5"},
		{name: "int", in: 13, want: "13"},
		{name: "bool", in: true, want: "true"},
		{name: "nil", in: nil, want: ""},
		{name: "object", in: map[string]any{"a": 1}, want: ""},
		{name: "list", in: []any{"a"}, want: ""},
	}

	for _, tt := range tests {
		if got := Text(tt.in); got != tt.want {
			t.Fatalf("%s: Text(%v) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestTextOr(t *testing.T) {
	if got := TextOr(nil, "fallback"); got != "fallback" {
		t.Fatalf("TextOr(nil) = %q", got)
	}
	if got := TextOr("", "fallback"); got != "fallback" {
		t.Fatalf("TextOr(\"\") = %q", got)
	}
	if got := TextOr("real", "fallback"); got != "real" {
		t.Fatalf("TextOr(\"real\") = %q", got)
	}
}

func TestIntPtr(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		absent bool
	}{
		{name: "float", in: float64(2021), want: 2021},
		{name: "int", in: 6, want: 6},
		{name: "json number", in: json.Number("9"), want: 9},
		{name: "numeric string", in: " 12 ", want: 12},
		{name: "zero", in: float64(0), want: 0},
		{name: "nil", in: nil, absent: true},
		{name: "non-numeric string", in: "june", absent: true},
		{name: "object", in: map[string]any{}, absent: true},
	}

	for _, tt := range tests {
		got := IntPtr(tt.in)
		if tt.absent {
			if got != nil {
				t.Fatalf("%s: IntPtr(%v) = %d, want nil", tt.name, tt.in, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Fatalf("%s: IntPtr(%v) = %v, want %d", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestMap(t *testing.T) {
	if m := Map(map[string]any{"k": "v"}); m == nil || m["k"] != "v" {
		t.Fatalf("Map(object) = %v", m)
	}
	if m := Map("not an object"); m != nil {
		t.Fatalf("Map(string) = %v, want nil", m)
	}
	if m := Map(nil); m != nil {
		t.Fatalf("Map(nil) = %v, want nil", m)
	}
}

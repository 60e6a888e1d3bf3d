package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	var v map[string]any
	if err := Unmarshal([]byte("title: X\ncount: 2\n"), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v["title"] != "X" {
		t.Errorf("title = %v, want X", v["title"])
	}
}

func TestUnmarshalEmptyData(t *testing.T) {
	var v map[string]any
	if err := Unmarshal(nil, &v); !errors.Is(err, ErrNilData) {
		t.Errorf("Unmarshal(nil) error = %v, want ErrNilData", err)
	}
}

func TestUnmarshalNilDestination(t *testing.T) {
	if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("Unmarshal(..., nil) error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshalTooLarge(t *testing.T) {
	old := MaxInputSize
	MaxInputSize = 8
	defer func() { MaxInputSize = old }()

	var v map[string]any
	err := Unmarshal([]byte(strings.Repeat("a", 16)+": 1"), &v)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Unmarshal(large) error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrictUnknownField(t *testing.T) {
	var v struct {
		Known string `yaml:"known"`
	}
	if err := UnmarshalStrict([]byte("unknown: 1\n"), &v); err == nil {
		t.Error("UnmarshalStrict() error = nil, want unknown-field error")
	}
}

func TestUnmarshalInvalidYAML(t *testing.T) {
	var v map[string]any
	if err := Unmarshal([]byte("a: [unclosed"), &v); err == nil {
		t.Error("Unmarshal(invalid) error = nil, want parse error")
	}
}

package codec

import (
	"bytes"
	"testing"
)

type positional struct {
	_     struct{} `cbor:",toarray"`
	Name  *string
	Count uint64
	Flag  bool
}

func TestToArrayEncodesPositionally(t *testing.T) {
	name := "CM123"
	data, err := Marshal(positional{Name: &name, Count: 2, Flag: true})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	diag, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if diag != `["CM123", 2, true]` {
		t.Errorf("Diagnose() = %s", diag)
	}
}

func TestNilOptionalEncodesAsNull(t *testing.T) {
	data, err := Marshal(positional{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	diag, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if diag != `[null, 0, false]` {
		t.Errorf("Diagnose() = %s", diag)
	}

	var decoded positional
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Name != nil {
		t.Errorf("Name = %q, want nil", *decoded.Name)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	value := map[string]any{"b": 1, "a": 2, "action": "deploy"}
	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for range 10 {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Marshal() produced different bytes for the same map")
		}
	}
}

func TestStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(map[string]any{"ok": true}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var decoded map[string]any
	if err := NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded["ok"] != true {
		t.Errorf("decoded = %v", decoded)
	}
}

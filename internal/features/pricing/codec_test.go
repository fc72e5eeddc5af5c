package pricing

import (
	"testing"

	"oakcraft/internal/features/catalog"
)

func TestEncodeDecodeState(t *testing.T) {
	state := catalog.ConfigState{
		"size":       catalog.ChoiceValue("large"),
		"bays":       catalog.NumberValue(3),
		"catSlide":   catalog.FlagValue(true),
		"dimensions": catalog.DimensionsValue{Length: 120, Width: 15, Thickness: 15},
	}

	encoded, err := EncodeState(state)
	if err != nil {
		t.Fatalf("EncodeState returned error: %v", err)
	}

	decoded, err := DecodeState(encoded)
	if err != nil {
		t.Fatalf("DecodeState returned error: %v", err)
	}

	if len(decoded) != len(state) {
		t.Fatalf("expected %d entries, got %d", len(state), len(decoded))
	}
	for key, want := range state {
		got, ok := decoded[key]
		if !ok {
			t.Errorf("missing key %q after round trip", key)
			continue
		}
		if !catalog.ValueEqual(got, want) {
			t.Errorf("key %q: got %v, want %v", key, got, want)
		}
	}
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	if _, err := DecodeState("not base64 !!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, err := DecodeState("bm90IGpzb24"); err == nil {
		t.Error("expected error for non-JSON payload")
	}
}

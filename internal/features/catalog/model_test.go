package catalog

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDefaultCatalogValidates(t *testing.T) {
	for _, cat := range DefaultCatalog() {
		if err := cat.Validate(); err != nil {
			t.Errorf("category %q failed validation: %v", cat.ID, err)
		}
	}
}

func TestOptionValidateRejectsIllegalDefaults(t *testing.T) {
	tests := []struct {
		name   string
		option ConfigOption
	}{
		{
			name: "default not a declared choice",
			option: ConfigOption{
				ID: "size", Kind: KindSelect, Default: "gigantic",
				Choices: []Choice{{Value: "small", Label: "Small"}},
			},
		},
		{
			name: "slider default outside range",
			option: ConfigOption{
				ID: "bays", Kind: KindSlider, Default: 9,
				Range: &SliderRange{Min: 1, Max: 4, Step: 1},
			},
		},
		{
			name: "slider without range",
			option: ConfigOption{
				ID: "bays", Kind: KindSlider, Default: 1,
			},
		},
		{
			name: "non-positive default dimensions",
			option: ConfigOption{
				ID: "dimensions", Kind: KindDimensions,
				Default: DimensionsValue{Length: 0, Width: 15, Thickness: 15},
			},
		},
		{
			name: "wrong default type for checkbox",
			option: ConfigOption{
				ID: "catSlide", Kind: KindCheckbox, Default: "yes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.option.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCategoryValidateRejectsDuplicateOptions(t *testing.T) {
	cat := Category{
		ID:          "garages",
		PricingMode: PricedByConfiguration,
		Options: []ConfigOption{
			{ID: "size", Kind: KindCheckbox, Default: false},
			{ID: "size", Kind: KindCheckbox, Default: true},
		},
	}
	if err := cat.Validate(); err == nil {
		t.Error("expected error for duplicate option ids")
	}
}

func TestConfigStateJSONRoundTrip(t *testing.T) {
	input := `{"size":"medium","bays":2,"catSlide":true,"dimensions":{"length":100,"width":15,"thickness":15}}`

	var state ConfigState
	if err := json.Unmarshal([]byte(input), &state); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if v, ok := state["size"].(ChoiceValue); !ok || v != "medium" {
		t.Errorf("size decoded as %T %v", state["size"], state["size"])
	}
	if v, ok := state["bays"].(NumberValue); !ok || v != 2 {
		t.Errorf("bays decoded as %T %v", state["bays"], state["bays"])
	}
	if v, ok := state["catSlide"].(FlagValue); !ok || !bool(v) {
		t.Errorf("catSlide decoded as %T %v", state["catSlide"], state["catSlide"])
	}
	if v, ok := state["dimensions"].(DimensionsValue); !ok || v.Length != 100 {
		t.Errorf("dimensions decoded as %T %v", state["dimensions"], state["dimensions"])
	}

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var again ConfigState
	if err := json.Unmarshal(data, &again); err != nil {
		t.Fatalf("second unmarshal failed: %v", err)
	}
	for key, want := range state {
		if !ValueEqual(again[key], want) {
			t.Errorf("key %q changed across round trip: %v vs %v", key, again[key], want)
		}
	}
}

func TestCoerceValueBSONDimensions(t *testing.T) {
	// Mongo decodes embedded documents as primitive.M or primitive.D
	// depending on the registry; both must coerce.
	fromM, err := CoerceValue(KindDimensions, primitive.M{"length": 100.0, "width": 15.0, "thickness": 15.0})
	if err != nil {
		t.Fatalf("primitive.M: %v", err)
	}
	fromD, err := CoerceValue(KindDimensions, primitive.D{
		{Key: "length", Value: 100.0},
		{Key: "width", Value: 15.0},
		{Key: "thickness", Value: 15.0},
	})
	if err != nil {
		t.Fatalf("primitive.D: %v", err)
	}

	want := DimensionsValue{Length: 100, Width: 15, Thickness: 15}
	if !ValueEqual(fromM, want) || !ValueEqual(fromD, want) {
		t.Errorf("got %v and %v, want %v", fromM, fromD, want)
	}
}

func TestCoerceValueTypeMismatch(t *testing.T) {
	if _, err := CoerceValue(KindSlider, "three"); err == nil {
		t.Error("string into slider must fail")
	}
	if _, err := CoerceValue(KindCheckbox, 1); err == nil {
		t.Error("number into checkbox must fail")
	}
}

package pricing

import (
	"testing"

	"oakcraft/internal/features/catalog"

	"github.com/shopspring/decimal"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.DefaultCatalog(), DefaultPriceRules(), DefaultFallbacks(), DefaultRates())
}

func mustPrice(t *testing.T, e *Engine, category string, state catalog.ConfigState) decimal.Decimal {
	t.Helper()
	price, err := e.Price(category, state)
	if err != nil {
		t.Fatalf("Price(%s) returned error: %v", category, err)
	}
	return price
}

func TestPriceExactRule(t *testing.T) {
	e := newTestEngine()

	state := catalog.ConfigState{
		"size":      catalog.ChoiceValue("medium"),
		"trussType": catalog.ChoiceValue("curved"),
		"bays":      catalog.NumberValue(2),
		"catSlide":  catalog.FlagValue(false),
		"oakType":   catalog.ChoiceValue("reclaimed"),
	}

	price := mustPrice(t, e, "garages", state)
	if price.StringFixed(2) != "8500.00" {
		t.Errorf("expected 8500.00, got %s", price.StringFixed(2))
	}
}

func TestPriceDeterministic(t *testing.T) {
	e := newTestEngine()

	state := catalog.ConfigState{
		"oakType":   catalog.ChoiceValue("air-dried"),
		"size":      catalog.ChoiceValue("large"),
		"bays":      catalog.NumberValue(3),
		"trussType": catalog.ChoiceValue("curved"),
	}

	first := mustPrice(t, e, "garages", state)
	for i := 0; i < 10; i++ {
		again := mustPrice(t, e, "garages", state)
		if !first.Equal(again) {
			t.Fatalf("price changed between evaluations: %s vs %s", first, again)
		}
	}
}

func TestCompositeKeyCanonicalOrder(t *testing.T) {
	e := newTestEngine()

	// The map carries no order; the key must follow the category's
	// declared option order and fill in defaults for missing options.
	state := catalog.ConfigState{
		"oakType":   catalog.ChoiceValue("reclaimed"),
		"trussType": catalog.ChoiceValue("curved"),
		"bays":      catalog.NumberValue(2),
	}

	key, err := e.CompositeKey("garages", state)
	if err != nil {
		t.Fatalf("CompositeKey returned error: %v", err)
	}

	want := "size=medium;trussType=curved;bays=2;catSlide=false;oakType=reclaimed"
	if key != want {
		t.Errorf("key mismatch:\n got  %s\n want %s", key, want)
	}
}

func TestFallbackPricing(t *testing.T) {
	e := newTestEngine()

	// No exact rule covers this combination, so it goes through the
	// fallback table: 4500 + 3500 (large) + 0 (straight) + 2200*3 (bays
	// above minimum) + 850 (cat slide) + 0 (green).
	state := catalog.ConfigState{
		"size":      catalog.ChoiceValue("large"),
		"trussType": catalog.ChoiceValue("straight"),
		"bays":      catalog.NumberValue(4),
		"catSlide":  catalog.FlagValue(true),
		"oakType":   catalog.ChoiceValue("green"),
	}

	price := mustPrice(t, e, "garages", state)
	if price.StringFixed(2) != "15450.00" {
		t.Errorf("expected 15450.00, got %s", price.StringFixed(2))
	}
}

func TestFallbackMonotonicInBays(t *testing.T) {
	e := newTestEngine()

	prev := decimal.Zero
	for bays := 1; bays <= 4; bays++ {
		state := catalog.ConfigState{
			"size":      catalog.ChoiceValue("small"),
			"trussType": catalog.ChoiceValue("curved"),
			"bays":      catalog.NumberValue(float64(bays)),
			"oakType":   catalog.ChoiceValue("air-dried"),
		}
		price := mustPrice(t, e, "garages", state)
		if !price.GreaterThan(prev) {
			t.Errorf("price not increasing at %d bays: %s <= %s", bays, price, prev)
		}
		prev = price
	}
}

func TestBeamVolumePricing(t *testing.T) {
	e := newTestEngine()

	// 300 x 20 x 20 cm = 0.12 cubic metres, green oak at 1250/m3
	state := catalog.ConfigState{
		"dimensions": catalog.DimensionsValue{Length: 300, Width: 20, Thickness: 20},
		"oakType":    catalog.ChoiceValue("green"),
	}

	price := mustPrice(t, e, "oak-beams", state)
	if price.StringFixed(2) != "150.00" {
		t.Errorf("expected 150.00, got %s", price.StringFixed(2))
	}
}

func TestFlooringAreaPricing(t *testing.T) {
	e := newTestEngine()

	// 200 x 18 cm board = 0.36 square metres, air-dried at 68/m2
	state := catalog.ConfigState{
		"dimensions": catalog.DimensionsValue{Length: 200, Width: 18, Thickness: 2},
		"oakType":    catalog.ChoiceValue("air-dried"),
	}

	price := mustPrice(t, e, "oak-flooring", state)
	if price.StringFixed(2) != "24.48" {
		t.Errorf("expected 24.48, got %s", price.StringFixed(2))
	}
}

func TestInvalidDimensionsPriceToZero(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name string
		dims catalog.DimensionsValue
	}{
		{"all zero", catalog.DimensionsValue{}},
		{"negative length", catalog.DimensionsValue{Length: -10, Width: 15, Thickness: 15}},
		{"zero width", catalog.DimensionsValue{Length: 100, Width: 0, Thickness: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := catalog.ConfigState{
				"dimensions": tt.dims,
				"oakType":    catalog.ChoiceValue("reclaimed"),
			}
			price, err := e.Price("oak-beams", state)
			if err != nil {
				t.Fatalf("invalid dimensions must not error, got: %v", err)
			}
			if !price.IsZero() {
				t.Errorf("expected zero price, got %s", price)
			}
		})
	}
}

func TestUnknownCategoryErrors(t *testing.T) {
	e := newTestEngine()

	if _, err := e.Price("treehouses", catalog.ConfigState{}); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := e.Describe("treehouses", catalog.ConfigState{}); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestNegativeRuleClampsToZero(t *testing.T) {
	e := NewEngine(
		catalog.DefaultCatalog(),
		[]PriceRule{{Category: "porches", Key: "style=classic;size=standard;sidePanels=false;oakType=green", Price: -100}},
		DefaultFallbacks(),
		nil,
	)

	price := mustPrice(t, e, "porches", catalog.ConfigState{})
	if !price.IsZero() {
		t.Errorf("negative rule price must clamp to zero, got %s", price)
	}
}

func TestDescribeSkipsDefaults(t *testing.T) {
	e := newTestEngine()

	state := catalog.ConfigState{
		"size":      catalog.ChoiceValue("medium"), // the default, explicitly set
		"trussType": catalog.ChoiceValue("curved"),
		"bays":      catalog.NumberValue(2),
		"catSlide":  catalog.FlagValue(false), // default again
		"oakType":   catalog.ChoiceValue("reclaimed"),
	}

	got, err := e.Describe("garages", state)
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}

	want := "Curved Truss, Bays: 2, Reclaimed Oak"
	if got != want {
		t.Errorf("description mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestDescribeDefaultStateIsEmpty(t *testing.T) {
	e := newTestEngine()

	got, err := e.Describe("gazebos", catalog.ConfigState{})
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty description for all-default state, got %q", got)
	}
}

func TestDescribeDimensions(t *testing.T) {
	e := newTestEngine()

	state := catalog.ConfigState{
		"dimensions": catalog.DimensionsValue{Length: 250, Width: 20, Thickness: 15},
		"oakType":    catalog.ChoiceValue("reclaimed"),
	}

	got, err := e.Describe("oak-beams", state)
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}

	want := "Dimensions: 250x20x15cm, Reclaimed Oak"
	if got != want {
		t.Errorf("description mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestResolveFallsBackOnTypeMismatch(t *testing.T) {
	e := newTestEngine()

	// A string where the slider expects a number must fall back to the
	// default rather than fail.
	state := catalog.ConfigState{
		"bays":    catalog.ChoiceValue("lots"),
		"oakType": catalog.ChoiceValue("reclaimed"),
	}

	key, err := e.CompositeKey("garages", state)
	if err != nil {
		t.Fatalf("CompositeKey returned error: %v", err)
	}
	want := "size=medium;trussType=straight;bays=1;catSlide=false;oakType=reclaimed"
	if key != want {
		t.Errorf("key mismatch:\n got  %s\n want %s", key, want)
	}
}

package pricing

import (
	"fmt"
	"strings"

	"oakcraft/internal/features/catalog"

	"github.com/shopspring/decimal"
)

const (
	cm3PerM3 = 1_000_000
	cm2PerM2 = 10_000
)

// Engine maps (category, ConfigState) to a price and a human-readable
// description. All tables are fixed at construction; the engine has no
// side effects and no I/O, so identical inputs always yield identical
// outputs regardless of the order selections were made in.
type Engine struct {
	categories map[string]catalog.Category
	rules      map[string]map[string]decimal.Decimal
	fallbacks  map[string]FallbackTable
	rates      map[string]RateTable
}

func NewEngine(categories []catalog.Category, rules []PriceRule, fallbacks []FallbackTable, rates []RateTable) *Engine {
	e := &Engine{
		categories: make(map[string]catalog.Category, len(categories)),
		rules:      make(map[string]map[string]decimal.Decimal),
		fallbacks:  make(map[string]FallbackTable, len(fallbacks)),
		rates:      make(map[string]RateTable, len(rates)),
	}
	for _, c := range categories {
		e.categories[c.ID] = c
	}
	for _, r := range rules {
		byKey, ok := e.rules[r.Category]
		if !ok {
			byKey = make(map[string]decimal.Decimal)
			e.rules[r.Category] = byKey
		}
		byKey[r.Key] = decimal.NewFromFloat(r.Price)
	}
	for _, f := range fallbacks {
		e.fallbacks[f.Category] = f
	}
	for _, r := range rates {
		e.rates[r.Category] = r
	}
	return e
}

// resolved pairs an option with the value in effect for it.
type resolved struct {
	option catalog.ConfigOption
	value  catalog.Value
	// isDefault is true when the state had no usable value for the option
	// or the selected value equals the declared default
	isDefault bool
}

// Price computes the price of a configuration. An unknown category is a
// configuration error and fails loudly; anything a user can produce
// through the configurator resolves to a usable number — zero means
// "not yet configurable" and the caller must disable purchase actions.
func (e *Engine) Price(categoryID string, state catalog.ConfigState) (decimal.Decimal, error) {
	cat, ok := e.categories[categoryID]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown category %q", categoryID)
	}

	selections, err := e.resolve(cat, state)
	if err != nil {
		return decimal.Zero, err
	}

	switch cat.PricingMode {
	case catalog.PricedByConfiguration:
		return e.priceConfigured(cat, selections)
	case catalog.PricedByMeasure:
		return e.priceDimensional(cat, selections)
	}
	return decimal.Zero, fmt.Errorf("category %q: unknown pricing mode %q", cat.ID, cat.PricingMode)
}

// CompositeKey builds the canonical lookup key for a configuration:
// option id/value pairs in the category's declared option order.
func (e *Engine) CompositeKey(categoryID string, state catalog.ConfigState) (string, error) {
	cat, ok := e.categories[categoryID]
	if !ok {
		return "", fmt.Errorf("unknown category %q", categoryID)
	}
	selections, err := e.resolve(cat, state)
	if err != nil {
		return "", err
	}
	return compositeKey(selections), nil
}

func compositeKey(selections []resolved) string {
	parts := make([]string, len(selections))
	for i, sel := range selections {
		parts[i] = sel.option.ID + "=" + sel.value.String()
	}
	return strings.Join(parts, ";")
}

func (e *Engine) priceConfigured(cat catalog.Category, selections []resolved) (decimal.Decimal, error) {
	if byKey, ok := e.rules[cat.ID]; ok {
		if price, ok := byKey[compositeKey(selections)]; ok {
			return clampPrice(price), nil
		}
	}

	fb, ok := e.fallbacks[cat.ID]
	if !ok {
		return decimal.Zero, fmt.Errorf("category %q has no fallback price table", cat.ID)
	}

	total := fb.Base
	for _, sel := range selections {
		switch v := sel.value.(type) {
		case catalog.ChoiceValue:
			if byValue, ok := fb.ChoiceSurcharges[sel.option.ID]; ok {
				total += byValue[string(v)]
			}
		case catalog.FlagValue:
			if bool(v) {
				total += fb.FlagSurcharges[sel.option.ID]
			}
		case catalog.NumberValue:
			if sel.option.Range != nil {
				total += fb.UnitSurcharges[sel.option.ID] * (float64(v) - sel.option.Range.Min)
			}
		case catalog.DimensionsValue:
			// dimensions do not participate in configured pricing
		}
	}

	return clampPrice(decimal.NewFromFloat(total)), nil
}

func (e *Engine) priceDimensional(cat catalog.Category, selections []resolved) (decimal.Decimal, error) {
	rt, ok := e.rates[cat.ID]
	if !ok {
		return decimal.Zero, fmt.Errorf("category %q has no rate table", cat.ID)
	}

	var dims catalog.DimensionsValue
	haveDims := false
	rate := 0.0

	for _, sel := range selections {
		if v, ok := sel.value.(catalog.DimensionsValue); ok {
			dims = v
			haveDims = true
		}
		if sel.option.ID == rt.RateOption {
			if v, ok := sel.value.(catalog.ChoiceValue); ok {
				rate = rt.Rates[string(v)]
			}
		}
	}

	// invalid measurements price to zero, never NaN and never an error
	if !haveDims || !dims.Positive() {
		return decimal.Zero, nil
	}

	var measure float64
	switch rt.Measure {
	case MeasureVolume:
		measure = dims.Length * dims.Width * dims.Thickness / cm3PerM3
	case MeasureArea:
		measure = dims.Length * dims.Width / cm2PerM2
	default:
		return decimal.Zero, fmt.Errorf("category %q: unknown measure %q", cat.ID, rt.Measure)
	}

	return clampPrice(decimal.NewFromFloat(measure * rate)), nil
}

// Describe renders a concise comma-separated summary of the configuration
// using choice labels, skipping options left at their default. The output
// is stable for a given state and doubles as a display key.
func (e *Engine) Describe(categoryID string, state catalog.ConfigState) (string, error) {
	cat, ok := e.categories[categoryID]
	if !ok {
		return "", fmt.Errorf("unknown category %q", categoryID)
	}

	selections, err := e.resolve(cat, state)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, sel := range selections {
		if sel.isDefault {
			continue
		}
		switch v := sel.value.(type) {
		case catalog.ChoiceValue:
			if label, ok := sel.option.ChoiceLabel(string(v)); ok {
				parts = append(parts, label)
			} else {
				parts = append(parts, string(v))
			}
		case catalog.NumberValue:
			parts = append(parts, fmt.Sprintf("%s: %s", sel.option.Label, v.String()))
		case catalog.FlagValue:
			if bool(v) {
				parts = append(parts, sel.option.Label)
			} else {
				parts = append(parts, "No "+sel.option.Label)
			}
		case catalog.DimensionsValue:
			parts = append(parts, fmt.Sprintf("%s: %scm", sel.option.Label, v.String()))
		}
	}

	return strings.Join(parts, ", "), nil
}

// resolve walks the category's options in canonical order and pins down
// the value in effect for each one. Missing or type-mismatched state
// entries fall back to the option default.
func (e *Engine) resolve(cat catalog.Category, state catalog.ConfigState) ([]resolved, error) {
	selections := make([]resolved, 0, len(cat.Options))
	for _, opt := range cat.Options {
		def, err := opt.DefaultValue()
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", cat.ID, err)
		}

		value := def
		usedDefault := true
		if raw, ok := state[opt.ID]; ok && raw != nil {
			if coerced, err := catalog.CoerceValue(opt.Kind, raw); err == nil {
				value = coerced
				usedDefault = false
			}
		}

		selections = append(selections, resolved{
			option:    opt,
			value:     value,
			isDefault: usedDefault || catalog.ValueEqual(value, def),
		})
	}
	return selections, nil
}

func clampPrice(price decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}
	return price.Round(2)
}

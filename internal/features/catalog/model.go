package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OptionKind string

const (
	KindSelect     OptionKind = "select"
	KindRadio      OptionKind = "radio"
	KindSlider     OptionKind = "slider"
	KindCheckbox   OptionKind = "checkbox"
	KindDimensions OptionKind = "dimensions"
)

// Choice is one selectable entry of a select/radio option
type Choice struct {
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// SliderRange bounds a slider option
type SliderRange struct {
	Min  float64 `bson:"min" json:"min"`
	Max  float64 `bson:"max" json:"max"`
	Step float64 `bson:"step" json:"step"`
	Unit string  `bson:"unit,omitempty" json:"unit,omitempty"`
}

// Value is the closed set of things a configurator selection can be.
// Each option kind accepts exactly one member of this union.
type Value interface {
	isValue()
	// String renders the canonical form used in composite price keys.
	String() string
}

type ChoiceValue string

func (ChoiceValue) isValue()         {}
func (v ChoiceValue) String() string { return string(v) }

type NumberValue float64

func (NumberValue) isValue() {}
func (v NumberValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

type FlagValue bool

func (FlagValue) isValue() {}
func (v FlagValue) String() string {
	return strconv.FormatBool(bool(v))
}

type DimensionsValue struct {
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
}

func (DimensionsValue) isValue() {}
func (v DimensionsValue) String() string {
	return fmt.Sprintf("%sx%sx%s",
		strconv.FormatFloat(v.Length, 'f', -1, 64),
		strconv.FormatFloat(v.Width, 'f', -1, 64),
		strconv.FormatFloat(v.Thickness, 'f', -1, 64))
}

// Positive reports whether every dimension is a usable positive number.
func (v DimensionsValue) Positive() bool {
	return v.Length > 0 && v.Width > 0 && v.Thickness > 0
}

// ValueEqual compares two selections for identity (used to skip options
// left at their default when describing a configuration).
func ValueEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case ChoiceValue:
		bv, ok := b.(ChoiceValue)
		return ok && av == bv
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av == bv
	case FlagValue:
		bv, ok := b.(FlagValue)
		return ok && av == bv
	case DimensionsValue:
		bv, ok := b.(DimensionsValue)
		return ok && av == bv
	}
	return false
}

// ConfigState maps option IDs to the currently selected value.
type ConfigState map[string]Value

// UnmarshalJSON decodes the loose JSON forms a client sends (string,
// number, bool, {length,width,thickness}) into the Value union.
func (s *ConfigState) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(ConfigState, len(raw))
	for key, msg := range raw {
		v, err := decodeValue(msg)
		if err != nil {
			return fmt.Errorf("option %q: %w", key, err)
		}
		out[key] = v
	}
	*s = out
	return nil
}

func (s ConfigState) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s))
	for key, v := range s {
		switch tv := v.(type) {
		case ChoiceValue:
			out[key] = string(tv)
		case NumberValue:
			out[key] = float64(tv)
		case FlagValue:
			out[key] = bool(tv)
		case DimensionsValue:
			out[key] = tv
		}
	}
	return json.Marshal(out)
}

func decodeValue(msg json.RawMessage) (Value, error) {
	var b bool
	if err := json.Unmarshal(msg, &b); err == nil {
		return FlagValue(b), nil
	}
	var n float64
	if err := json.Unmarshal(msg, &n); err == nil {
		return NumberValue(n), nil
	}
	var str string
	if err := json.Unmarshal(msg, &str); err == nil {
		return ChoiceValue(str), nil
	}
	var dims DimensionsValue
	if err := json.Unmarshal(msg, &dims); err == nil {
		return dims, nil
	}
	return nil, fmt.Errorf("unsupported value %s", string(msg))
}

// CoerceValue converts a loosely typed value (JSON or BSON decoded) into
// the union member the given option kind expects.
func CoerceValue(kind OptionKind, raw interface{}) (Value, error) {
	switch kind {
	case KindSelect, KindRadio:
		if s, ok := raw.(string); ok {
			return ChoiceValue(s), nil
		}
		if v, ok := raw.(ChoiceValue); ok {
			return v, nil
		}
	case KindSlider:
		if f, ok := toFloat(raw); ok {
			return NumberValue(f), nil
		}
	case KindCheckbox:
		if b, ok := raw.(bool); ok {
			return FlagValue(b), nil
		}
		if v, ok := raw.(FlagValue); ok {
			return v, nil
		}
	case KindDimensions:
		switch t := raw.(type) {
		case DimensionsValue:
			return t, nil
		case map[string]interface{}:
			return dimsFromMap(t), nil
		case primitive.M:
			return dimsFromMap(t), nil
		case primitive.D:
			return dimsFromMap(t.Map()), nil
		}
	default:
		return nil, fmt.Errorf("unknown option kind %q", kind)
	}
	return nil, fmt.Errorf("value %v does not fit option kind %q", raw, kind)
}

func dimsFromMap(m map[string]interface{}) DimensionsValue {
	var dims DimensionsValue
	if l, ok := toFloat(m["length"]); ok {
		dims.Length = l
	}
	if w, ok := toFloat(m["width"]); ok {
		dims.Width = w
	}
	if th, ok := toFloat(m["thickness"]); ok {
		dims.Thickness = th
	}
	return dims
}

func toFloat(raw interface{}) (float64, bool) {
	switch t := raw.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case NumberValue:
		return float64(t), true
	}
	return 0, false
}

// ConfigOption describes one selectable axis of a product configuration.
// Default is stored loosely typed (it round-trips through BSON); use
// DefaultValue for the typed form.
type ConfigOption struct {
	ID      string       `bson:"id" json:"id"`
	Kind    OptionKind   `bson:"kind" json:"kind"`
	Label   string       `bson:"label" json:"label"`
	Default interface{}  `bson:"default" json:"default"`
	Choices []Choice     `bson:"choices,omitempty" json:"choices,omitempty"`
	Range   *SliderRange `bson:"range,omitempty" json:"range,omitempty"`
}

func (o ConfigOption) DefaultValue() (Value, error) {
	return CoerceValue(o.Kind, o.Default)
}

func (o ConfigOption) ChoiceLabel(value string) (string, bool) {
	for _, c := range o.Choices {
		if c.Value == value {
			return c.Label, true
		}
	}
	return "", false
}

// Validate enforces the option invariant: the default must be a legal
// value for the option's kind.
func (o ConfigOption) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("option has no id")
	}

	def, err := o.DefaultValue()
	if err != nil {
		return fmt.Errorf("option %q: %w", o.ID, err)
	}

	switch o.Kind {
	case KindSelect, KindRadio:
		if len(o.Choices) == 0 {
			return fmt.Errorf("option %q: %s option needs choices", o.ID, o.Kind)
		}
		cv := def.(ChoiceValue)
		if _, ok := o.ChoiceLabel(string(cv)); !ok {
			return fmt.Errorf("option %q: default %q is not a declared choice", o.ID, cv)
		}
	case KindSlider:
		if o.Range == nil {
			return fmt.Errorf("option %q: slider option needs a range", o.ID)
		}
		if o.Range.Min > o.Range.Max || o.Range.Step <= 0 {
			return fmt.Errorf("option %q: malformed range", o.ID)
		}
		nv := float64(def.(NumberValue))
		if nv < o.Range.Min || nv > o.Range.Max {
			return fmt.Errorf("option %q: default %v outside [%v,%v]", o.ID, nv, o.Range.Min, o.Range.Max)
		}
	case KindCheckbox:
		// any boolean default is legal
	case KindDimensions:
		dims := def.(DimensionsValue)
		if !dims.Positive() {
			return fmt.Errorf("option %q: default dimensions must be positive", o.ID)
		}
	default:
		return fmt.Errorf("option %q: unknown kind %q", o.ID, o.Kind)
	}

	return nil
}

type PricingMode string

const (
	// PricedByConfiguration looks prices up by composite option key
	PricedByConfiguration PricingMode = "configured"
	// PricedByMeasure derives prices from numeric dimensions
	PricedByMeasure PricingMode = "dimensional"
)

// Category is one configurable product family. Options keeps the
// canonical order composite price keys are built in.
type Category struct {
	ID          string       `bson:"_id" json:"id"`
	Label       string       `bson:"label" json:"label"`
	PricingMode PricingMode  `bson:"pricing_mode" json:"pricing_mode"`
	Options     []ConfigOption `bson:"options" json:"options"`
}

func (c Category) Option(id string) (ConfigOption, bool) {
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return ConfigOption{}, false
}

func (c Category) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("category has no id")
	}
	if c.PricingMode != PricedByConfiguration && c.PricingMode != PricedByMeasure {
		return fmt.Errorf("category %q: unknown pricing mode %q", c.ID, c.PricingMode)
	}
	seen := make(map[string]bool, len(c.Options))
	for _, o := range c.Options {
		if seen[o.ID] {
			return fmt.Errorf("category %q: duplicate option %q", c.ID, o.ID)
		}
		seen[o.ID] = true
		if err := o.Validate(); err != nil {
			return fmt.Errorf("category %q: %w", c.ID, err)
		}
	}
	return nil
}

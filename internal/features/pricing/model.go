package pricing

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceRule associates one exact option combination with an absolute
// price. Key is the canonical composite key (category option order).
type PriceRule struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category  string             `bson:"category" json:"category"`
	Key       string             `bson:"key" json:"key"`
	Price     float64            `bson:"price" json:"price"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// FallbackTable prices option combinations that have no exact PriceRule:
// category base price plus additive surcharges per selection. Deterministic
// by construction, so every reachable combination gets some price.
type FallbackTable struct {
	Category string `bson:"_id" json:"category"`
	// Base is the starting price before surcharges
	Base float64 `bson:"base" json:"base"`
	// ChoiceSurcharges: option id -> choice value -> surcharge
	ChoiceSurcharges map[string]map[string]float64 `bson:"choice_surcharges,omitempty" json:"choice_surcharges,omitempty"`
	// FlagSurcharges: option id -> surcharge applied when the box is ticked
	FlagSurcharges map[string]float64 `bson:"flag_surcharges,omitempty" json:"flag_surcharges,omitempty"`
	// UnitSurcharges: slider option id -> surcharge per unit above the range minimum
	UnitSurcharges map[string]float64 `bson:"unit_surcharges,omitempty" json:"unit_surcharges,omitempty"`
}

type Measure string

const (
	MeasureVolume Measure = "volume" // cubic metres from length x width x thickness
	MeasureArea   Measure = "area"   // square metres from length x width
)

// RateTable prices dimensional categories: measure (volume or area,
// dimensions in centimetres) times the rate selected by one choice option
// (the oak type).
type RateTable struct {
	Category   string             `bson:"_id" json:"category"`
	Measure    Measure            `bson:"measure" json:"measure"`
	RateOption string             `bson:"rate_option" json:"rate_option"`
	Rates      map[string]float64 `bson:"rates" json:"rates"`
}

// Quote is the outcome of pricing one configuration.
type Quote struct {
	Category     string `json:"category"`
	Price        string `json:"price"`
	Description  string `json:"description"`
	EncodedState string `json:"encoded_state"`
	// Configurable is false when the price resolved to zero; the
	// storefront must disable purchase actions in that case.
	Configurable bool `json:"configurable"`
}

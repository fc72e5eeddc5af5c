package pricing

// Default pricing tables loaded by the seeder. Price rules cover the
// combinations the sales team has quoted exactly; everything else goes
// through the fallback tables.

func DefaultPriceRules() []PriceRule {
	return []PriceRule{
		{Category: "garages", Key: "size=medium;trussType=curved;bays=2;catSlide=false;oakType=reclaimed", Price: 8500},
		{Category: "garages", Key: "size=medium;trussType=curved;bays=2;catSlide=true;oakType=reclaimed", Price: 9350},
		{Category: "garages", Key: "size=small;trussType=straight;bays=1;catSlide=false;oakType=green", Price: 4950},
		{Category: "garages", Key: "size=large;trussType=curved;bays=3;catSlide=false;oakType=air-dried", Price: 14750},
		{Category: "gazebos", Key: "size=3x3;roofStyle=apex;sides=0;oakType=green", Price: 3250},
		{Category: "gazebos", Key: "size=4x4;roofStyle=hipped;sides=2;oakType=air-dried", Price: 6800},
		{Category: "porches", Key: "style=classic;size=standard;sidePanels=false;oakType=green", Price: 1850},
		{Category: "porches", Key: "style=cottage;size=wide;sidePanels=true;oakType=reclaimed", Price: 3400},
	}
}

func DefaultFallbacks() []FallbackTable {
	return []FallbackTable{
		{
			Category: "garages",
			Base:     4500,
			ChoiceSurcharges: map[string]map[string]float64{
				"size":     {"small": 0, "medium": 1500, "large": 3500},
				"trussType": {"straight": 0, "curved": 450},
				"oakType":  {"green": 0, "air-dried": 900, "reclaimed": 1400},
			},
			FlagSurcharges: map[string]float64{"catSlide": 850},
			UnitSurcharges: map[string]float64{"bays": 2200},
		},
		{
			Category: "gazebos",
			Base:     2900,
			ChoiceSurcharges: map[string]map[string]float64{
				"size":      {"3x3": 0, "4x3": 650, "4x4": 1200},
				"roofStyle": {"apex": 0, "hipped": 400},
				"oakType":   {"green": 0, "air-dried": 500, "reclaimed": 800},
			},
			UnitSurcharges: map[string]float64{"sides": 350},
		},
		{
			Category: "porches",
			Base:     1600,
			ChoiceSurcharges: map[string]map[string]float64{
				"style":   {"classic": 0, "cottage": 250, "contemporary": 400},
				"size":    {"standard": 0, "wide": 500},
				"oakType": {"green": 0, "air-dried": 300, "reclaimed": 450},
			},
			FlagSurcharges: map[string]float64{"sidePanels": 380},
		},
	}
}

func DefaultRates() []RateTable {
	return []RateTable{
		{
			Category:   "oak-beams",
			Measure:    MeasureVolume,
			RateOption: "oakType",
			// per cubic metre
			Rates: map[string]float64{"green": 1250, "air-dried": 1950, "reclaimed": 2400},
		},
		{
			Category:   "oak-flooring",
			Measure:    MeasureArea,
			RateOption: "oakType",
			// per square metre
			Rates: map[string]float64{"green": 45, "air-dried": 68, "reclaimed": 92},
		},
	}
}

package catalog

// DefaultCatalog is the option catalog the seeder loads into Mongo.
// The option order inside each category is canonical: composite price
// keys are built in exactly this order.
func DefaultCatalog() []Category {
	oakTypes := []Choice{
		{Value: "green", Label: "Green Oak"},
		{Value: "air-dried", Label: "Air Dried Oak"},
		{Value: "reclaimed", Label: "Reclaimed Oak"},
	}

	return []Category{
		{
			ID:          "garages",
			Label:       "Oak Framed Garages",
			PricingMode: PricedByConfiguration,
			Options: []ConfigOption{
				{
					ID: "size", Kind: KindSelect, Label: "Size", Default: "medium",
					Choices: []Choice{
						{Value: "small", Label: "Small"},
						{Value: "medium", Label: "Medium"},
						{Value: "large", Label: "Large"},
					},
				},
				{
					ID: "trussType", Kind: KindRadio, Label: "Truss Style", Default: "straight",
					Choices: []Choice{
						{Value: "straight", Label: "Straight Truss"},
						{Value: "curved", Label: "Curved Truss"},
					},
				},
				{
					ID: "bays", Kind: KindSlider, Label: "Bays", Default: 1,
					Range: &SliderRange{Min: 1, Max: 4, Step: 1, Unit: "bay"},
				},
				{
					ID: "catSlide", Kind: KindCheckbox, Label: "Cat Slide Roof", Default: false,
				},
				{
					ID: "oakType", Kind: KindSelect, Label: "Oak Type", Default: "green",
					Choices: oakTypes,
				},
			},
		},
		{
			ID:          "gazebos",
			Label:       "Oak Gazebos",
			PricingMode: PricedByConfiguration,
			Options: []ConfigOption{
				{
					ID: "size", Kind: KindSelect, Label: "Size", Default: "3x3",
					Choices: []Choice{
						{Value: "3x3", Label: "3m x 3m"},
						{Value: "4x3", Label: "4m x 3m"},
						{Value: "4x4", Label: "4m x 4m"},
					},
				},
				{
					ID: "roofStyle", Kind: KindRadio, Label: "Roof Style", Default: "apex",
					Choices: []Choice{
						{Value: "apex", Label: "Apex Roof"},
						{Value: "hipped", Label: "Hipped Roof"},
					},
				},
				{
					ID: "sides", Kind: KindSlider, Label: "Enclosed Sides", Default: 0,
					Range: &SliderRange{Min: 0, Max: 4, Step: 1, Unit: "side"},
				},
				{
					ID: "oakType", Kind: KindSelect, Label: "Oak Type", Default: "green",
					Choices: oakTypes,
				},
			},
		},
		{
			ID:          "porches",
			Label:       "Oak Porches",
			PricingMode: PricedByConfiguration,
			Options: []ConfigOption{
				{
					ID: "style", Kind: KindSelect, Label: "Style", Default: "classic",
					Choices: []Choice{
						{Value: "classic", Label: "Classic"},
						{Value: "cottage", Label: "Cottage"},
						{Value: "contemporary", Label: "Contemporary"},
					},
				},
				{
					ID: "size", Kind: KindRadio, Label: "Size", Default: "standard",
					Choices: []Choice{
						{Value: "standard", Label: "Standard"},
						{Value: "wide", Label: "Wide"},
					},
				},
				{
					ID: "sidePanels", Kind: KindCheckbox, Label: "Side Panels", Default: false,
				},
				{
					ID: "oakType", Kind: KindSelect, Label: "Oak Type", Default: "green",
					Choices: oakTypes,
				},
			},
		},
		{
			ID:          "oak-beams",
			Label:       "Structural Oak Beams",
			PricingMode: PricedByMeasure,
			Options: []ConfigOption{
				{
					ID: "dimensions", Kind: KindDimensions, Label: "Dimensions",
					Default: DimensionsValue{Length: 100, Width: 15, Thickness: 15},
				},
				{
					ID: "oakType", Kind: KindSelect, Label: "Oak Type", Default: "green",
					Choices: oakTypes,
				},
			},
		},
		{
			ID:          "oak-flooring",
			Label:       "Oak Flooring",
			PricingMode: PricedByMeasure,
			Options: []ConfigOption{
				{
					ID: "dimensions", Kind: KindDimensions, Label: "Board Dimensions",
					Default: DimensionsValue{Length: 200, Width: 18, Thickness: 2},
				},
				{
					ID: "oakType", Kind: KindSelect, Label: "Oak Type", Default: "air-dried",
					Choices: oakTypes,
				},
				{
					ID: "finish", Kind: KindRadio, Label: "Finish", Default: "unfinished",
					Choices: []Choice{
						{Value: "unfinished", Label: "Unfinished"},
						{Value: "oiled", Label: "Oiled"},
						{Value: "lacquered", Label: "Lacquered"},
					},
				},
			},
		},
	}
}

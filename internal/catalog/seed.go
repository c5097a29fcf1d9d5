package catalog

import "github.com/shopspring/decimal"

// Seed returns the static furniture dataset served when the remote catalog is
// unreachable. Each call returns a fresh slice.
func Seed() []Product {
	return []Product{
		{
			ID:        "1",
			Name:      "Nordic Oak Chair",
			Image:     "/assets/chair-oak.jpg",
			Category:  "Chairs",
			Price:     decimal.RequireFromString("129.90"),
			Rating:    4.5,
			Material:  "Oak",
			Featured:  true,
			ShortDesc: "Smooth lines and sustainable wood for your dining room.",
			Specs:     Specs{Width: "52cm", Height: "82cm", Depth: "57cm", Color: "Natural Oak"},
		},
		{
			ID:        "2",
			Name:      "Aurora Velvet Sofa",
			Image:     "/assets/sofa-velvet.jpg",
			Category:  "Sofas",
			Price:     decimal.RequireFromString("899"),
			Rating:    4.9,
			Material:  "Velvet",
			Featured:  true,
			ShortDesc: "Luxurious plush velvet with modern curves.",
			Specs:     Specs{Width: "210cm", Height: "90cm", Depth: "98cm", Color: "Royal Blue"},
		},
		{
			ID:        "3",
			Name:      "Tide Glass Coffee Table",
			Image:     "/assets/coffee-glass.jpg",
			Category:  "Tables",
			Price:     decimal.RequireFromString("249.99"),
			Rating:    4.7,
			Material:  "Glass",
			ShortDesc: "Minimalist glass and steel for a modern living space.",
			Specs:     Specs{Width: "110cm", Height: "42cm", Depth: "60cm", Color: "Clear/Matte Black"},
		},
		{
			ID:        "4",
			Name:      "Cove Rattan Armchair",
			Image:     "/assets/rattan-armchair.jpg",
			Category:  "Chairs",
			Price:     decimal.RequireFromString("175.50"),
			Rating:    4.3,
			Material:  "Rattan",
			ShortDesc: "Laid-back coastal rattan paired with cozy seating.",
			Specs:     Specs{Width: "60cm", Height: "79cm", Depth: "63cm", Color: "Natural/Tan"},
		},
	}
}

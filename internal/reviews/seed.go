package reviews

// Seed returns the static reviews keyed by product id.
func Seed() map[string][]Review {
	return map[string][]Review{
		"1": {
			{ID: "r1", Name: "Alice", Rating: 5, Comment: "Absolutely love this chair! Beautiful craftsmanship.", Date: "2024-03-18"},
			{ID: "r2", Name: "Bob", Rating: 4, Comment: "Sturdy and comfy, fits my dining room perfectly.", Date: "2024-02-14"},
		},
		"2": {
			{ID: "r3", Name: "Charlotte", Rating: 5, Comment: "The velvet feels so luxurious. Great for the price!", Date: "2024-01-27"},
		},
		"3": {
			{ID: "r4", Name: "Dave", Rating: 4, Comment: "Minimalist look, suits our apartment! Packaging was secure.", Date: "2024-02-10"},
		},
		"4": {
			{ID: "r5", Name: "Emma", Rating: 3, Comment: "Nice material, but color is a bit lighter than pictured.", Date: "2024-01-05"},
		},
	}
}

// SeedFor returns the static reviews of one product, or nil.
func SeedFor(productID string) []Review {
	return Seed()[productID]
}

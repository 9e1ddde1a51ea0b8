package catalog

import "time"

// Fixtures returns a Store seeded with the development catalog. The
// records are deterministic so the storefront UI behaves the same on
// every run.
func Fixtures() *Store {
	return NewStore(fixtureProducts, fixtureReviews, fixtureBlogPosts)
}

var fixtureProducts = []Product{
	{
		ID:            "1",
		Name:          "Classic Gud Bites",
		Slug:          "classic-gud-bites",
		Description:   "Bite-sized jaggery treats made from pure desi gud, slow-cooked the traditional way.",
		Price:         149,
		OriginalPrice: 179,
		Category:      "Classic Collection",
		ImageURL:      "/images/products/classic-gud-bites.jpg",
		Rating:        4.8,
		SoldCount:     1240,
		Stock:         85,
		IsAvailable:   true,
		IsFeatured:    true,
		Nutrition: map[string]string{
			"energy":  "412 kcal per 100g",
			"sugar":   "84g per 100g",
			"protein": "1.2g per 100g",
		},
	},
	{
		ID:            "2",
		Name:          "Til Gud Barfi",
		Slug:          "til-gud-barfi",
		Description:   "Roasted sesame and jaggery barfi, a winter classic pressed into soft squares.",
		Price:         179,
		OriginalPrice: 199,
		Category:      "Classic Collection",
		ImageURL:      "/images/products/til-gud-barfi.jpg",
		Rating:        4.9,
		SoldCount:     980,
		Stock:         60,
		IsAvailable:   true,
		IsFeatured:    true,
		Nutrition: map[string]string{
			"energy": "486 kcal per 100g",
			"sugar":  "62g per 100g",
		},
	},
	{
		ID:          "3",
		Name:        "Coconut Gud Ladoo",
		Slug:        "coconut-gud-ladoo",
		Description: "Hand-rolled ladoos of fresh coconut bound with melted jaggery.",
		Price:       199,
		Category:    "Classic Collection",
		ImageURL:    "/images/products/coconut-gud-ladoo.jpg",
		Rating:      4.7,
		SoldCount:   760,
		Stock:       48,
		IsAvailable: true,
	},
	{
		ID:            "4",
		Name:          "Dry Fruit Gud Mix",
		Slug:          "dry-fruit-gud-mix",
		Description:   "Almonds, cashews and pistachios folded through dark jaggery caramel.",
		Price:         349,
		OriginalPrice: 399,
		Category:      "Premium Collection",
		ImageURL:      "/images/products/dry-fruit-gud-mix.jpg",
		Rating:        4.9,
		SoldCount:     540,
		Stock:         32,
		IsAvailable:   true,
		IsFeatured:    true,
	},
	{
		ID:          "5",
		Name:        "Gud Saunf Candy",
		Slug:        "gud-saunf-candy",
		Description: "Fennel-studded jaggery candy, the after-meal staple.",
		Price:       99,
		Category:    "Classic Collection",
		ImageURL:    "/images/products/gud-saunf-candy.jpg",
		Rating:      4.5,
		SoldCount:   1530,
		Stock:       120,
		IsAvailable: true,
	},
	{
		ID:          "6",
		Name:        "Kaju Gud Roll",
		Slug:        "kaju-gud-roll",
		Description: "Cashew rolls with a molten jaggery centre, made in small batches.",
		Price:       429,
		Category:    "Premium Collection",
		ImageURL:    "/images/products/kaju-gud-roll.jpg",
		Rating:      4.8,
		SoldCount:   310,
		Stock:       0,
		IsAvailable: false,
	},
	{
		ID:            "7",
		Name:          "Festive Gud Gift Box",
		Slug:          "festive-gud-gift-box",
		Description:   "An assorted box of our best sellers, packed for gifting.",
		Price:         649,
		OriginalPrice: 749,
		Category:      "Gift Boxes",
		ImageURL:      "/images/products/festive-gud-gift-box.jpg",
		Rating:        4.9,
		SoldCount:     420,
		Stock:         25,
		IsAvailable:   true,
		IsFeatured:    true,
	},
	{
		ID:          "8",
		Name:        "Peanut Gud Chikki",
		Slug:        "peanut-gud-chikki",
		Description: "Crunchy peanut chikki set in thin jaggery brittle.",
		Price:       129,
		Category:    "Classic Collection",
		ImageURL:    "/images/products/peanut-gud-chikki.jpg",
		Rating:      4.6,
		SoldCount:   890,
		Stock:       95,
		IsAvailable: true,
	},
}

var fixtureReviews = []Review{
	{ID: "r1", ProductID: "1", Author: "Asha P.", Rating: 5, Text: "Tastes exactly like my grandmother's gud.", Status: "APPROVED"},
	{ID: "r2", ProductID: "1", Author: "Rohit S.", Rating: 4, Text: "Great flavour, wish the box were bigger.", Status: "APPROVED"},
	{ID: "r3", ProductID: "3", Author: "Meera K.", Rating: 5, Text: "Fresh coconut, not too sweet. Ordering again.", Status: "APPROVED"},
	{ID: "r4", ProductID: "4", Author: "Vikram D.", Rating: 5, Text: "Generous with the dry fruits.", Status: "PENDING"},
}

var fixtureBlogPosts = []BlogPost{
	{
		ID:          "b1",
		Slug:        "why-jaggery-beats-refined-sugar",
		Title:       "Why Jaggery Beats Refined Sugar",
		Excerpt:     "Unrefined gud keeps the minerals that white sugar strips away.",
		Content:     "Jaggery is made by simmering raw cane juice until it sets, so iron, magnesium and potassium stay in the final block...",
		Author:      "MitthuuG Kitchen",
		ImageURL:    "/images/blog/jaggery-vs-sugar.jpg",
		PublishedAt: time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "b2",
		Slug:        "til-gud-and-makar-sankranti",
		Title:       "Til, Gud and Makar Sankranti",
		Excerpt:     "The story behind the winter festival's favourite sweet.",
		Content:     "Every January, sesame and jaggery come together in kitchens across the country...",
		Author:      "MitthuuG Kitchen",
		ImageURL:    "/images/blog/til-gud-sankranti.jpg",
		PublishedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "b3",
		Slug:        "how-we-source-our-gud",
		Title:       "How We Source Our Gud",
		Excerpt:     "From small farms in Kolhapur to your snack box.",
		Content:     "We work directly with a dozen family-run gur bhattis in Kolhapur district...",
		Author:      "Pritam Ray",
		ImageURL:    "/images/blog/sourcing.jpg",
		PublishedAt: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
	},
}

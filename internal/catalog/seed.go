package catalog

// Seed returns the built-in product catalog. The storefront treats these as
// read-only; the admin repository gets its own copy it is free to edit.
func Seed() []Product {
	return []Product{
		{
			ID:          "vanilla-cake",
			Name:        "Vanilla Dream Cake",
			Category:    CategoryCakes,
			Subcategory: "vanilla",
			Occasions:   []string{OccasionBirthday, OccasionAnniversary},
			Price:       450,
			PricePerLb:  true,
			Image:       "/assets/vanilla-cake.jpg",
			Description: "Light and fluffy vanilla sponge layered with fresh cream and vanilla buttercream. A timeless classic for all celebrations.",
			Tags:        []string{"fresh cream", "custom message", "bestseller"},
			Available:   true,
			Popular:     true,
			Sizes:       []float64{0.5, 1, 2, 3, 5},
		},
		{
			ID:          "blackforest-cake",
			Name:        "Black Forest Delight",
			Category:    CategoryCakes,
			Subcategory: "blackforest",
			Occasions:   []string{OccasionBirthday, OccasionAnniversary},
			Price:       550,
			PricePerLb:  true,
			Image:       "/assets/blackforest-cake.jpg",
			Description: "Rich chocolate layers with cherry filling, whipped cream, and chocolate shavings. A German classic loved by all.",
			Tags:        []string{"chocolate", "cherry", "fresh cream", "custom message"},
			Available:   true,
			Popular:     true,
			Sizes:       []float64{0.5, 1, 2, 3, 5},
		},
		{
			ID:          "chocolate-cake",
			Name:        "Belgian Chocolate Cake",
			Category:    CategoryCakes,
			Subcategory: "chocolate",
			Occasions:   []string{OccasionBirthday, OccasionAnniversary, OccasionWedding},
			Price:       600,
			PricePerLb:  true,
			Image:       "/assets/chocolate-cake.jpg",
			Description: "Decadent Belgian chocolate cake with dark chocolate ganache. For true chocolate lovers.",
			Tags:        []string{"dark chocolate", "ganache", "premium", "custom message"},
			Available:   true,
			Popular:     true,
			Sizes:       []float64{0.5, 1, 2, 3, 5},
		},
		{
			ID:          "whiteforest-cake",
			Name:        "White Forest Elegance",
			Category:    CategoryCakes,
			Subcategory: "whiteforest",
			Occasions:   []string{OccasionWedding, OccasionAnniversary},
			Price:       580,
			PricePerLb:  true,
			Image:       "/assets/whiteforest-cake.jpg",
			Description: "Delicate white chocolate sponge with cream cheese frosting and white chocolate curls. Pure elegance.",
			Tags:        []string{"white chocolate", "cream cheese", "elegant", "custom message"},
			Available:   true,
			Sizes:       []float64{0.5, 1, 2, 3, 5},
		},
		{
			ID:          "eggless-vanilla",
			Name:        "Eggless Vanilla Cake",
			Category:    CategoryCakes,
			Subcategory: "vanilla",
			Occasions:   []string{OccasionBirthday, OccasionAnniversary},
			Price:       480,
			PricePerLb:  true,
			Image:       "/assets/vanilla-cake.jpg",
			Description: "Our signature eggless vanilla cake, just as soft and delicious. Perfect for vegetarian celebrations.",
			Tags:        []string{"eggless", "vegetarian", "fresh cream", "custom message"},
			Available:   true,
			Popular:     true,
			Sizes:       []float64{0.5, 1, 2, 3, 5},
		},
		{
			ID:          "truffle-chocolate",
			Name:        "Chocolate Truffle Cake",
			Category:    CategoryCakes,
			Subcategory: "chocolate",
			Occasions:   []string{OccasionBirthday, OccasionAnniversary},
			Price:       650,
			PricePerLb:  true,
			Image:       "/assets/chocolate-cake.jpg",
			Description: "Intensely chocolatey truffle cake with a smooth, melt-in-mouth texture. A chocolate lover's dream.",
			Tags:        []string{"truffle", "premium", "rich", "custom message"},
			Available:   true,
			Popular:     true,
			Sizes:       []float64{0.5, 1, 2, 3, 5},
		},
		{
			ID:          "birthday-balloon-set",
			Name:        "Birthday Balloon Set",
			Category:    CategoryDecoration,
			Occasions:   []string{OccasionBirthday},
			Price:       299,
			Image:       "/assets/birthday-decor.jpg",
			Description: "Colorful balloon set with 'Happy Birthday' foil balloon, 20 latex balloons, and ribbon.",
			Tags:        []string{"balloons", "colorful", "party"},
			Available:   true,
			Popular:     true,
		},
		{
			ID:          "birthday-banner-candles",
			Name:        "Birthday Banner & Candles Kit",
			Category:    CategoryDecoration,
			Occasions:   []string{OccasionBirthday},
			Price:       199,
			Image:       "/assets/birthday-decor.jpg",
			Description: "Golden 'Happy Birthday' banner with matching number candles and sparkler candles.",
			Tags:        []string{"banner", "candles", "golden"},
			Available:   true,
		},
		{
			ID:          "anniversary-banner",
			Name:        "Anniversary Banner & Candles",
			Category:    CategoryDecoration,
			Occasions:   []string{OccasionAnniversary},
			Price:       349,
			Image:       "/assets/anniversary-decor.jpg",
			Description: "Elegant rose gold 'Happy Anniversary' banner with heart-shaped balloons and romantic candles.",
			Tags:        []string{"rose gold", "romantic", "hearts"},
			Available:   true,
			Popular:     true,
		},
		{
			ID:          "anniversary-table-decor",
			Name:        "Anniversary Table Decoration",
			Category:    CategoryDecoration,
			Occasions:   []string{OccasionAnniversary},
			Price:       499,
			Image:       "/assets/anniversary-decor.jpg",
			Description: "Complete table decoration set with rose petals, tea lights, and photo frame centerpiece.",
			Tags:        []string{"romantic", "roses", "premium"},
			Available:   true,
		},
		{
			ID:          "wedding-table-decor",
			Name:        "Wedding Table Decor Pack",
			Category:    CategoryDecoration,
			Occasions:   []string{OccasionWedding},
			Price:       899,
			Image:       "/assets/wedding-decor.jpg",
			Description: "Elegant wedding table decoration with white flowers, crystal votive holders, and satin runners.",
			Tags:        []string{"elegant", "white", "premium", "crystals"},
			Available:   true,
			Popular:     true,
		},
		{
			ID:          "wedding-backdrop",
			Name:        "Wedding Photo Backdrop",
			Category:    CategoryDecoration,
			Occasions:   []string{OccasionWedding},
			Price:       1299,
			Image:       "/assets/wedding-decor.jpg",
			Description: "Stunning floral backdrop for wedding photos with fairy lights and draped fabric.",
			Tags:        []string{"backdrop", "flowers", "fairy lights", "premium"},
			Available:   true,
		},
	}
}

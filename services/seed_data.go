package services

func giOf(v int) *int { return &v }

// SeedRecords is the curated starter set, fed through the normal pipeline
// so seeded rows obey the same dedup and classification rules as imports.
func SeedRecords() []SourceRecord {
	seeds := []SeedRecipe{
		{
			Title:         "Zucchini Noodles with Pesto",
			Image:         "https://images.unsplash.com/photo-1609501676725-7186f017a4b7?w=400&h=400&fit=crop",
			Carbs:         20,
			Sugar:         5,
			Calories:      180,
			Category:      "Lunch",
			Cuisine:       "Italian",
			GlycemicIndex: giOf(35),
			Ingredients:   []string{"Zucchini", "Pesto", "Olive oil", "Parmesan"},
			Instructions: []string{
				"Spiralize the zucchini.",
				"Heat in a pan with olive oil.",
				"Add pesto and mix well.",
				"Serve with grated parmesan.",
			},
		},
		{
			Title:         "Grilled Chicken Salad",
			Image:         "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=400&fit=crop",
			Carbs:         10,
			Sugar:         2,
			Calories:      220,
			Category:      "Dinner",
			Cuisine:       "Mediterranean",
			GlycemicIndex: giOf(45),
			Ingredients:   []string{"Chicken breast", "Lettuce", "Tomatoes", "Cucumber", "Balsamic dressing"},
			Instructions: []string{
				"Grill the chicken until fully cooked.",
				"Chop the lettuce, tomatoes, and cucumber.",
				"Slice the chicken and add to the salad.",
				"Drizzle with balsamic dressing before serving.",
			},
		},
		{
			Title:         "Berry Yogurt Parfait",
			Image:         "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400&h=400&fit=crop",
			Carbs:         15,
			Sugar:         8,
			Calories:      150,
			Category:      "Breakfast",
			Cuisine:       "American",
			GlycemicIndex: giOf(40),
			Ingredients:   []string{"Greek yogurt", "Strawberries", "Blueberries", "Chia seeds", "Honey"},
			Instructions: []string{
				"Layer Greek yogurt in a glass.",
				"Add a mix of strawberries and blueberries.",
				"Sprinkle chia seeds on top.",
				"Drizzle with honey and serve chilled.",
			},
		},
		{
			Title:         "Roasted Chickpea Snack",
			Image:         "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400&h=400&fit=crop",
			Carbs:         12,
			Sugar:         1,
			Calories:      130,
			Category:      "Snacks",
			Cuisine:       "Mediterranean",
			GlycemicIndex: giOf(28),
			Ingredients:   []string{"Canned chickpeas", "Olive oil", "Paprika", "Garlic powder", "Salt"},
			Instructions: []string{
				"Drain and rinse chickpeas.",
				"Toss with olive oil and seasonings.",
				"Spread on a baking tray.",
				"Roast at 400°F for 25 minutes until crispy.",
			},
		},
		{
			Title:         "Greek Yogurt with Nuts",
			Image:         "https://images.unsplash.com/photo-1488900128323-21503983a07e?w=400&h=400&fit=crop",
			Carbs:         10,
			Sugar:         4,
			Calories:      160,
			Category:      "Dessert",
			Cuisine:       "Mediterranean",
			GlycemicIndex: giOf(36),
			Ingredients:   []string{"Greek yogurt", "Almonds", "Walnuts", "Honey"},
			Instructions: []string{
				"Scoop Greek yogurt into a bowl.",
				"Top with chopped almonds and walnuts.",
				"Drizzle lightly with honey.",
				"Serve immediately.",
			},
		},
		{
			Title:         "Cauliflower Rice Bowl",
			Image:         "https://images.unsplash.com/photo-1534938665420-4193effeacc4?w=400&h=400&fit=crop",
			Carbs:         8,
			Sugar:         3,
			Calories:      140,
			Category:      "Lunch",
			Cuisine:       "Asian",
			GlycemicIndex: giOf(32),
			Ingredients:   []string{"Cauliflower", "Bell peppers", "Onions", "Garlic", "Olive oil"},
			Instructions: []string{
				"Pulse cauliflower in food processor until rice-like.",
				"Sauté onions and garlic in olive oil.",
				"Add cauliflower rice and bell peppers.",
				"Cook for 5-7 minutes until tender.",
			},
		},
		{
			Title:         "Avocado Toast",
			Image:         "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?w=400&h=400&fit=crop",
			Carbs:         25,
			Sugar:         2,
			Calories:      250,
			Category:      "Breakfast",
			Cuisine:       "American",
			GlycemicIndex: giOf(43),
			Ingredients:   []string{"Whole grain bread", "Avocado", "Lime", "Salt", "Pepper"},
			Instructions: []string{
				"Toast the bread until golden.",
				"Mash avocado with lime juice.",
				"Spread on toast.",
				"Season with salt and pepper.",
			},
		},
		{
			Title:         "Baked Salmon with Vegetables",
			Image:         "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400&h=400&fit=crop",
			Carbs:         12,
			Sugar:         6,
			Calories:      320,
			Category:      "Dinner",
			Cuisine:       "American",
			GlycemicIndex: giOf(38),
			Ingredients:   []string{"Salmon fillet", "Broccoli", "Carrots", "Olive oil", "Lemon"},
			Instructions: []string{
				"Preheat oven to 400°F.",
				"Place salmon and vegetables on baking sheet.",
				"Drizzle with olive oil and lemon.",
				"Bake for 20-25 minutes.",
			},
		},
	}

	records := make([]SourceRecord, 0, len(seeds))
	for i := range seeds {
		records = append(records, SourceRecord{Format: FormatSeed, Seed: &seeds[i]})
	}
	return records
}

package models

// MenuData is the static catalog. It is loaded once at startup, seeded into the
// database for the HTTP layer, and never mutated afterwards.
var MenuData = []MenuItem{
	// Beef Specials
	{
		ID:          "bs1",
		Name:        "Royal Beef Karahi",
		Description: "Premium beef cuts cooked with fresh tomatoes and green chilies.",
		Price:       1800,
		Category:    CategoryBeefSpecials,
		Image:       "https://picsum.photos/seed/beef-curry/800/600",
		Rating:      4.9,
		Reviews:     128,
	},
	{
		ID:          "bs2",
		Name:        "Beef Chapli Platter",
		Description: "Four large beef chapli kebabs served with raita and salad.",
		Price:       1200,
		Category:    CategoryBeefSpecials,
		Image:       "https://picsum.photos/seed/kabab-platter/800/600",
		Rating:      4.8,
		Reviews:     95,
	},

	// Main Dishes
	{
		ID:          "m1",
		Name:        "Special Biryani",
		Description: "Aromatic basmati rice cooked with tender meat and traditional spices.",
		Price:       450,
		Category:    CategoryMainDishes,
		Image:       "https://picsum.photos/seed/spicy-biryani/800/600",
		Rating:      4.8,
		Reviews:     124,
	},
	{
		ID:          "m2",
		Name:        "Chicken Karahi",
		Description: "Traditional wok-cooked chicken with ginger, garlic, and fresh tomatoes.",
		Price:       1200,
		Category:    CategoryMainDishes,
		Image:       "https://picsum.photos/seed/chicken-karahi/800/600",
		Rating:      4.9,
		Reviews:     89,
	},
	{
		ID:          "m3",
		Name:        "Mutton Karahi",
		Description: "Succulent mutton pieces cooked in a traditional karahi with rich spices.",
		Price:       2500,
		Category:    CategoryMainDishes,
		Image:       "https://picsum.photos/seed/mutton-stew/800/600",
		Rating:      4.7,
		Reviews:     56,
	},
	{
		ID:          "m4",
		Name:        "Beef Nihari",
		Description: "Slow-cooked beef shank in a thick, spicy gravy. A breakfast classic.",
		Price:       600,
		Category:    CategoryMainDishes,
		Image:       "https://picsum.photos/seed/beef-nihari/800/600",
		Rating:      4.9,
		Reviews:     210,
	},
	{
		ID:          "m5",
		Name:        "Special Haleem",
		Description: "A slow-cooked blend of lentils, wheat, and meat, garnished with ginger and lemon.",
		Price:       450,
		Category:    CategoryMainDishes,
		Image:       "https://picsum.photos/seed/haleem-bowl/800/600",
		Rating:      4.6,
		Reviews:     78,
	},
	{
		ID:          "m6",
		Name:        "Kachay Beef Pulao",
		Description: "Our signature slow-cooked beef pulao with aromatic spices.",
		Price:       500,
		Category:    CategoryMainDishes,
		Image:       "https://picsum.photos/seed/pulao-rice/800/600",
		Rating:      5.0,
		Reviews:     342,
	},
	{
		ID:          "m7",
		Name:        "Chicken Qorma",
		Description: "Rich and creamy chicken curry cooked with yogurt and fried onions.",
		Price:       800,
		Category:    CategoryMainDishes,
		Image:       "https://picsum.photos/seed/chicken-qorma/800/600",
		Rating:      4.5,
		Reviews:     45,
	},

	// BBQ & Grilled
	{
		ID:          "b1",
		Name:        "Seekh Kabab",
		Description: "Minced meat skewers seasoned with herbs and grilled over charcoal.",
		Price:       250,
		Category:    CategoryBBQGrilled,
		Image:       "https://picsum.photos/seed/seekh-kabab/800/600",
		Rating:      4.8,
		Reviews:     156,
	},
	{
		ID:          "b2",
		Name:        "Chicken Tikka",
		Description: "Spicy marinated chicken pieces grilled to perfection.",
		Price:       600,
		Category:    CategoryBBQGrilled,
		Image:       "https://picsum.photos/seed/chicken-tikka/800/600",
		Rating:      4.7,
		Reviews:     92,
	},
	{
		ID:          "b3",
		Name:        "Malai Boti",
		Description: "Creamy and mild chicken pieces grilled over charcoal.",
		Price:       750,
		Category:    CategoryBBQGrilled,
		Image:       "https://picsum.photos/seed/malai-boti/800/600",
		Rating:      4.9,
		Reviews:     112,
	},
	{
		ID:          "b4",
		Name:        "Chapli Kebab",
		Description: "Traditional Pashtun-style minced meat patty with pomegranate seeds.",
		Price:       350,
		Category:    CategoryBBQGrilled,
		Image:       "https://picsum.photos/seed/chapli-kabab/800/600",
		Rating:      4.8,
		Reviews:     84,
	},

	// Street Food
	{
		ID:          "s1",
		Name:        "Samosa",
		Description: "Crispy pastry filled with spiced potatoes or minced meat.",
		Price:       60,
		Category:    CategoryStreetFood,
		Image:       "https://picsum.photos/seed/samosa-snack/800/600",
		Rating:      4.4,
		Reviews:     230,
	},
	{
		ID:          "s2",
		Name:        "Pakora Plate",
		Description: "Assorted vegetable fritters fried in gram flour batter.",
		Price:       200,
		Category:    CategoryStreetFood,
		Image:       "https://picsum.photos/seed/pakora-fritters/800/600",
		Rating:      4.3,
		Reviews:     145,
	},
	{
		ID:          "s3",
		Name:        "Dahi Chaat",
		Description: "A mix of chickpeas, potatoes, and yogurt with tangy chutneys.",
		Price:       250,
		Category:    CategoryStreetFood,
		Image:       "https://picsum.photos/seed/dahi-chaat/800/600",
		Rating:      4.6,
		Reviews:     167,
	},
	{
		ID:          "s4",
		Name:        "Gol Gappa",
		Description: "Crispy hollow puris filled with spicy water and chickpeas.",
		Price:       180,
		Category:    CategoryStreetFood,
		Image:       "https://picsum.photos/seed/gol-gappa/800/600",
		Rating:      4.7,
		Reviews:     198,
	},
	{
		ID:          "s5",
		Name:        "Bun Kebab",
		Description: "Traditional street-style burger with a spicy lentil or meat patty.",
		Price:       250,
		Category:    CategoryStreetFood,
		Image:       "https://picsum.photos/seed/bun-kebab/800/600",
		Rating:      4.5,
		Reviews:     134,
	},

	// Fries & Sides
	{
		ID:          "fs1",
		Name:        "Masala Fries",
		Description: "Crispy golden fries tossed in our secret spice blend.",
		Price:       350,
		Category:    CategoryFriesSides,
		Image:       "https://picsum.photos/seed/masala-fries/800/600",
		Rating:      4.7,
		Reviews:     215,
	},
	{
		ID:          "fs2",
		Name:        "Cheese Loaded Fries",
		Description: "Fries smothered in melted cheddar and topped with jalapeños.",
		Price:       550,
		Category:    CategoryFriesSides,
		Image:       "https://picsum.photos/seed/cheese-fries/800/600",
		Rating:      4.9,
		Reviews:     187,
	},

	// Breads
	{
		ID:          "br1",
		Name:        "Tandoori Roti",
		Description: "Freshly baked whole wheat bread from the tandoor.",
		Price:       30,
		Category:    CategoryBreads,
		Image:       "https://picsum.photos/seed/tandoori-roti/800/600",
		Rating:      4.2,
		Reviews:     450,
	},
	{
		ID:          "br2",
		Name:        "Khamiri Naan",
		Description: "Soft and fluffy leavened bread baked in a clay oven.",
		Price:       40,
		Category:    CategoryBreads,
		Image:       "https://picsum.photos/seed/fresh-naan/800/600",
		Rating:      4.5,
		Reviews:     380,
	},
	{
		ID:          "br3",
		Name:        "Garlic Naan",
		Description: "Naan topped with fresh garlic and butter.",
		Price:       150,
		Category:    CategoryBreads,
		Image:       "https://picsum.photos/seed/garlic-naan/800/600",
		Rating:      4.8,
		Reviews:     210,
	},

	// Desserts
	{
		ID:          "d1",
		Name:        "Matka Kheer",
		Description: "Traditional rice pudding served in a clay pot.",
		Price:       250,
		Category:    CategoryDesserts,
		Image:       "https://picsum.photos/seed/matka-kheer/800/600",
		Rating:      4.7,
		Reviews:     145,
	},
	{
		ID:          "d2",
		Name:        "Gulab Jamun",
		Description: "Soft milk-solid balls soaked in rose-scented syrup.",
		Price:       60,
		Category:    CategoryDesserts,
		Image:       "https://picsum.photos/seed/gulab-jamun/800/600",
		Rating:      4.9,
		Reviews:     320,
	},
	{
		ID:          "d3",
		Name:        "Special Jalebi",
		Description: "Crispy, syrup-filled swirls of deep-fried batter.",
		Price:       800,
		Category:    CategoryDesserts,
		Image:       "https://picsum.photos/seed/crispy-jalebi/800/600",
		Rating:      4.6,
		Reviews:     189,
	},
	{
		ID:          "d4",
		Name:        "Ras Malai",
		Description: "Soft cheese patties in a creamy, cardamom-flavored milk.",
		Price:       180,
		Category:    CategoryDesserts,
		Image:       "https://picsum.photos/seed/ras-malai/800/600",
		Rating:      4.8,
		Reviews:     156,
	},

	// Drinks
	{
		ID:          "dr1",
		Name:        "Sweet Lassi",
		Description: "Traditional yogurt-based drink, served chilled.",
		Price:       250,
		Category:    CategoryDrinks,
		Image:       "https://picsum.photos/seed/sweet-lassi/800/600",
		Rating:      4.7,
		Reviews:     210,
	},
	{
		ID:          "dr2",
		Name:        "Rooh Afza",
		Description: "Refreshing rose-flavored summer drink.",
		Price:       150,
		Category:    CategoryDrinks,
		Image:       "https://picsum.photos/seed/rooh-afza/800/600",
		Rating:      4.4,
		Reviews:     98,
	},
	{
		ID:          "dr3",
		Name:        "Karak Chai",
		Description: "Strong, milky tea brewed with traditional spices.",
		Price:       120,
		Category:    CategoryDrinks,
		Image:       "https://picsum.photos/seed/karak-chai/800/600",
		Rating:      4.9,
		Reviews:     450,
	},
}

// FindMenuItem looks an item up in the static catalog by ID.
func FindMenuItem(id string) (MenuItem, bool) {
	for _, item := range MenuData {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

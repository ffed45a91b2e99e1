package models

// Category is one of the fixed menu sections shown on the site.
type Category string

const (
	CategoryBeefSpecials Category = "Beef Specials"
	CategoryMainDishes   Category = "Main Dishes"
	CategoryBBQGrilled   Category = "BBQ & Grilled"
	CategoryStreetFood   Category = "Street Food"
	CategoryFriesSides   Category = "Fries & Sides"
	CategoryBreads       Category = "Breads"
	CategoryDesserts     Category = "Desserts"
	CategoryDrinks       Category = "Drinks"
)

// Categories lists every menu section in display order.
var Categories = []Category{
	CategoryBeefSpecials,
	CategoryMainDishes,
	CategoryBBQGrilled,
	CategoryStreetFood,
	CategoryFriesSides,
	CategoryBreads,
	CategoryDesserts,
	CategoryDrinks,
}

// MenuItem is one dish on the catalog. Prices are whole rupees.
type MenuItem struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"type:varchar(255); not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Price       int      `gorm:"not null" json:"price"`
	Category    Category `gorm:"type:varchar(64); not null; index" json:"category"`
	Image       string   `gorm:"type:varchar(255)" json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
}
